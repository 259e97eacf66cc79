package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

func printReport(w io.Writer, rep domain.Report, limit int) {
	s := rep.Stats
	fmt.Fprintf(w, "%s %d de %d torneos · %d búsquedas · %d drill-downs · %d 429 · %d errores · %s\n\n",
		color.GreenString("🏆"), rep.Total, rep.UnfilteredTotal,
		s.Queries, s.DrillDowns, s.RateLimits, s.APIErrors, s.Elapsed.Round(100*time.Millisecond))

	if rep.Total == 0 {
		color.New(color.FgYellow).Fprintln(w, "Ningún torneo cumple los filtros.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tNOMBRE\tMODO\tJUGADORES\tNIVEL\tRESTANTE\t")
	for i, l := range rep.Tournaments {
		if limit > 0 && i == limit {
			break
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%s\t%s\t\n",
			l.Tag, l.Name, l.ModeName, l.Capacity, l.MaxCapacity, levelCell(l.LevelCap), remainingCell(l))
	}
	_ = tw.Flush()

	if limit > 0 && rep.Total > limit {
		fmt.Fprintf(w, "\n… y %d más (usá --limit 0 para verlos todos)\n", rep.Total-limit)
	}
}

func levelCell(lc int) string {
	if lc == 0 {
		return "-"
	}
	return fmt.Sprint(lc)
}

func remainingCell(l domain.Listing) string {
	if l.Remaining == nil {
		return "?"
	}
	txt := fmt.Sprintf("%d min", *l.Remaining)
	switch {
	case l.Status == domain.StatusInPreparation:
		return color.CyanString(txt + " (prep)")
	case *l.Remaining <= 10:
		return color.RedString(txt)
	default:
		return txt
	}
}
