package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// FilterService guarda los filtros por defecto de cada perfil.
type FilterService struct {
	repo FilterRepo
}

func NewFilterService(r FilterRepo) *FilterService { return &FilterService{repo: r} }

// FilterPatch: solo se tocan los campos que vienen. Para borrar un min/max mandar ClearX.
type FilterPatch struct {
	Type      *string
	Status    *string
	GameModes *[]string
	LevelCaps *[]int

	MinPlayers   *int
	MaxPlayers   *int
	MinRemaining *int
	MaxRemaining *int

	ClearMinPlayers   bool
	ClearMaxPlayers   bool
	ClearMinRemaining bool
	ClearMaxRemaining bool
}

func (s *FilterService) Get(ctx context.Context, profileID string) (domain.FilterSpec, error) {
	return s.repo.Get(ctx, profileID)
}

func (s *FilterService) Show(ctx context.Context, profileID string) (string, error) {
	f, err := s.repo.Get(ctx, profileID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"**Filtros de %s**\n• tipo: **%s**\n• estado: **%s**\n• modos: **%s**\n• niveles: **%s**\n• jugadores: **%s–%s**\n• minutos restantes: **%s–%s**",
		profileID, orAll(f.Type), orAll(f.Status), listOrAll(f.GameModes), intsOrAll(f.LevelCaps),
		intOr(f.MinPlayers, "0"), intOr(f.MaxPlayers, "∞"), intOr(f.MinRemaining, "0"), intOr(f.MaxRemaining, "∞"),
	), nil
}

func (s *FilterService) Update(ctx context.Context, profileID string, patch FilterPatch) (domain.FilterSpec, error) {
	cur, err := s.repo.Get(ctx, profileID)
	if err != nil {
		return domain.FilterSpec{}, err
	}

	if patch.Type != nil {
		switch *patch.Type {
		case domain.FilterAll, domain.TypeFilterOpen, domain.TypeFilterPassword:
			cur.Type = *patch.Type
		default:
			return domain.FilterSpec{}, fmt.Errorf("tipo inválido: %q", *patch.Type)
		}
	}
	if patch.Status != nil {
		switch *patch.Status {
		case domain.FilterAll, domain.StatusInProgress, domain.StatusInPreparation:
			cur.Status = *patch.Status
		default:
			return domain.FilterSpec{}, fmt.Errorf("estado inválido: %q", *patch.Status)
		}
	}
	if patch.GameModes != nil {
		cur.GameModes = *patch.GameModes
	}
	if patch.LevelCaps != nil {
		cur.LevelCaps = *patch.LevelCaps
	}
	if patch.MinPlayers != nil {
		cur.MinPlayers = patch.MinPlayers
	}
	if patch.ClearMinPlayers {
		cur.MinPlayers = nil
	}
	if patch.MaxPlayers != nil {
		cur.MaxPlayers = patch.MaxPlayers
	}
	if patch.ClearMaxPlayers {
		cur.MaxPlayers = nil
	}
	if patch.MinRemaining != nil {
		cur.MinRemaining = patch.MinRemaining
	}
	if patch.ClearMinRemaining {
		cur.MinRemaining = nil
	}
	if patch.MaxRemaining != nil {
		cur.MaxRemaining = patch.MaxRemaining
	}
	if patch.ClearMaxRemaining {
		cur.MaxRemaining = nil
	}

	if err := s.repo.Upsert(ctx, profileID, cur); err != nil {
		return domain.FilterSpec{}, err
	}
	return cur, nil
}

func orAll(s string) string {
	if s == "" {
		return domain.FilterAll
	}
	return s
}

func listOrAll(xs []string) string {
	if len(xs) == 0 {
		return domain.FilterAll
	}
	return strings.Join(xs, ", ")
}

func intsOrAll(xs []int) string {
	if len(xs) == 0 {
		return domain.FilterAll
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}

func intOr(p *int, def string) string {
	if p == nil {
		return def
	}
	return fmt.Sprint(*p)
}
