package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jose-valero/cr-tournament-finder/internal/adapters/clashroyale"
	"github.com/jose-valero/cr-tournament-finder/internal/app/service"
	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTournaments corre un ciclo completo; sin query params usa los filtros guardados.
func (s *Server) handleTournaments(w http.ResponseWriter, r *http.Request) {
	if !s.finder.Configured() {
		writeError(w, http.StatusBadRequest, clashroyale.ErrMissingAPIKey.Error())
		return
	}

	var (
		spec domain.FilterSpec
		err  error
	)
	if q := r.URL.Query(); len(q) > 0 {
		spec, err = service.FilterSpecFromValues(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else if spec, err = s.filters.Get(r.Context(), s.cfg.Profile); err != nil {
		log.Printf("❌ filters get: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load saved filters")
		return
	}

	rep, err := s.finder.Run(r.Context(), spec)
	switch {
	case errors.Is(err, clashroyale.ErrMissingAPIKey):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Printf("❌ search: %v", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, NewSearchResponse(rep))
}

func (s *Server) handleGameModes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.modes.Common())
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	f, err := s.filters.Get(r.Context(), s.cfg.Profile)
	if err != nil {
		log.Printf("❌ filters get: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load saved filters")
		return
	}
	out := configJSON{
		HasAPIKey:     s.finder.Configured(),
		APIKeyFromEnv: s.cfg.APIKey != "",
		Filters:       toFiltersJSON(f),
	}
	if m := service.MaskAPIKey(s.cfg.APIKey); m != "" {
		out.MaskedKey = &m
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var body saveConfigJSON
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.APIKey != nil {
		writeError(w, http.StatusBadRequest, "api_key is read from CR_API_KEY")
		return
	}
	if body.Filters != nil {
		patch, err := patchFrom(*body.Filters)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if _, err := s.filters.Update(r.Context(), s.cfg.Profile, patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// patchFrom: el form siempre manda todos los campos; min/max en 0 o null los borra.
func patchFrom(f filtersJSON) (service.FilterPatch, error) {
	for _, b := range []struct {
		name string
		v    *int
	}{
		{"min_players", f.MinPlayers},
		{"max_players", f.MaxPlayers},
		{"min_remaining_minutes", f.MinRemainingMinutes},
		{"max_remaining_minutes", f.MaxRemainingMinutes},
	} {
		if b.v != nil && *b.v < 0 {
			return service.FilterPatch{}, fmt.Errorf("%s: no puede ser negativo", b.name)
		}
	}

	p := service.FilterPatch{
		GameModes: &f.GameModes,
		LevelCaps: &f.LevelCaps,
	}
	if f.TournamentType != "" {
		p.Type = &f.TournamentType
	}
	if f.Status != "" {
		p.Status = &f.Status
	}
	p.MinPlayers, p.ClearMinPlayers = bound(f.MinPlayers)
	p.MaxPlayers, p.ClearMaxPlayers = bound(f.MaxPlayers)
	p.MinRemaining, p.ClearMinRemaining = bound(f.MinRemainingMinutes)
	p.MaxRemaining, p.ClearMaxRemaining = bound(f.MaxRemainingMinutes)
	return p, nil
}

// bound: null o 0 = sin límite.
func bound(v *int) (*int, bool) {
	if v == nil || *v == 0 {
		return nil, true
	}
	return v, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
