package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

type FilterRepo struct{ db *sql.DB }

func NewFilterRepo(db *sql.DB) *FilterRepo { return &FilterRepo{db: db} }

// Get devuelve los filtros del perfil; si no existe lo crea con los defaults de la tabla.
func (r *FilterRepo) Get(ctx context.Context, profileID string) (domain.FilterSpec, error) {
	p, err := r.GetProfile(ctx, profileID)
	if errors.Is(err, ErrNotFound) {
		if _, err := r.db.ExecContext(ctx, `
INSERT INTO filter_profiles (profile_id) VALUES ($1)
ON CONFLICT (profile_id) DO NOTHING
`, profileID); err != nil {
			return domain.FilterSpec{}, err
		}
		p, err = r.GetProfile(ctx, profileID)
	}
	return p.Spec, err
}

func (r *FilterRepo) GetProfile(ctx context.Context, profileID string) (FilterProfile, error) {
	var (
		p    FilterProfile
		caps []int64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT profile_id, tournament_type, status, game_modes, level_caps,
       min_players, max_players, min_remaining_minutes, max_remaining_minutes,
       created_at, updated_at
  FROM filter_profiles
 WHERE profile_id = $1
`, profileID).Scan(
		&p.ProfileID, &p.Spec.Type, &p.Spec.Status, pq.Array(&p.Spec.GameModes), pq.Array(&caps),
		&p.Spec.MinPlayers, &p.Spec.MaxPlayers, &p.Spec.MinRemaining, &p.Spec.MaxRemaining,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return FilterProfile{}, ErrNotFound
	}
	if err != nil {
		return FilterProfile{}, err
	}
	for _, c := range caps {
		p.Spec.LevelCaps = append(p.Spec.LevelCaps, int(c))
	}
	return p, nil
}

func (r *FilterRepo) Upsert(ctx context.Context, profileID string, f domain.FilterSpec) error {
	caps := make([]int64, 0, len(f.LevelCaps))
	for _, c := range f.LevelCaps {
		caps = append(caps, int64(c))
	}
	modes := f.GameModes
	if modes == nil {
		modes = []string{}
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO filter_profiles
  (profile_id, tournament_type, status, game_modes, level_caps,
   min_players, max_players, min_remaining_minutes, max_remaining_minutes, created_at, updated_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
ON CONFLICT (profile_id) DO UPDATE SET
  tournament_type       = EXCLUDED.tournament_type,
  status                = EXCLUDED.status,
  game_modes            = EXCLUDED.game_modes,
  level_caps            = EXCLUDED.level_caps,
  min_players           = EXCLUDED.min_players,
  max_players           = EXCLUDED.max_players,
  min_remaining_minutes = EXCLUDED.min_remaining_minutes,
  max_remaining_minutes = EXCLUDED.max_remaining_minutes,
  updated_at            = NOW()
`, profileID, orAll(f.Type), orAll(f.Status), pq.Array(modes), pq.Array(caps),
		f.MinPlayers, f.MaxPlayers, f.MinRemaining, f.MaxRemaining)
	return err
}

func orAll(s string) string {
	if s == "" {
		return domain.FilterAll
	}
	return s
}
