package service

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

// FilterSpecFromValues traduce los query params del front a un FilterSpec.
// Los params ausentes no restringen; un max en 0 significa "sin máximo".
func FilterSpecFromValues(v url.Values) (domain.FilterSpec, error) {
	spec := domain.FilterSpec{GameModes: splitList(v["game_modes"])}

	switch t := strings.TrimSpace(v.Get("tournament_type")); t {
	case "", domain.FilterAll:
		spec.Type = domain.FilterAll
	case domain.TypeFilterOpen, domain.TypeFilterPassword:
		spec.Type = t
	default:
		return spec, fmt.Errorf("tournament_type inválido: %q", t)
	}

	switch st := strings.TrimSpace(v.Get("status")); st {
	case "", domain.FilterAll:
		spec.Status = domain.FilterAll
	case domain.StatusInProgress, domain.StatusInPreparation:
		spec.Status = st
	default:
		return spec, fmt.Errorf("status inválido: %q", st)
	}

	caps, err := parseInts(splitList(v["level_caps"]))
	if err != nil {
		return spec, fmt.Errorf("level_caps: %w", err)
	}
	spec.LevelCaps = caps

	if spec.MinPlayers, err = optInt(v, "min_players", false); err != nil {
		return spec, err
	}
	if spec.MaxPlayers, err = optInt(v, "max_players", true); err != nil {
		return spec, err
	}
	if spec.MinRemaining, err = optInt(v, "min_remaining_minutes", false); err != nil {
		return spec, err
	}
	if spec.MaxRemaining, err = optInt(v, "max_remaining_minutes", true); err != nil {
		return spec, err
	}
	return spec, nil
}

// acepta ?x=a&x=b y también ?x=a,b
func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, p := range strings.Split(r, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func parseInts(raw []string) ([]int, error) {
	var out []int
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q no es un número", s)
		}
		out = append(out, n)
	}
	return out, nil
}

// zeroIsUnset: para los máximos, 0 equivale a no mandar nada.
func optInt(v url.Values, key string, zeroIsUnset bool) (*int, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %q no es un número", key, s)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: no puede ser negativo", key)
	}
	if n == 0 && zeroIsUnset {
		return nil, nil
	}
	return &n, nil
}

// ValuesFromMap adapta los query params de API Gateway (un valor por clave, listas con coma).
func ValuesFromMap(m map[string]string) url.Values {
	v := url.Values{}
	for k, s := range m {
		v.Set(k, s)
	}
	return v
}
