package gamemodes

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed modes.yaml
var builtin []byte

type Mode struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Common bool   `yaml:"common" json:"-"`
}

type catalogFile struct {
	Modes []Mode `yaml:"modes"`
}

// Catalog es de solo lectura después de cargarse.
type Catalog struct {
	byID  map[string]Mode
	order []string
}

// Default usa el yaml embebido.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("gamemodes: builtin catalog: %v", err))
	}
	return c
}

// Load lee un yaml externo (GAME_MODES_FILE) con el mismo formato que modes.yaml.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse game modes: %w", err)
	}
	c := &Catalog{byID: make(map[string]Mode, len(f.Modes))}
	for _, m := range f.Modes {
		if m.ID == "" {
			return nil, fmt.Errorf("game mode %q without id", m.Name)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicated game mode id %s", m.ID)
		}
		c.byID[m.ID] = m
		c.order = append(c.order, m.ID)
	}
	return c, nil
}

// Name: nombre legible o "Unknown (<id>)".
func (c *Catalog) Name(id string) string {
	if m, ok := c.byID[id]; ok {
		return m.Name
	}
	if id == "" {
		return "Unknown"
	}
	return "Unknown (" + id + ")"
}

// Common: id -> nombre de los modos que se ofrecen en los filtros.
func (c *Catalog) Common() map[string]string {
	out := map[string]string{}
	for _, id := range c.order {
		if m := c.byID[id]; m.Common {
			out[id] = m.Name
		}
	}
	return out
}

// CommonModes igual que Common pero ordenado por nombre (para choices de Discord y la CLI).
func (c *Catalog) CommonModes() []Mode {
	var out []Mode
	for _, id := range c.order {
		if m := c.byID[id]; m.Common {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
