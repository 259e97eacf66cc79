package domain

const (
	FilterAll = "all"

	TypeFilterOpen     = "open"
	TypeFilterPassword = "password"
)

// FilterSpec: todos los campos son opcionales, el valor cero no restringe nada.
type FilterSpec struct {
	Type      string   // all | open | password
	Status    string   // all | inProgress | inPreparation
	GameModes []string // vacío = todos
	LevelCaps []int    // vacío = todos

	MinPlayers   *int
	MaxPlayers   *int
	MinRemaining *int
	MaxRemaining *int
}

// HasTimeConstraints indica si la etapa temporal puede descartar algo.
func (f FilterSpec) HasTimeConstraints() bool {
	return f.MinRemaining != nil || f.MaxRemaining != nil
}

func IntPtr(v int) *int { return &v }
