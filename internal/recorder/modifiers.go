package recorder

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Modifier bits as reported by the browser input domain.
const (
	ModifierAlt     = 1
	ModifierControl = 2
	ModifierMeta    = 4
	ModifierShift   = 8
)

var modifierBits = []struct {
	bit  int
	name string
}{
	{ModifierAlt, "Alt"},
	{ModifierControl, "Control"},
	{ModifierMeta, "Meta"},
	{ModifierShift, "Shift"},
}

// Modifiers is the ordered list of modifier keys held during an action.
type Modifiers []string

// ModifiersFromMask expands a modifier bitmask in Alt, Control, Meta, Shift order.
func ModifiersFromMask(mask int) Modifiers {
	var m Modifiers
	for _, b := range modifierBits {
		if mask&b.bit != 0 {
			m = append(m, b.name)
		}
	}
	return m
}

// UnmarshalJSON accepts either a list of modifier names or a bitmask.
func (m *Modifiers) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*m = names
		return nil
	}
	var mask int
	if err := json.Unmarshal(data, &mask); err != nil {
		return errors.Errorf("modifiers must be a list of names or a bitmask, got %s", data)
	}
	*m = ModifiersFromMask(mask)
	return nil
}
