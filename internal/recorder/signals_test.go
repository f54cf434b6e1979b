package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSignalsLastWins(t *testing.T) {
	a := Click{
		Signals: WithSignals(
			Popup{Alias: "page1"},
			Download{Alias: "1"},
			Popup{Alias: "page2"},
			Download{Alias: "2"},
		),
		Selector: "#a",
	}

	set := ExtractSignals(a)
	require.NotNil(t, set.Popup)
	require.NotNil(t, set.Download)
	assert.Equal(t, "page2", set.Popup.Alias)
	assert.Equal(t, "2", set.Download.Alias)
	assert.Nil(t, set.Dialog)
	assert.Nil(t, set.AssertNavigation)
}

func TestExtractSignalsEmpty(t *testing.T) {
	assert.Equal(t, SignalSet{}, ExtractSignals(Check{Selector: "#c"}))
}

func TestModifiersFromMask(t *testing.T) {
	assert.Nil(t, ModifiersFromMask(0))
	assert.Equal(t, Modifiers{"Alt", "Control", "Meta", "Shift"}, ModifiersFromMask(15))
	assert.Equal(t, Modifiers{"Meta"}, ModifiersFromMask(ModifierMeta))
}

func TestKinds(t *testing.T) {
	tests := []struct {
		action Action
		want   Kind
	}{
		{OpenPage{}, KindOpenPage},
		{ClosePage{}, KindClosePage},
		{Click{}, KindClick},
		{Check{}, KindCheck},
		{Uncheck{}, KindUncheck},
		{Fill{}, KindFill},
		{SetInputFiles{}, KindSetInputFiles},
		{Press{}, KindPress},
		{Navigate{}, KindNavigate},
		{Select{}, KindSelect},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.action.Kind())
	}
}

type embedsSignals struct{ Signals }

func (embedsSignals) Kind() Kind { return KindClick }

func TestEmbeddingSignalsDoesNotMakeAnAction(t *testing.T) {
	var v any = embedsSignals{}
	_, ok := v.(Action)
	assert.False(t, ok)

	v = Click{}
	_, ok = v.(Action)
	assert.True(t, ok)
}
