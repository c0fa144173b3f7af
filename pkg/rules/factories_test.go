// kbgen/pkg/rules/factories_test.go

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

func TestITerm2VK4Rule(t *testing.T) {
	rule := ITerm2VK4Rule("c")

	assert.Equal(t, "[iTerm2][VK4] c -> control+t c", rule.Description)
	require.Len(t, rule.Manipulators, 1)

	m := rule.Manipulators[0]
	assert.Equal(t, kb.BasicType, m.Type)
	assert.Equal(t, "c", m.From.KeyCode)
	assert.Nil(t, m.From.Modifiers)
	assert.Equal(t, []kb.ToEvent{kb.TmuxPrefix, kb.Key("c", kb.ModifierControl)}, m.To)
	require.Len(t, m.Conditions, 2)
	assert.Equal(t, kb.OnITerm2, m.Conditions[0])
	assert.Equal(t, kb.WithVK4, m.Conditions[1])
}

func TestAlacrittyVK4Rule(t *testing.T) {
	rule := AlacrittyVK4Rule("n")

	assert.Equal(t, "[Alacritty][VK4] n -> control+t n", rule.Description)
	require.Len(t, rule.Manipulators, 1)
	m := rule.Manipulators[0]
	assert.Equal(t, "n", m.From.KeyCode)
	assert.Equal(t, []kb.Condition{kb.OnAlacritty, kb.WithVK4}, m.Conditions)
	assert.Equal(t, kb.Key("t", kb.ModifierControl), m.To[0])
}

func TestVSCodeVK4Rule(t *testing.T) {
	rule := VSCodeVK4Rule("close_bracket", "workbench.action.moveEditorLeftInGroup")

	assert.Equal(t, "[VSCODE][VK4] close_bracket -> workbench.action.moveEditorLeftInGroup", rule.Description)
	require.Len(t, rule.Manipulators, 1)
	m := rule.Manipulators[0]
	assert.Equal(t, []kb.Condition{kb.OnVSCode, kb.WithVK4}, m.Conditions)
	assert.Equal(t, []kb.ToEvent{
		kb.Key("close_bracket", kb.ModifierControl, kb.ModifierShift, kb.ModifierOption, kb.ModifierCommand),
	}, m.To)
}

func TestFactoriesAcceptAnyKey(t *testing.T) {
	for _, key := range []string{"", "weird key", `"quoted"`, "ünïcode"} {
		rule := ITerm2VK4Rule(key)
		assert.Equal(t, key, rule.Manipulators[0].From.KeyCode)
		assert.Contains(t, rule.Description, key)

		rule = VSCodeVK4Rule(key, "cmd "+key)
		assert.Equal(t, key, rule.Manipulators[0].From.KeyCode)
		assert.Contains(t, rule.Description, "cmd "+key)
	}
}
