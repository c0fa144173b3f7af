// kbgen/pkg/rules/layers_test.go

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

func TestVK1LayerRule(t *testing.T) {
	rule := layerRules()[0]

	assert.Equal(t, "lang1/international4 -> VK1", rule.Description)
	require.Len(t, rule.Manipulators, 2)

	for i, key := range []string{"lang1", "international4"} {
		m := rule.Manipulators[i]
		assert.Equal(t, kb.BasicType, m.Type)
		assert.Nil(t, m.Conditions)
		assert.Equal(t, kb.FromAny(key), m.From)
		assert.Equal(t, []kb.ToEvent{kb.Set(kb.VK1, kb.On)}, m.To)
		assert.Equal(t, []kb.ToEvent{kb.Set(kb.VK1, kb.Off)}, m.ToAfterKeyUp)
		assert.Equal(t, []kb.ToEvent{kb.Key("japanese_kana")}, m.ToIfAlone)
	}
}

func TestLayerRules(t *testing.T) {
	tests := []struct {
		description string
		vk          kb.VirtualKey
		keys        []string
		alone       []string
	}{
		{"lang1/international4 -> VK1", kb.VK1, []string{"lang1", "international4"}, []string{"japanese_kana", "japanese_kana"}},
		{"lang2/international5 -> VK2", kb.VK2, []string{"lang2", "international5"}, []string{"japanese_eisuu", "japanese_eisuu"}},
		{"right_gui/international2 -> VK3", kb.VK3, []string{"right_gui", "international2"}, []string{"", ""}},
		{"tab -> VK4", kb.VK4, []string{"tab"}, []string{"tab"}},
	}

	rules := layerRules()
	require.Len(t, rules, len(tests))

	for i, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			rule := rules[i]
			assert.Equal(t, tt.description, rule.Description)
			require.Len(t, rule.Manipulators, len(tt.keys))
			for j, m := range rule.Manipulators {
				assert.Equal(t, tt.keys[j], m.From.KeyCode)
				assert.Equal(t, tt.vk, m.To[0].SetVariable.Name)
				assert.Equal(t, kb.On, m.To[0].SetVariable.Value)
				assert.Equal(t, kb.Off, m.ToAfterKeyUp[0].SetVariable.Value)
				if tt.alone[j] == "" {
					assert.Nil(t, m.ToIfAlone)
				} else {
					assert.Equal(t, tt.alone[j], m.ToIfAlone[0].KeyCode)
				}
			}
		})
	}
}
