// kbgen/tools/rule_gen/rule_gen_main_test.go

package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kb "rgehrsitz/kbgen/pkg/karabiner"
	"rgehrsitz/kbgen/pkg/validator"
)

func TestParseFlags(t *testing.T) {
	// Test case 1: Default values
	numRules, outputFile := parseFlags([]string{})
	assert.Equal(t, 1000, numRules)
	assert.Equal(t, "generated_ruleset.json", outputFile)

	// Test case 2: Custom values
	numRules, outputFile = parseFlags([]string{"-rules", "500", "-output", "custom_ruleset.json"})
	assert.Equal(t, 500, numRules)
	assert.Equal(t, "custom_ruleset.json", outputFile)
}

func TestGenerateRuleset(t *testing.T) {
	numRules := 50
	rs := generateRuleset(numRules)

	assert.Len(t, rs.Rules, numRules)
	assert.Equal(t, "Generated rules (50)", rs.Title)
	for i, rule := range rs.Rules {
		assert.True(t, strings.HasSuffix(rule.Description, fmt.Sprintf("rule-%d", i+1)))
	}
	assert.NoError(t, validator.ValidateRuleSet(rs))
}

func TestGenerateRule(t *testing.T) {
	rule := generateRule(1)

	require.NotEmpty(t, rule.Manipulators)
	assert.LessOrEqual(t, len(rule.Manipulators), 4)
	for _, m := range rule.Manipulators {
		assert.Equal(t, kb.BasicType, m.Type)
		require.Len(t, m.Conditions, 1)
		assert.True(t, m.Conditions[0].IsVariable())
		assert.True(t, strings.HasPrefix(rule.Description, fmt.Sprintf("[%s]", m.Conditions[0].Name)))
		assert.NotEmpty(t, m.From.KeyCode)
		assert.NotEmpty(t, m.To)
	}
}

func TestGenerateToEvent(t *testing.T) {
	for i := 0; i < 100; i++ {
		e := generateToEvent()
		if e.IsAction() {
			assert.True(t, e.ShellCommand != "" || e.MouseKey != nil)
		} else {
			assert.Contains(t, keyCodes, e.KeyCode)
			assert.LessOrEqual(t, len(e.Modifiers), 2)
		}
	}
}

func TestWriteRulesetToFile(t *testing.T) {
	rs := &kb.RuleSet{
		Title: "test",
		Rules: []kb.Rule{
			{
				Description: "[vk1] test-rule",
				Manipulators: kb.Chain([]kb.Manipulator{
					{From: kb.From("a"), To: []kb.ToEvent{kb.Key("b", kb.ModifierShift)}},
				}, kb.VK1Only, kb.Basic),
			},
		},
	}

	tempFile, err := os.CreateTemp("", "test_ruleset_*.json")
	assert.NoError(t, err)
	tempFile.Close()
	defer os.Remove(tempFile.Name())

	err = writeRulesetToFile(rs, tempFile.Name())
	assert.NoError(t, err)

	// Read the file and verify its contents
	content, err := os.ReadFile(tempFile.Name())
	assert.NoError(t, err)

	decoded, err := kb.Parse(content)
	assert.NoError(t, err)
	assert.Equal(t, rs, decoded)
}
