// kbgen/pkg/rules/ruleset.go

// Package rules holds the personal rule set and the factories that build it.
package rules

import (
	kb "rgehrsitz/kbgen/pkg/karabiner"
	"rgehrsitz/kbgen/pkg/logging"
)

const DefaultTitle = "Personal rules (@hioki-daichi)"

// Build assembles the rule set titled DefaultTitle.
func Build() *kb.RuleSet {
	return BuildTitled(DefaultTitle)
}

// BuildTitled assembles the rule set in engine evaluation order: layer
// activation, per-application factories, layer literals, then ungated rules.
func BuildTitled(title string) *kb.RuleSet {
	logger := logging.Component("rules")

	sections := []struct {
		name  string
		rules []kb.Rule
	}{
		{"layers", layerRules()},
		{"applications", applicationFactoryRules()},
		{"terminals", terminalRules()},
		{"vk1", vk1Rules()},
		{"vk2", vk2Rules()},
		{"vk3", vk3Rules()},
		{"global", globalRules()},
	}

	rs := &kb.RuleSet{Title: title}
	for _, s := range sections {
		logger.Debug().Str("section", s.name).Int("rules", len(s.rules)).Msg("Adding rule section")
		rs.Rules = append(rs.Rules, s.rules...)
	}

	logger.Debug().Int("rules", len(rs.Rules)).Int("manipulators", rs.ManipulatorCount()).Msg("Built rule set")
	return rs
}
