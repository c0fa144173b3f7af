// kbgen/pkg/validator/validator.go

// Package validator checks the invariants the generator promises about its
// own output. It does not know the consuming engine's schema.
package validator

import (
	"errors"
	"fmt"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// ValidateRuleSet reports every violation found in rs, joined.
func ValidateRuleSet(rs *kb.RuleSet) error {
	if rs == nil {
		return errors.New("rule set is nil")
	}
	var errs []error
	if rs.Title == "" {
		errs = append(errs, errors.New("rule set title is required"))
	}
	for i := range rs.Rules {
		if err := ValidateRule(&rs.Rules[i]); err != nil {
			errs = append(errs, fmt.Errorf("rule %d %q: %w", i, rs.Rules[i].Description, err))
		}
	}
	return errors.Join(errs...)
}

func ValidateRule(rule *kb.Rule) error {
	var errs []error
	if rule.Description == "" {
		errs = append(errs, errors.New("rule description is required"))
	}
	if len(rule.Manipulators) == 0 {
		errs = append(errs, errors.New("rule must have at least one manipulator"))
	}
	for i := range rule.Manipulators {
		if err := validateManipulator(&rule.Manipulators[i]); err != nil {
			errs = append(errs, fmt.Errorf("manipulator %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func validateManipulator(m *kb.Manipulator) error {
	var errs []error
	if m.Type != kb.BasicType {
		errs = append(errs, fmt.Errorf("type must be %q, got %q", kb.BasicType, m.Type))
	}
	if m.From.KeyCode == "" {
		errs = append(errs, errors.New("from.key_code is required"))
	}
	if len(m.To) == 0 {
		errs = append(errs, errors.New("at least one to event is required"))
	}
	if err := validateConditions(m.Conditions); err != nil {
		errs = append(errs, err)
	}
	for _, group := range [][]kb.ToEvent{m.To, m.ToAfterKeyUp, m.ToIfAlone} {
		for _, e := range group {
			if e.SetVariable != nil {
				if err := validateFlag(e.SetVariable.Name, e.SetVariable.Value); err != nil {
					errs = append(errs, fmt.Errorf("set_variable: %w", err))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// validateConditions also enforces that application gates precede
// virtual-key gates.
func validateConditions(conds []kb.Condition) error {
	var errs []error
	seenVariable := false
	for i, c := range conds {
		switch c.Type {
		case kb.ConditionVariableIf:
			seenVariable = true
			if c.Value == nil {
				errs = append(errs, fmt.Errorf("condition %d: variable_if needs a value", i))
				continue
			}
			if err := validateFlag(c.Name, *c.Value); err != nil {
				errs = append(errs, fmt.Errorf("condition %d: %w", i, err))
			}
		case kb.ConditionFrontmostAppIf:
			if seenVariable {
				errs = append(errs, fmt.Errorf("condition %d: application condition must precede virtual-key conditions", i))
			}
			if len(c.BundleIdentifiers) == 0 {
				errs = append(errs, fmt.Errorf("condition %d: bundle_identifiers is empty", i))
			}
		default:
			errs = append(errs, fmt.Errorf("condition %d: unknown type %q", i, c.Type))
		}
	}
	return errors.Join(errs...)
}

func validateFlag(vk kb.VirtualKey, value int) error {
	if !vk.Valid() {
		return fmt.Errorf("unknown virtual key %q", vk)
	}
	if value != kb.On && value != kb.Off {
		return fmt.Errorf("virtual key %s takes 0 or 1, got %d", vk, value)
	}
	return nil
}
