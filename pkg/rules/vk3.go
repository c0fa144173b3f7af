// kbgen/pkg/rules/vk3.go

package rules

import (
	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// homeRowDigits maps the home row onto the number row.
var homeRowDigits = [][2]string{
	{"a", "1"}, {"s", "2"}, {"d", "3"}, {"f", "4"}, {"g", "5"}, {"h", "6"},
	{"j", "7"}, {"k", "8"}, {"l", "9"}, {"semicolon", "0"}, {"quote", "hyphen"},
}

func vk3Rules() []kb.Rule {
	ms := make([]kb.Manipulator, 0, len(homeRowDigits))
	for _, pair := range homeRowDigits {
		ms = append(ms, manip(kb.FromAny(pair[0]), kb.Key(pair[1])))
	}
	return []kb.Rule{
		newRule("[VK3] a/s/d/f/g/h/j/k/l/;/: -> 1/2/3/4/5/6/7/8/9/0/-", ms, kb.VK3Only),
	}
}

// globalRules are active regardless of any layer.
func globalRules() []kb.Rule {
	return []kb.Rule{
		newRule("; -> enter", []kb.Manipulator{
			manip(kb.FromMandatory("semicolon", kb.ModifierControl), kb.Key("semicolon")),
			manip(kb.FromMandatory("semicolon", kb.ModifierShift), kb.Key("semicolon", kb.ModifierShift)),
			manip(kb.FromAny("semicolon"), kb.Key("return_or_enter")),
		}),
		newRule("control+: -> '", []kb.Manipulator{
			manip(kb.FromMandatory("colon", kb.ModifierControl), kb.Key("7", kb.ModifierShift)),
		}),
		newRule("caps_lock -> vk_none", []kb.Manipulator{
			manip(kb.FromAny("caps_lock"), kb.Key("vk_none")),
		}),
	}
}
