// kbgen/pkg/rules/factories.go

package rules

import (
	"fmt"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// hyper is the modifier chord VSCode keybindings listen for.
var hyper = []string{kb.ModifierControl, kb.ModifierShift, kb.ModifierOption, kb.ModifierCommand}

// newRule decorates ms and always finishes with the basic-type tag.
func newRule(description string, ms []kb.Manipulator, decorators ...kb.Decorator) kb.Rule {
	return kb.Rule{
		Description:  description,
		Manipulators: kb.Chain(ms, append(decorators, kb.Basic)...),
	}
}

func manip(from kb.FromEvent, to ...kb.ToEvent) kb.Manipulator {
	return kb.Manipulator{From: from, To: to}
}

func tmuxPaneRule(app, key string, decorator kb.Decorator) kb.Rule {
	return newRule(
		fmt.Sprintf("[%s][VK4] %s -> control+t %s", app, key, key),
		[]kb.Manipulator{
			manip(kb.From(key), kb.TmuxPrefix, kb.Key(key, kb.ModifierControl)),
		},
		decorator,
	)
}

// ITerm2VK4Rule sends the tmux prefix followed by control+key while iTerm2
// has focus and VK4 is held.
func ITerm2VK4Rule(key string) kb.Rule {
	return tmuxPaneRule("iTerm2", key, kb.ITerm2VK4)
}

// AlacrittyVK4Rule is ITerm2VK4Rule for Alacritty.
func AlacrittyVK4Rule(key string) kb.Rule {
	return tmuxPaneRule("Alacritty", key, kb.AlacrittyVK4)
}

// VSCodeVK4Rule maps key to the hyper chord bound to command in VSCode.
func VSCodeVK4Rule(key, command string) kb.Rule {
	return newRule(
		fmt.Sprintf("[VSCODE][VK4] %s -> %s", key, command),
		[]kb.Manipulator{
			manip(kb.From(key), kb.Key(key, hyper...)),
		},
		kb.VSCodeVK4,
	)
}
