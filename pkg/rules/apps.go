// kbgen/pkg/rules/apps.go

package rules

import (
	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// tmuxKeys are forwarded to tmux from both terminal emulators.
var tmuxKeys = []string{"c", "v", "h", "j", "k", "l", "n", "p"}

type vscodeBinding struct {
	Key     string
	Command string
}

var vscodeBindings = []vscodeBinding{
	{"1", "workbench.action.openSettingsJson"},
	{"2", "workbench.action.openGlobalKeybindingsFile"},
	{"3", "workbench.action.openGlobalKeybindings"},
	{"4", "workbench.view.extensions"},
	{"a", "workbench.action.toggleActivityBarVisibility"},
	{"h", "workbench.action.toggleSidebarVisibility"},
	{"j", "workbench.action.togglePanel"},
	{"e", "workbench.files.action.focusFilesExplorer"},
	{"l", "workbench.action.focusFirstEditorGroup"},
	{"s", "workbench.view.search"},
	{"p", "workbench.action.problems.focus"},
	{"o", "workbench.action.output.toggleOutput"},
	{"c", "workbench.debug.action.toggleRepl"},
	{"t", "workbench.action.terminal.focus"},
	{"k", "workbench.action.quickOpen"},
	{"r", "References: Find All References"},
	{"x", "workbench.action.showCommands"},
	{"i", "workbench.action.switchWindow"},
	{"y", "copyFilePath"},
	{"close_bracket", "workbench.action.moveEditorLeftInGroup"},
	{"non_us_pound", "workbench.action.moveEditorRightInGroup"},
}

func applicationFactoryRules() []kb.Rule {
	out := make([]kb.Rule, 0, 2*len(tmuxKeys)+len(vscodeBindings))
	for _, key := range tmuxKeys {
		out = append(out, ITerm2VK4Rule(key))
	}
	for _, key := range tmuxKeys {
		out = append(out, AlacrittyVK4Rule(key))
	}
	for _, b := range vscodeBindings {
		out = append(out, VSCodeVK4Rule(b.Key, b.Command))
	}
	return out
}

func tmuxWindowSwitch(prev, next string) []kb.Manipulator {
	return []kb.Manipulator{
		manip(kb.From(prev), kb.TmuxPrefix, kb.Key("p", kb.ModifierControl)),
		manip(kb.From(next), kb.TmuxPrefix, kb.Key("n", kb.ModifierControl)),
	}
}

func tmuxCopyPaste() []kb.Manipulator {
	return []kb.Manipulator{
		manip(kb.From("z"), kb.TmuxPrefix, kb.Key("close_bracket", kb.ModifierControl)),
		manip(kb.From("y"), kb.Key("return_or_enter"), kb.TmuxPrefix, kb.Key("m", kb.ModifierControl)),
	}
}

func lineEnds() []kb.Manipulator {
	return []kb.Manipulator{
		manip(kb.From("u"), kb.Key("0", kb.ModifierShift)),
		manip(kb.From("i"), kb.Key("4", kb.ModifierShift)),
	}
}

func terminalRules() []kb.Rule {
	return []kb.Rule{
		newRule("[iTerm2] o/p -> control+t control+p / control+t control+n", tmuxWindowSwitch("o", "p"), kb.ITerm2VK1),
		newRule("[iTerm2] VK2 + a/s -> control+t control+p / control+t control+n", tmuxWindowSwitch("a", "s"), kb.ITerm2VK2),
		newRule("[Alacritty] o/p -> control+t control+p / control+t control+n", tmuxWindowSwitch("o", "p"), kb.AlacrittyVK1),
		newRule("[iTerm2] z/y -> copy and paste", tmuxCopyPaste(), kb.ITerm2VK1),
		newRule("[Alacritty] z/y -> copy and paste", tmuxCopyPaste(), kb.AlacrittyVK1),
		newRule("[iTerm2] u/i -> shift+0 / shift+4", lineEnds(), kb.ITerm2VK1),
		newRule("[Alacritty] u/i -> shift+0 / shift+4", lineEnds(), kb.AlacrittyVK1),
	}
}
