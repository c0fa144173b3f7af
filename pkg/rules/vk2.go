// kbgen/pkg/rules/vk2.go

package rules

import (
	"fmt"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// shiftIt is the ShiftIt window manager's modifier chord.
var shiftIt = []string{kb.ModifierCommand, kb.ModifierControl, kb.ModifierOption}

// shiftItSlot is the chord order ShiftIt uses for its numbered slots.
var shiftItSlot = []string{kb.ModifierControl, kb.ModifierOption, kb.ModifierCommand}

type launcher struct {
	Label   string
	Key     string
	Command string
}

func openApp(app string) string {
	return fmt.Sprintf("open -a '%s'", app)
}

var launchers = []launcher{
	{"Google Chrome.app", "j", openApp("Google Chrome.app")},
	{"iTerm.app", "k", openApp("iTerm.app")},
	{"Alfred 4.app", "l", openApp("Alfred 4.app")},
	{"snip search by Alfred 4", "e", `osascript -e "tell application \"Alfred 4\" to search \"snip \""`},
	{"Slack.app", "slash", openApp("Slack.app")},
	{"Mail.app", "open_bracket", openApp("Mail.app")},
	{"Things.app", "t", openApp("Things.app")},
	{"Tweetbot.app", "b", openApp("Tweetbot.app")},
	{"Skim.app", "period", openApp("Skim.app")},
	{"Notes.app", "r", openApp("Notes.app")},
	{"Visual Studio Code.app", "v", openApp("Visual Studio Code.app")},
	{"GoLand.app", "quote", openApp("GoLand.app")},
	{"Alacritty.app", "c", openApp("Alacritty.app")},
	{"1Password.app", "w", openApp("1Password.app")},
}

// keyLabels renders key codes the way descriptions spell them.
var keyLabels = map[string]string{
	"slash":        "/",
	"open_bracket": "@",
	"period":       ".",
	"quote":        ":",
}

func label(key string) string {
	if l, ok := keyLabels[key]; ok {
		return l
	}
	return key
}

func (l launcher) Rule() kb.Rule {
	return newRule(
		fmt.Sprintf("[VK2] %s -> %s", label(l.Key), l.Label),
		[]kb.Manipulator{manip(kb.From(l.Key), kb.Shell(l.Command))},
		kb.VK2Only,
	)
}

func vk2Rules() []kb.Rule {
	out := []kb.Rule{
		newRule("[VK2] f/d -> command+tab/command+shift+tab", []kb.Manipulator{
			manip(kb.From("f"), kb.Key("tab", kb.ModifierCommand)),
			manip(kb.From("d"), kb.Key("tab", kb.ModifierCommand, kb.ModifierShift)),
		}, kb.VK2Only),
		newRule("[VK2] s/a -> control+tab/control+shift+tab", []kb.Manipulator{
			manip(kb.From("s"), kb.Key("tab", kb.ModifierControl)),
			manip(kb.From("a"), kb.Key("tab", kb.ModifierControl, kb.ModifierShift)),
		}, kb.VK2Only),
		newRule("[VK2] 9/0 -> command+shift+;/command+hyphen", []kb.Manipulator{
			manip(kb.From("9"), kb.Key("semicolon", kb.ModifierCommand, kb.ModifierShift)),
			manip(kb.From("0"), kb.Key("hyphen", kb.ModifierCommand)),
		}, kb.VK2Only),
		newRule("[VK2] 1/2 -> volume decrement/increment", []kb.Manipulator{
			manip(kb.From("1"), kb.Key("volume_decrement")),
			manip(kb.From("2"), kb.Key("volume_increment")),
		}, kb.VK2Only),
		newRule("[VK2] 3/4 -> display brightness decrement/increment", []kb.Manipulator{
			manip(kb.From("3"), kb.Key("display_brightness_decrement")),
			manip(kb.From("4"), kb.Key("display_brightness_increment")),
		}, kb.VK2Only),
		newRule("[VK2] ShiftIt", []kb.Manipulator{
			manip(kb.From("h"), kb.Key("left_arrow", shiftIt...)),
			manip(kb.From("o"), kb.Key("right_arrow", shiftIt...)),
			manip(kb.From("n"), kb.Key("down_arrow", shiftIt...)),
			manip(kb.From("p"), kb.Key("up_arrow", shiftIt...)),
			manip(kb.From("u"), kb.Key("1", shiftItSlot...)),
			manip(kb.From("i"), kb.Key("2", shiftItSlot...)),
			manip(kb.FromEvent{KeyCode: "m", Modifiers: &kb.FromModifiers{}}, kb.Key("3", shiftItSlot...)),
			manip(kb.From("comma"), kb.Key("4", shiftItSlot...)),
		}, kb.VK2Only),
	}
	for _, l := range launchers {
		out = append(out, l.Rule())
	}
	return out
}
