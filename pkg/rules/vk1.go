// kbgen/pkg/rules/vk1.go

package rules

import (
	"fmt"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// Mouse pointer steps per key repeat. Shift halves the speed.
const (
	mouseStep     = 3072
	mouseFineStep = 1536
	wheelStep     = 64
)

func mouseMoves(from func(string) kb.FromEvent, step int) []kb.Manipulator {
	return []kb.Manipulator{
		manip(from("n"), kb.Mouse(kb.MouseKey{X: -step})),
		manip(from("m"), kb.Mouse(kb.MouseKey{Y: step})),
		manip(from("comma"), kb.Mouse(kb.MouseKey{Y: -step})),
		manip(from("period"), kb.Mouse(kb.MouseKey{X: step})),
	}
}

func shifted(key string) kb.FromEvent {
	return kb.FromMandatory(key, kb.ModifierShift)
}

func functionKeys() []kb.Manipulator {
	keys := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "hyphen", "equal_sign"}
	ms := make([]kb.Manipulator, 0, len(keys))
	for i, key := range keys {
		ms = append(ms, manip(kb.From(key), kb.Key(fmt.Sprintf("f%d", i+1))))
	}
	return ms
}

func vk1Rules() []kb.Rule {
	return []kb.Rule{
		newRule("[VK1] h/j/k/l -> cursor move", []kb.Manipulator{
			manip(kb.FromAny("h"), kb.Key("left_arrow")),
			manip(kb.FromAny("j"), kb.Key("down_arrow")),
			manip(kb.FromAny("k"), kb.Key("up_arrow")),
			manip(kb.FromAny("l"), kb.Key("right_arrow")),
		}, kb.VK1Only),
		newRule("[VK1] f -> escape", []kb.Manipulator{
			manip(kb.FromAny("f"), kb.Key("escape")),
		}, kb.VK1Only),
		newRule("[VK1] s/d -> shift+control+j/shift+control+; (Google Japanese Input)", []kb.Manipulator{
			manip(kb.From("s"), kb.Key("j", kb.ModifierShift, kb.ModifierControl)),
			manip(kb.From("d"), kb.Key("semicolon", kb.ModifierShift, kb.ModifierControl)),
		}, kb.VK1Only),
		newRule("[VK1] a/z -> f10/f7", []kb.Manipulator{
			manip(kb.From("a"), kb.Key("f10")),
			manip(kb.From("z"), kb.Key("f7")),
		}, kb.VK1Only),
		newRule("[VK1] u/i -> command+left/command+right", []kb.Manipulator{
			manip(kb.FromAny("u"), kb.Key("left_arrow", kb.ModifierCommand)),
			manip(kb.FromAny("i"), kb.Key("right_arrow", kb.ModifierCommand)),
		}, kb.VK1Only),
		newRule("[VK1] g -> tab", []kb.Manipulator{
			manip(kb.FromAny("g"), kb.Key("tab")),
		}, kb.VK1Only),
		newRule("[VK1] o/p -> control+shift+tab/control+tab", []kb.Manipulator{
			manip(kb.From("o"), kb.Key("tab", kb.ModifierControl, kb.ModifierShift)),
			manip(kb.From("p"), kb.Key("tab", kb.ModifierControl)),
		}, kb.VK1Only),
		newRule("[VK1] y/t/x -> command+c/command+x/command+shift+v", []kb.Manipulator{
			manip(kb.From("y"), kb.Key("c", kb.ModifierCommand)),
			manip(kb.From("t"), kb.Key("x", kb.ModifierCommand)),
			manip(kb.From("x"), kb.Key("v", kb.ModifierCommand, kb.ModifierShift, kb.ModifierOption)),
		}, kb.VK1Only),
		newRule("[VK1] c/e -> backspace/delete", []kb.Manipulator{
			manip(kb.From("c"), kb.Key("delete_or_backspace")),
			manip(kb.From("e"), kb.Key("delete_forward")),
		}, kb.VK1Only),
		newRule("[VK1] [ -> command+z", []kb.Manipulator{
			manip(kb.FromAny("close_bracket"), kb.Key("z", kb.ModifierCommand)),
		}, kb.VK1Only),
		newRule("[VK1] colon -> command+h", []kb.Manipulator{
			manip(kb.From("quote"), kb.Key("h", kb.ModifierCommand)),
		}, kb.VK1Only),
		newRule("[VK1] n/m/comma/dot -> mouse move",
			append(mouseMoves(shifted, mouseFineStep), mouseMoves(kb.From, mouseStep)...),
			kb.VK1Only),
		newRule("[VK1] / -> left click, _ -> right click", []kb.Manipulator{
			manip(kb.FromAny("slash"), kb.Button("button1")),
			manip(kb.FromAny("international1"), kb.Button("button2")),
		}, kb.VK1Only),
		newRule("[VK1] @/] -> scroll", []kb.Manipulator{
			manip(kb.From("open_bracket"), kb.Mouse(kb.MouseKey{VerticalWheel: -wheelStep})),
			manip(kb.From("non_us_pound"), kb.Mouse(kb.MouseKey{VerticalWheel: wheelStep})),
			manip(kb.From("backslash"), kb.Mouse(kb.MouseKey{VerticalWheel: wheelStep})),
		}, kb.VK1Only),
		newRule("[VK1] numbers -> function keys", functionKeys(), kb.VK1Only),
		newRule("[VK1] b -> window maximize (ShiftIt)", []kb.Manipulator{
			manip(kb.From("b"), kb.Key("m", kb.ModifierControl, kb.ModifierOption, kb.ModifierCommand)),
		}, kb.VK1Only),
		newRule("[VK1] w -> command+w", []kb.Manipulator{
			manip(kb.From("w"), kb.Key("w", kb.ModifierCommand)),
		}, kb.VK1Only),
	}
}
