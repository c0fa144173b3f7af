// kbgen/pkg/rules/layers.go

package rules

import (
	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// Layer describes which physical keys hold a virtual key on.
type Layer struct {
	Description string
	VirtualKey  kb.VirtualKey
	Keys        []string
	// Alone is sent when the key is tapped without another key. Empty means
	// no fallback; AloneSelf sends the activation key itself.
	Alone     string
	AloneSelf bool
}

var layers = []Layer{
	{Description: "lang1/international4 -> VK1", VirtualKey: kb.VK1, Keys: []string{"lang1", "international4"}, Alone: "japanese_kana"},
	{Description: "lang2/international5 -> VK2", VirtualKey: kb.VK2, Keys: []string{"lang2", "international5"}, Alone: "japanese_eisuu"},
	{Description: "right_gui/international2 -> VK3", VirtualKey: kb.VK3, Keys: []string{"right_gui", "international2"}},
	{Description: "tab -> VK4", VirtualKey: kb.VK4, Keys: []string{"tab"}, AloneSelf: true},
}

// Rule builds the activation rule: key down sets the flag, key up clears it.
func (l Layer) Rule() kb.Rule {
	ms := make([]kb.Manipulator, 0, len(l.Keys))
	for _, key := range l.Keys {
		m := kb.Manipulator{
			From:         kb.FromAny(key),
			To:           []kb.ToEvent{kb.Set(l.VirtualKey, kb.On)},
			ToAfterKeyUp: []kb.ToEvent{kb.Set(l.VirtualKey, kb.Off)},
		}
		switch {
		case l.AloneSelf:
			m.ToIfAlone = []kb.ToEvent{kb.Key(key)}
		case l.Alone != "":
			m.ToIfAlone = []kb.ToEvent{kb.Key(l.Alone)}
		}
		ms = append(ms, m)
	}
	return newRule(l.Description, ms)
}

func layerRules() []kb.Rule {
	out := make([]kb.Rule, 0, len(layers))
	for _, l := range layers {
		out = append(out, l.Rule())
	}
	return out
}
