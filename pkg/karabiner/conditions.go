// kbgen/pkg/karabiner/conditions.go

package karabiner

// VirtualKey names a software layer flag toggled by a held physical key.
type VirtualKey string

const (
	VK1 VirtualKey = "vk1"
	VK2 VirtualKey = "vk2"
	VK3 VirtualKey = "vk3"
	VK4 VirtualKey = "vk4"
)

// VirtualKeys lists every flag the generator may set or test.
var VirtualKeys = []VirtualKey{VK1, VK2, VK3, VK4}

// Flag values.
const (
	Off = 0
	On  = 1
)

const (
	BundleITerm2    = "com.googlecode.iterm2"
	BundleVSCode    = "com.microsoft.VSCode"
	BundleAlacritty = "io.alacritty"
)

// Valid reports whether vk is one of the enumerated flags.
func (vk VirtualKey) Valid() bool {
	for _, known := range VirtualKeys {
		if vk == known {
			return true
		}
	}
	return false
}

// VariableIf gates a manipulator on vk holding value.
func VariableIf(vk VirtualKey, value int) Condition {
	v := value
	return Condition{Type: ConditionVariableIf, Name: vk, Value: &v}
}

// FrontmostApplicationIf gates a manipulator on one of bundleIDs having focus.
func FrontmostApplicationIf(bundleIDs ...string) Condition {
	return Condition{Type: ConditionFrontmostAppIf, BundleIdentifiers: bundleIDs}
}

var (
	WithVK1 = VariableIf(VK1, On)
	WithVK2 = VariableIf(VK2, On)
	WithVK3 = VariableIf(VK3, On)
	WithVK4 = VariableIf(VK4, On)

	OnITerm2    = FrontmostApplicationIf(BundleITerm2)
	OnVSCode    = FrontmostApplicationIf(BundleVSCode)
	OnAlacritty = FrontmostApplicationIf(BundleAlacritty)
)

// TmuxPrefix is the tmux prefix chord sent before terminal pane commands.
var TmuxPrefix = Key("t", ModifierControl)

// IsVariable reports whether c is a virtual-key condition.
func (c Condition) IsVariable() bool {
	return c.Type == ConditionVariableIf
}

// IsApplication reports whether c is a frontmost-application condition.
func (c Condition) IsApplication() bool {
	return c.Type == ConditionFrontmostAppIf
}
