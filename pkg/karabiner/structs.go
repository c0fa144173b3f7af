// kbgen/pkg/karabiner/structs.go

package karabiner

// BasicType is the only manipulator type this generator emits.
const BasicType = "basic"

const (
	ConditionVariableIf     = "variable_if"
	ConditionFrontmostAppIf = "frontmost_application_if"

	ModifierAny     = "any"
	ModifierShift   = "shift"
	ModifierControl = "control"
	ModifierOption  = "option"
	ModifierCommand = "command"
)

type RuleSet struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	Rules []Rule `json:"rules" yaml:"rules" toml:"rules"`
}

type Rule struct {
	Description  string        `json:"description" yaml:"description" toml:"description"`
	Manipulators []Manipulator `json:"manipulators" yaml:"manipulators" toml:"manipulators"`
}

// Manipulator fields are declared in the order the engine documents list
// them, which is also the encoded key order.
type Manipulator struct {
	Type         string      `json:"type" yaml:"type" toml:"type"`
	Conditions   []Condition `json:"conditions,omitempty" yaml:"conditions,omitempty" toml:"conditions,omitempty"`
	From         FromEvent   `json:"from" yaml:"from" toml:"from"`
	To           []ToEvent   `json:"to" yaml:"to" toml:"to"`
	ToAfterKeyUp []ToEvent   `json:"to_after_key_up,omitempty" yaml:"to_after_key_up,omitempty" toml:"to_after_key_up,omitempty"`
	ToIfAlone    []ToEvent   `json:"to_if_alone,omitempty" yaml:"to_if_alone,omitempty" toml:"to_if_alone,omitempty"`
}

type FromEvent struct {
	KeyCode   string         `json:"key_code" yaml:"key_code" toml:"key_code"`
	Modifiers *FromModifiers `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
}

type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty" yaml:"mandatory,omitempty" toml:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty" yaml:"optional,omitempty" toml:"optional,omitempty"`
}

// ToEvent is either a key event (KeyCode plus Modifiers) or exactly one
// action field.
type ToEvent struct {
	KeyCode        string       `json:"key_code,omitempty" yaml:"key_code,omitempty" toml:"key_code,omitempty"`
	Modifiers      []string     `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	ShellCommand   string       `json:"shell_command,omitempty" yaml:"shell_command,omitempty" toml:"shell_command,omitempty"`
	SetVariable    *SetVariable `json:"set_variable,omitempty" yaml:"set_variable,omitempty" toml:"set_variable,omitempty"`
	MouseKey       *MouseKey    `json:"mouse_key,omitempty" yaml:"mouse_key,omitempty" toml:"mouse_key,omitempty"`
	PointingButton string       `json:"pointing_button,omitempty" yaml:"pointing_button,omitempty" toml:"pointing_button,omitempty"`
}

type SetVariable struct {
	Name  VirtualKey `json:"name" yaml:"name" toml:"name"`
	Value int        `json:"value" yaml:"value" toml:"value"`
}

type MouseKey struct {
	X               int `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y               int `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	VerticalWheel   int `json:"vertical_wheel,omitempty" yaml:"vertical_wheel,omitempty" toml:"vertical_wheel,omitempty"`
	HorizontalWheel int `json:"horizontal_wheel,omitempty" yaml:"horizontal_wheel,omitempty" toml:"horizontal_wheel,omitempty"`
}

// Condition is a tagged variant keyed on Type. variable_if uses Name and
// Value, frontmost_application_if uses BundleIdentifiers.
type Condition struct {
	Type              string     `json:"type" yaml:"type" toml:"type"`
	Name              VirtualKey `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Value             *int       `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	BundleIdentifiers []string   `json:"bundle_identifiers,omitempty" yaml:"bundle_identifiers,omitempty" toml:"bundle_identifiers,omitempty"`
}

// Key returns a key event with optional modifiers.
func Key(keyCode string, modifiers ...string) ToEvent {
	if len(modifiers) == 0 {
		return ToEvent{KeyCode: keyCode}
	}
	return ToEvent{KeyCode: keyCode, Modifiers: modifiers}
}

// Shell returns an action running command through the engine's shell.
func Shell(command string) ToEvent {
	return ToEvent{ShellCommand: command}
}

// Set returns an action assigning value to vk.
func Set(vk VirtualKey, value int) ToEvent {
	return ToEvent{SetVariable: &SetVariable{Name: vk, Value: value}}
}

func Mouse(m MouseKey) ToEvent {
	return ToEvent{MouseKey: &m}
}

func Button(name string) ToEvent {
	return ToEvent{PointingButton: name}
}

// From matches keyCode with no modifier constraints.
func From(keyCode string) FromEvent {
	return FromEvent{KeyCode: keyCode}
}

// FromAny matches keyCode whatever modifiers are held.
func FromAny(keyCode string) FromEvent {
	return FromEvent{KeyCode: keyCode, Modifiers: &FromModifiers{Optional: []string{ModifierAny}}}
}

// FromMandatory matches keyCode only while all of modifiers are held.
func FromMandatory(keyCode string, modifiers ...string) FromEvent {
	return FromEvent{KeyCode: keyCode, Modifiers: &FromModifiers{Mandatory: modifiers}}
}

// IsAction reports whether e carries an action rather than a key event.
func (e ToEvent) IsAction() bool {
	return e.ShellCommand != "" || e.SetVariable != nil || e.MouseKey != nil || e.PointingButton != ""
}
