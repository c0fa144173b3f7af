// kbgen/pkg/karabiner/decorators.go

package karabiner

// Decorator merges a shared fragment into every manipulator of a rule.
// Implementations return a new slice of the same length and order and never
// modify their input.
type Decorator func([]Manipulator) []Manipulator

// Basic tags every manipulator that has no type yet with BasicType.
func Basic(ms []Manipulator) []Manipulator {
	out := make([]Manipulator, len(ms))
	for i, m := range ms {
		if m.Type == "" {
			m.Type = BasicType
		}
		out[i] = m
	}
	return out
}

// WithConditions returns a Decorator that sets conditions on every
// manipulator that has none. Fields already present win.
func WithConditions(conditions ...Condition) Decorator {
	return func(ms []Manipulator) []Manipulator {
		out := make([]Manipulator, len(ms))
		for i, m := range ms {
			if m.Conditions == nil {
				m.Conditions = append([]Condition(nil), conditions...)
			}
			out[i] = m
		}
		return out
	}
}

var (
	VK1Only = WithConditions(WithVK1)
	VK2Only = WithConditions(WithVK2)
	VK3Only = WithConditions(WithVK3)
	VK4Only = WithConditions(WithVK4)

	ITerm2VK1    = WithConditions(OnITerm2, WithVK1)
	ITerm2VK2    = WithConditions(OnITerm2, WithVK2)
	ITerm2VK4    = WithConditions(OnITerm2, WithVK4)
	AlacrittyVK1 = WithConditions(OnAlacritty, WithVK1)
	AlacrittyVK4 = WithConditions(OnAlacritty, WithVK4)
	VSCodeVK4    = WithConditions(OnVSCode, WithVK4)
)

// Chain applies decorators left to right.
func Chain(ms []Manipulator, decorators ...Decorator) []Manipulator {
	for _, d := range decorators {
		ms = d(ms)
	}
	return ms
}
