// kbgen/pkg/output/table.go

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

var bundleNames = map[string]string{
	kb.BundleITerm2:    "iTerm2",
	kb.BundleVSCode:    "VSCode",
	kb.BundleAlacritty: "Alacritty",
}

// Gate summarises the conditions of a rule's first manipulator, e.g.
// "iTerm2+vk4". Ungated rules report "always".
func Gate(rule kb.Rule) string {
	if len(rule.Manipulators) == 0 || len(rule.Manipulators[0].Conditions) == 0 {
		return "always"
	}
	parts := make([]string, 0, len(rule.Manipulators[0].Conditions))
	for _, c := range rule.Manipulators[0].Conditions {
		switch {
		case c.IsApplication():
			for _, id := range c.BundleIdentifiers {
				name, ok := bundleNames[id]
				if !ok {
					name = id
				}
				parts = append(parts, name)
			}
		case c.IsVariable():
			parts = append(parts, string(c.Name))
		}
	}
	return strings.Join(parts, "+")
}

// PrintRules renders one row per rule.
func PrintRules(w io.Writer, rs *kb.RuleSet) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Description", "Manipulators", "Gate")

	for i, rule := range rs.Rules {
		if err := table.Append(
			fmt.Sprintf("%d", i+1),
			rule.Description,
			fmt.Sprintf("%d", len(rule.Manipulators)),
			Gate(rule),
		); err != nil {
			return err
		}
	}

	return table.Render()
}
