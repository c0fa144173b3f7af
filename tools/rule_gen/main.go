// kbgen/tools/rule_gen/main.go

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	kb "rgehrsitz/kbgen/pkg/karabiner"
)

// keyCodes are the plain keys a random rule may trigger on or emit.
var keyCodes = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"left_arrow", "right_arrow", "up_arrow", "down_arrow", "escape", "tab",
}

var modifiers = []string{kb.ModifierShift, kb.ModifierControl, kb.ModifierOption, kb.ModifierCommand}

var gates = map[kb.VirtualKey]kb.Decorator{
	kb.VK1: kb.VK1Only,
	kb.VK2: kb.VK2Only,
	kb.VK3: kb.VK3Only,
	kb.VK4: kb.VK4Only,
}

var faker = gofakeit.New(0)

func randomModifiers() []string {
	n := faker.Number(0, 2)
	if n == 0 {
		return nil
	}
	out := append([]string(nil), modifiers...)
	faker.ShuffleStrings(out)
	return out[:n]
}

func generateToEvent() kb.ToEvent {
	switch faker.Number(0, 9) {
	case 0:
		return kb.Shell(fmt.Sprintf("open -a '%s.app'", faker.AppName()))
	case 1:
		return kb.Mouse(kb.MouseKey{X: faker.Number(-3072, 3072), Y: faker.Number(-3072, 3072)})
	default:
		return kb.Key(faker.RandomString(keyCodes), randomModifiers()...)
	}
}

func generateManipulator() kb.Manipulator {
	to := make([]kb.ToEvent, faker.Number(1, 2))
	for i := range to {
		to[i] = generateToEvent()
	}
	return kb.Manipulator{From: kb.From(faker.RandomString(keyCodes)), To: to}
}

func generateRule(index int) kb.Rule {
	vk := kb.VirtualKeys[faker.Number(0, len(kb.VirtualKeys)-1)]

	ms := make([]kb.Manipulator, faker.Number(1, 4))
	for i := range ms {
		ms[i] = generateManipulator()
	}

	return kb.Rule{
		Description:  fmt.Sprintf("[%s] rule-%d", vk, index),
		Manipulators: kb.Chain(ms, gates[vk], kb.Basic),
	}
}

func generateRuleset(numRules int) *kb.RuleSet {
	rs := &kb.RuleSet{
		Title: fmt.Sprintf("Generated rules (%d)", numRules),
		Rules: make([]kb.Rule, numRules),
	}
	for i := range rs.Rules {
		rs.Rules[i] = generateRule(i + 1)
	}
	return rs
}

func writeRulesetToFile(rs *kb.RuleSet, path string) error {
	doc, err := kb.Marshal(rs, kb.EncodeOptions{Indent: "  "})
	if err != nil {
		return err
	}
	return os.WriteFile(path, doc, 0o644)
}

func parseFlags(args []string) (int, string) {
	fs := flag.NewFlagSet("rule_gen", flag.ExitOnError)
	numRules := fs.Int("rules", 1000, "Number of rules to generate")
	outputFile := fs.String("output", "generated_ruleset.json", "Output file name")
	fs.Parse(args)
	return *numRules, *outputFile
}

func main() {
	numRules, outputFile := parseFlags(os.Args[1:])

	rs := generateRuleset(numRules)
	if err := writeRulesetToFile(rs, outputFile); err != nil {
		fmt.Printf("Error writing ruleset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated ruleset with %d rules (%d manipulators). Saved to %s\n",
		numRules, rs.ManipulatorCount(), outputFile)
}
