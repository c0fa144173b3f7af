// kbgen/cmd/kbgen/commands.go

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"rgehrsitz/kbgen/pkg/karabiner"
	"rgehrsitz/kbgen/pkg/logging"
	"rgehrsitz/kbgen/pkg/output"
	"rgehrsitz/kbgen/pkg/rules"
	"rgehrsitz/kbgen/pkg/store"
	"rgehrsitz/kbgen/pkg/validator"
)

type app struct {
	deps       *Dependencies
	configFile string
	cfg        *Config
}

func newRootCmd(deps *Dependencies) *cobra.Command {
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "kbgen",
		Short: "Generate the keyboard remapper rule set",
		Long: `kbgen builds the personal Karabiner-Elements rule set and writes it as JSON.

With no arguments the document goes to stdout:
  kbgen > ~/.config/karabiner/assets/complex_modifications/personal_rules.json

Examples:
  kbgen -o personal_rules.json --indent "  "
  kbgen list
  kbgen query 'rules.#.description'
  kbgen publish --redis redis.local:6379
  kbgen watch -o ~/.config/karabiner/assets/complex_modifications/personal_rules.json`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Path to configuration file")
	pf.String("title", rules.DefaultTitle, "Rule set title")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.String("log-output", "console", "Log output (console, json, file)")
	pf.StringP("output", "o", output.Stdout, "Output path, - for stdout")
	pf.StringP("format", "f", string(karabiner.FormatJSON), "Output format (json, yaml, toml)")
	pf.String("indent", "", "JSON indent, empty for compact output")
	pf.String("redis", "localhost:6379", "Redis address for publish and pull")
	pf.String("redis-key", "kbgen:ruleset", "Redis key holding the document")

	root.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Write the rule set document (same as running kbgen with no command)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.generate()
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print a table of the generated rules",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return output.PrintRules(a.deps.Writer.Stdout, a.build())
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify the generator's invariants on the built rule set",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.check()
			},
		},
		&cobra.Command{
			Use:   "query <path>",
			Short: "Evaluate a gjson path against the generated JSON document",
			Example: `  kbgen query 'rules.#.description'
  kbgen query 'rules.0.manipulators.0.to_if_alone'`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.query(args[0])
			},
		},
		&cobra.Command{
			Use:   "publish",
			Short: "Store the document in Redis and announce the update",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.publish(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "pull",
			Short: "Fetch the stored document from Redis and write it out",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.pull(cmd.Context())
			},
		},
		a.newWatchCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := parseConfig(cmd, a.configFile)
	if err != nil {
		return err
	}
	if err := logging.ConfigureLogger(cfg.LogLevel, cfg.LogDestination); err != nil {
		return logging.NewError(logging.ErrorTypeConfig, "failed to configure logger", err, nil)
	}
	a.cfg = cfg
	return nil
}

func (a *app) build() *karabiner.RuleSet {
	return rules.BuildTitled(a.cfg.Title)
}

func (a *app) encode(rs *karabiner.RuleSet, format karabiner.Format) ([]byte, error) {
	return karabiner.Marshal(rs, karabiner.EncodeOptions{Format: format, Indent: a.cfg.OutputIndent})
}

func (a *app) generate() error {
	rs := a.build()
	doc, err := a.encode(rs, a.cfg.OutputFormat)
	if err != nil {
		return err
	}

	logging.Logger.Info().
		Int("rules", len(rs.Rules)).
		Int("manipulators", rs.ManipulatorCount()).
		Str("format", string(a.cfg.OutputFormat)).
		Str("digest", karabiner.Digest(doc)).
		Msg("Generated rule set")

	return a.deps.Writer.Write(a.cfg.OutputPath, doc)
}

func (a *app) check() error {
	rs := a.build()
	if err := validator.ValidateRuleSet(rs); err != nil {
		return logging.NewError(logging.ErrorTypeValidate, "rule set violates generator invariants", err, nil)
	}
	_, err := fmt.Fprintf(a.deps.Writer.Stdout, "ok: %d rules, %d manipulators\n", len(rs.Rules), rs.ManipulatorCount())
	return err
}

func (a *app) query(path string) error {
	doc, err := a.encode(a.build(), karabiner.FormatJSON)
	if err != nil {
		return err
	}
	res, err := karabiner.Query(doc, path)
	if err != nil {
		return err
	}

	var out []byte
	if res.IsObject() || res.IsArray() {
		out = pretty.Pretty([]byte(res.Raw))
	} else {
		out = []byte(res.String() + "\n")
	}
	_, err = a.deps.Writer.Stdout.Write(out)
	return err
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	return a.deps.StoreFactory.NewStore(ctx, a.cfg.RedisAddress, a.cfg.RedisPassword, a.cfg.RedisDB)
}

func (a *app) publish(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.RedisTimeout)
	defer cancel()

	rs := a.build()
	doc, err := a.encode(rs, a.cfg.OutputFormat)
	if err != nil {
		return err
	}
	digest := karabiner.Digest(doc)

	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveDocument(ctx, a.cfg.RedisKey, doc, digest); err != nil {
		return err
	}
	return st.PublishUpdate(ctx, a.cfg.RedisChannel, store.Update{
		Key:          a.cfg.RedisKey,
		Digest:       digest,
		Format:       string(a.cfg.OutputFormat),
		Rules:        len(rs.Rules),
		Manipulators: rs.ManipulatorCount(),
	})
}

func (a *app) pull(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.RedisTimeout)
	defer cancel()

	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	doc, digest, err := st.LoadDocument(ctx, a.cfg.RedisKey)
	if errors.Is(err, store.ErrNotFound) {
		return logging.NewError(logging.ErrorTypeStore, "no document stored", err,
			map[string]interface{}{"key": a.cfg.RedisKey})
	}
	if err != nil {
		return err
	}
	if digest == "" {
		return logging.NewError(logging.ErrorTypeStore, "stored document has no digest", nil,
			map[string]interface{}{"key": a.cfg.RedisKey + store.DigestSuffix})
	}
	if got := karabiner.Digest(doc); got != digest {
		return logging.NewError(logging.ErrorTypeStore, "document digest mismatch", nil,
			map[string]interface{}{"key": a.cfg.RedisKey, "want": digest, "got": got})
	}

	return a.deps.Writer.Write(a.cfg.OutputPath, doc)
}
