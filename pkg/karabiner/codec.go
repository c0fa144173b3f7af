// kbgen/pkg/karabiner/codec.go

package karabiner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"rgehrsitz/kbgen/pkg/logging"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}

type EncodeOptions struct {
	Format Format
	// Indent applies to JSON only. Empty means compact output.
	Indent string
}

// Marshal encodes rs completely in memory. Nothing is returned on failure,
// so callers never see a partial document.
func Marshal(rs *RuleSet, opts EncodeOptions) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch opts.Format {
	case FormatJSON, "":
		out, err = marshalJSON(rs, opts.Indent)
	case FormatYAML:
		out, err = marshalYAML(rs)
	case FormatTOML:
		out, err = toml.Marshal(rs)
	default:
		err = fmt.Errorf("unsupported format: %s", opts.Format)
	}
	if err != nil {
		return nil, logging.NewError(logging.ErrorTypeEncode, "failed to encode rule set", err,
			map[string]interface{}{"format": string(opts.Format)})
	}
	return out, nil
}

func marshalJSON(rs *RuleSet, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// shell commands carry quotes and redirections that must stay readable
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rs); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}

	opts := *pretty.DefaultOptions
	opts.Indent = indent
	out := pretty.PrettyOptions(buf.Bytes(), &opts)
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

func marshalYAML(rs *RuleSet) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rs); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes a JSON document produced by Marshal.
func Parse(data []byte) (*RuleSet, error) {
	logging.Logger.Debug().Int("bytes", len(data)).Msg("Parsing rule set document")
	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		logging.Logger.Error().Err(err).Msg("Failed to unmarshal rule set document")
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	if rs.Title == "" && rs.Rules == nil {
		return nil, fmt.Errorf("missing title and rules fields")
	}
	return &rs, nil
}

// ManipulatorCount sums manipulators across all rules.
func (rs *RuleSet) ManipulatorCount() int {
	n := 0
	for _, r := range rs.Rules {
		n += len(r.Manipulators)
	}
	return n
}
