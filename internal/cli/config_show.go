package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Beebek-Sharma/pacsync/internal/config"
	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/ctxutil"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
	"github.com/Beebek-Sharma/pacsync/internal/logging"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// Format is yaml or json.
	Format string
}

// AddConfigShowCommand adds the show subcommand to the config command.
func AddConfigShowCommand(configCmd *cobra.Command) {
	configCmd.AddCommand(newConfigShowCmd(&ConfigShowFlags{}))
}

func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective pacsync configuration and where each value comes from:
  - env: PACSYNC_* environment variable
  - project: ./.pacsync.yaml
  - global: ~/.pacsync/config.yaml
  - default: built-in default

Examples:
  pacsync config show
  pacsync config show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "yaml", "output format (yaml|json)")

	return cmd
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

// Configuration sources, highest precedence first.
const (
	SourceEnv     ConfigSource = "env"
	SourceProject ConfigSource = "project"
	SourceGlobal  ConfigSource = "global"
	SourceDefault ConfigSource = "default"
)

// ConfigValueWithSource is one resolved setting.
type ConfigValueWithSource struct {
	Key    string       `json:"-" yaml:"-"`
	Value  string       `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

func runConfigShow(ctx context.Context, w io.Writer, flags *ConfigShowFlags) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	format := strings.ToLower(flags.Format)
	if format != "yaml" && format != "json" {
		return fmt.Errorf("%w: %q (use yaml or json)", errors.ErrInvalidOutputFormat, flags.Format)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	values := annotateConfig(cfg, loadConfigKeys(globalConfigPath()), loadConfigKeys(config.ProjectConfigPath()))

	if format == "json" {
		return outputConfigJSON(w, values)
	}
	return outputConfigYAML(w, values)
}

// annotateConfig lists every setting of cfg in file order with its source.
func annotateConfig(cfg *config.Config, global, project map[string]bool) []ConfigValueWithSource {
	entries := []struct {
		key   string
		value string
	}{
		{"username", cfg.Username},
		{"endpoint", logging.RedactURL(cfg.Endpoint)},
		{"timeout", cfg.Timeout.String()},
		{"retry.attempts", strconv.Itoa(cfg.Retry.Attempts)},
		{"retry.delay", cfg.Retry.Delay.String()},
		{"paths.light", cfg.Paths.Light},
		{"paths.dark", cfg.Paths.Dark},
	}

	values := make([]ConfigValueWithSource, 0, len(entries))
	for _, e := range entries {
		values = append(values, ConfigValueWithSource{
			Key:    e.key,
			Value:  e.value,
			Source: determineSource(e.key, global, project),
		})
	}
	return values
}

// determineSource mirrors the precedence used by config.Load.
func determineSource(key string, global, project map[string]bool) ConfigSource {
	envKey := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(envKey); ok {
		return SourceEnv
	}
	if project[key] {
		return SourceProject
	}
	if global[key] {
		return SourceGlobal
	}
	return SourceDefault
}

func globalConfigPath() string {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return ""
	}
	return path
}

// loadConfigKeys returns the dotted keys set in a YAML config file.
// A missing or unparsable file yields no keys.
func loadConfigKeys(path string) map[string]bool {
	keys := make(map[string]bool)
	if path == "" {
		return keys
	}

	data, err := os.ReadFile(path) //nolint:gosec // config file path
	if err != nil {
		return keys
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return keys
	}
	flattenKeys("", raw, keys)
	return keys
}

func flattenKeys(prefix string, m map[string]any, keys map[string]bool) {
	for k, v := range m {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(key, nested, keys)
			continue
		}
		keys[key] = true
	}
}

func outputConfigJSON(w io.Writer, values []ConfigValueWithSource) error {
	out := make(map[string]ConfigValueWithSource, len(values))
	for _, v := range values {
		out[v.Key] = v
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// outputConfigYAML writes the config as YAML with each value's source as a
// line comment, so the output can be pasted back into a config file.
func outputConfigYAML(w io.Writer, values []ConfigValueWithSource) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	sections := make(map[string]*yaml.Node)

	for _, v := range values {
		parent := root
		name := v.Key
		if section, field, ok := strings.Cut(v.Key, "."); ok {
			parent = sections[section]
			if parent == nil {
				parent = &yaml.Node{Kind: yaml.MappingNode}
				sections[section] = parent
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: section},
					parent,
				)
			}
			name = field
		}

		parent.Content = append(parent.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.Value, LineComment: string(v.Source)},
		)
	}

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "Effective pacsync configuration (source: env > project > global > default)",
		Content:     []*yaml.Node{root},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
