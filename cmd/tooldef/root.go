package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skosovsky/tooldef"
	"github.com/skosovsky/tooldef/manifest"
)

// app carries flags and the logger shared by subcommands.
type app struct {
	configPath string
	logLevel   string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tooldef",
		Short:         "Convert callable manifests into LLM tool definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := setupLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "generator config file (strict, document_defaults, type_map, name_mappings)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "WARN", "logging level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		newGenerateCmd(a),
		newListCmd(a),
		newSchemaCmd(),
	)
	return root
}

func setupLogger(w io.Writer, levelName string) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToUpper(levelName) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", levelName)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// definitions loads the config and every manifest, then generates definitions for all
// functions in argument order.
func (a *app) definitions(paths []string) ([]tooldef.Definition, error) {
	cfg, err := manifest.LoadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	g, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("generator configured",
		"config", a.configPath,
		"strict", g.Strict(),
		"document_defaults", g.DocumentDefaults(),
		"name_mappings", len(g.NameMapping()),
	)

	var fns []tooldef.Function
	for _, path := range paths {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		more, err := m.Descriptors()
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		a.logger.Info("manifest loaded", "path", path, "functions", len(more))
		fns = append(fns, more...)
	}

	defs, err := g.Generate(fns...)
	if err != nil {
		a.logger.Error("generation failed", "error", err)
		return nil, err
	}
	return defs, nil
}
