package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/tagline"
	"github.com/iw2rmb/tagline/internal/config"
	"github.com/iw2rmb/tagline/internal/logger"
)

type options struct {
	configPath string
	tags       []string
	ret        string
	logFile    string
	debug      bool
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tagline-demo",
		Short:         "Interactive demo of the tagline tagged text input",
		Long:          "Type free text and insert tag chips from the palette. Tab cycles between text, palette and chips; ctrl+o shows the transcript.",
		Version:       tagline.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	if r, err := tagline.Current(); err == nil && !r.Stable() {
		cmd.SetVersionTemplate("{{.Name}} {{.Version}} (unstable API)\n")
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.StringSliceVarP(&opts.tags, "tags", "t", nil, "palette tags (overrides config)")
	f.StringVar(&opts.ret, "return", "", "where removed tags re-enter the palette: append|seed")
	f.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("tags") {
		cfg.Tags = opts.tags
	}
	if f.Changed("return") {
		cfg.Return = opts.ret
	}
	if f.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if f.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	log, err := logger.NewFileLogger(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync(log) }()

	m := newModel(cfg, log)
	log.Info("demo started", zap.Strings("tags", m.editor.State().Palette()))

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	state := final.(model).editor.State()
	log.Info("demo finished",
		zap.Strings("tags", state.Tags()),
		zap.Uint64("version", state.Version()),
	)
	fmt.Println(state.PlainText())
	return nil
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
