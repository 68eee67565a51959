package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/word-teacher/internal/app"
	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/domain"
)

// errTeachingFailed is returned after a failure envelope has been printed.
var errTeachingFailed = errors.New("teaching failed")

type options struct {
	style   string
	level   string
	pretty  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "teach <word>",
		Short: "Teach a single English word",
		Long: `Look a word up in the dictionary, generate teaching content for it with
the configured language model and print the result as JSON.

Styles: ` + joinStyles() + `
Levels: ` + joinLevels() + `

The model credential is read from ENHANCER_API_KEY, or from ANTHROPIC_API_KEY
or OPENAI_API_KEY depending on ENHANCER_PROVIDER.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "teaching style (default "+string(domain.DefaultStyle)+")")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "learner level (default "+string(domain.DefaultLevel)+")")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline progress to stderr")

	return cmd
}

func run(cmd *cobra.Command, word string, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := config.LogConfig{Level: "warn", Format: "text"}
	if opts.verbose {
		logCfg.Level = "debug"
	}
	logger := app.NewLogger(logCfg)

	svc, err := app.NewTeacherService(cfg, logger)
	if err != nil {
		return err
	}

	resp := svc.Run(cmd.Context(), domain.NewRawRequest(word, opts.style, opts.level))

	enc := json.NewEncoder(cmd.OutOrStdout())
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	if !resp.Success {
		return errTeachingFailed
	}
	return nil
}

func joinStyles() string {
	parts := make([]string, len(domain.Styles))
	for i, s := range domain.Styles {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinLevels() string {
	parts := make([]string, len(domain.Levels))
	for i, l := range domain.Levels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
