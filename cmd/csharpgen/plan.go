package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/v0xg/csharpgen/internal/ai"
	"github.com/v0xg/csharpgen/internal/crawler"
	"github.com/v0xg/csharpgen/internal/devices"
	"github.com/v0xg/csharpgen/internal/logger"
	"github.com/v0xg/csharpgen/internal/options"
	"github.com/v0xg/csharpgen/internal/recorder"
)

var (
	provider    string
	model       string
	inspect     bool
	profile     string
	sessionPath string
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <url> <prompt>",
		Short: "Plan a session with an LLM and generate code for it",
		Long: `plan asks a language model to write the session described by prompt, starting
at url, and generates code for it without recording anything.

Example:
  csharpgen plan --inspect "https://myapp.com/login" "sign in as test@example.com and open settings"`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         runPlan,
	}
	cmd.Flags().StringVar(&provider, "provider", "", "AI provider: claude, openai (default: from config)")
	cmd.Flags().StringVar(&model, "model", "", "Specific model override")
	cmd.Flags().BoolVar(&inspect, "inspect", false, "Load the page headless first and give its elements to the model")
	cmd.Flags().StringVar(&profile, "profile", "", "Chrome/Chromium profile directory for --inspect (close browser first)")
	cmd.Flags().StringVar(&sessionPath, "session-out", "", "Also write the planned session as JSON")
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	url, prompt := args[0], args[1]
	cfg, err := setup()
	if err != nil {
		return err
	}
	ctx := logger.WithSession(cmd.Context(), url)

	selectedProvider := provider
	if selectedProvider == "" {
		selectedProvider = cfg.AI.Provider
	}
	selectedModel := model
	if selectedModel == "" {
		selectedModel = cfg.AI.Model
	}
	logger.Debug(ctx, "planning %q with %s", prompt, selectedProvider)

	req := ai.Request{URL: url, Prompt: prompt}
	if inspect {
		step("Inspecting %s... ", url)
		opts := crawler.Options{ProfileDir: profile}
		if d, ok := devices.Emulation(generatorOptions(cfg, options.Generator{}).DeviceName); ok {
			opts.Device = &d
		}
		req.Page, err = crawler.Inspect(ctx, url, opts)
		if err != nil {
			failed()
			return errors.Wrap(err, "inspect failed")
		}
		done("found %d interactive elements", len(req.Page.Elements))
	}

	step("Planning actions via %s... ", selectedProvider)
	p, err := ai.NewProvider(selectedProvider, selectedModel)
	if err != nil {
		failed()
		return errors.Wrap(err, "AI provider init failed")
	}
	actions, err := p.Plan(ctx, req)
	if err != nil {
		failed()
		return errors.Wrap(err, "planning failed")
	}
	done("%d actions", len(actions))

	if sessionPath != "" {
		if err := writeSession(sessionPath, recorder.Session{Actions: actions}); err != nil {
			return err
		}
	}
	return emit(ctx, cmd.OutOrStdout(), cfg, options.Generator{}, actions)
}

func writeSession(path string, s recorder.Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write session")
	}
	return nil
}
