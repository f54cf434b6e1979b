package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/v0xg/csharpgen/internal/config"
	"github.com/v0xg/csharpgen/internal/csharp"
	"github.com/v0xg/csharpgen/internal/devices"
	"github.com/v0xg/csharpgen/internal/logger"
	"github.com/v0xg/csharpgen/internal/options"
	"github.com/v0xg/csharpgen/internal/recorder"
)

var (
	configPath  string
	output      string
	mode        string
	browser     string
	device      string
	saveStorage string
	verbose     bool
)

var (
	stepColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csharpgen [session.json]",
		Short: "Generate Playwright .NET code from a recorded browser session",
		Long: `csharpgen turns a recorded browser session (JSON, from a file or stdin) into a
C# program or test that replays it with Playwright for .NET.

Example:
  csharpgen --mode nunit -o LoginTest.cs login.json`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "csharpgen.toml", "Config file")
	flags.StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	flags.StringVarP(&mode, "mode", "m", "", "Target: library, mstest, nunit (default: from config)")
	flags.StringVar(&browser, "browser", "", "Browser: chromium, firefox, webkit")
	flags.StringVar(&device, "device", "", "Device preset to emulate (see `csharpgen devices`)")
	flags.StringVar(&saveStorage, "save-storage", "", "Save storage state to this path at the end")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	rootCmd.AddCommand(newPlanCmd(), newTargetsCmd(), newDevicesCmd())
	return rootCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	in, name := cmd.InOrStdin(), "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open session")
		}
		defer f.Close()
		in, name = f, filepath.Base(args[0])
	}
	ctx := logger.WithSession(cmd.Context(), name)

	step("Reading session %s... ", name)
	session, err := recorder.DecodeSession(in)
	if err != nil {
		failed()
		return err
	}
	done("%d actions", len(session.Actions))

	return emit(ctx, cmd.OutOrStdout(), cfg, session.Options, session.Actions)
}

// setup loads the config and initializes logging.
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	logger.Init(cfg.Log)
	return cfg, nil
}

// generatorOptions layers config, recorded and command-line options, later
// ones winning.
func generatorOptions(cfg *config.Config, recorded options.Generator) options.Generator {
	return cfg.Generator.Override(recorded).Override(options.Generator{
		BrowserName: browser,
		DeviceName:  device,
		SaveStorage: saveStorage,
	})
}

// emit generates code and writes it to --output, or to w when none is set.
func emit(ctx context.Context, w io.Writer, cfg *config.Config, recorded options.Generator, actions []recorder.ActionInContext) error {
	selected := mode
	if selected == "" {
		selected = cfg.Mode
	}
	gen, err := csharp.New(csharp.Mode(selected))
	if err != nil {
		return err
	}
	opts := generatorOptions(cfg, recorded)
	if opts.DeviceName != "" {
		if _, ok := devices.Lookup(opts.DeviceName); !ok {
			logger.Warn(ctx, "unknown device %q ignored", opts.DeviceName)
		}
	}

	step("Generating %s (%s)... ", gen.Name(), gen.ID())
	code, err := gen.Generate(opts, actions)
	if err != nil {
		failed()
		return errors.Wrap(err, "generate")
	}
	done("%d bytes", len(code))
	logger.Debug(ctx, "generated %s for %d actions with browser %s", gen.ID(), len(actions), opts.WithDefaults().BrowserName)

	if output == "" {
		_, err := io.WriteString(w, code)
		return err
	}
	if err := os.WriteFile(output, []byte(code), 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}
	okColor.Fprintf(os.Stderr, "✓ Saved to %s\n", output)
	return nil
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the code generation targets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range csharp.Modes() {
				gen, err := csharp.New(m)
				if err != nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-14s %s / %s\n", m, gen.ID(), gen.GroupName(), gen.Name())
			}
		},
	}
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the device presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range devices.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func step(format string, args ...any) {
	stepColor.Fprintf(os.Stderr, "→ "+format, args...)
}

func done(format string, args ...any) {
	okColor.Fprintf(os.Stderr, "done ("+format+")\n", args...)
}

func failed() {
	failColor.Fprintln(os.Stderr, "failed")
}
