package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qrstudio/qrstudio/internal/config"
	apperr "github.com/qrstudio/qrstudio/internal/errors"
	"github.com/qrstudio/qrstudio/internal/form"
	"github.com/qrstudio/qrstudio/internal/logging"
	"github.com/qrstudio/qrstudio/internal/qr"
	"github.com/qrstudio/qrstudio/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qrstudio",
		Short: "Terminal QR code studio",
		Long:  "qrstudio generates QR code images as PNG, JPG or SVG through an interactive form.",
		Args:  cobra.NoArgs,
		RunE:  runStudio,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to config file (default: per-user config dir)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("dev-mode", false, "enable development mode")
	root.PersistentFlags().String("output-dir", "", "directory for the default save path")

	root.AddCommand(newVersionCmd())

	return root
}

func runStudio(cmd *cobra.Command, args []string) error {
	// ── Load configuration ───────────────────────────────────────────
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply CLI flag overrides that don't map directly to koanf paths.
	devMode := false
	if f := cmd.Flags().Lookup("dev-mode"); f != nil && f.Changed {
		devMode, _ = cmd.Flags().GetBool("dev-mode")
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		level, _ := cmd.Flags().GetString("log-level")
		cfg.Logging.Level = level
	}
	if f := cmd.Flags().Lookup("output-dir"); f != nil && f.Changed {
		dir, _ := cmd.Flags().GetString("output-dir")
		cfg.Output.Dir = dir
	}

	// Dev mode forces debug logging.
	if devMode && cfg.Logging.Level == "info" {
		cfg.Logging.Level = "debug"
	}

	// ── Create logger ────────────────────────────────────────────────
	// Logs go to stderr; stdout belongs to the interactive form.
	ring := logging.NewRing(logging.DefaultRingSize)
	logger := logging.NewWithRing(logging.Config{
		Level:   parseLogLevel(cfg.Logging.Level),
		DevMode: devMode || cfg.Logging.Format == "text",
	}, ring)

	logger.Info("qrstudio_starting",
		"version", version,
		"go_version", runtime.Version(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"pid", os.Getpid(),
		"log_level", cfg.Logging.Level,
		"dev_mode", devMode,
		"component", "main",
	)

	// ── Parse generation defaults ────────────────────────────────────
	fill, err := qr.ParseRGB(cfg.Generator.Fill)
	if err != nil {
		return apperr.Wrap(apperr.ErrConfig, "invalid fill color", err)
	}
	background, err := qr.ParseRGB(cfg.Generator.Background)
	if err != nil {
		return apperr.Wrap(apperr.ErrConfig, "invalid background color", err)
	}
	format, err := qr.ParseFormat(cfg.Generator.Format)
	if err != nil {
		return apperr.Wrap(apperr.ErrConfig, "invalid output format", err)
	}
	recovery, err := qr.ParseRecovery(cfg.Generator.Recovery)
	if err != nil {
		return apperr.Wrap(apperr.ErrConfig, "invalid recovery level", err)
	}

	outputPath := ui.DefaultOutputPath(cfg.Output.Dir, cfg.Output.Filename)
	if !format.MatchesPath(outputPath) {
		outputPath = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + format.Ext()
	}

	// ── Build the form ───────────────────────────────────────────────
	gen := qr.NewGenerator(qr.Options{
		Logger: logger,
		Verify: cfg.Generator.Verify,
	})

	model := form.Model{
		Fill:        fill,
		Background:  background,
		OutputPath:  outputPath,
		Format:      format,
		ModuleSize:  cfg.Generator.ModuleSize,
		Border:      cfg.Generator.Border,
		Recovery:    recovery,
		JPEGQuality: cfg.Generator.JPEGQuality,
	}

	// ── Run the interactive form ─────────────────────────────────────
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	previewWidth := cfg.Preview.Width
	if interactive {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < previewWidth {
			previewWidth = w
		}
	}

	u := ui.New(ui.Options{
		Logger:         logger,
		Ring:           ring,
		Form:           form.New(gen),
		Initial:        model,
		PreviewEnabled: cfg.Preview.Enabled && interactive,
		PreviewWidth:   previewWidth,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := u.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", "component", "main")
			return nil
		}
		return fmt.Errorf("run form: %w", err)
	}

	logger.Info("qrstudio_exiting", "component", "main")
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrstudio %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}
