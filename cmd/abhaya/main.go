// Command abhaya watches a camera for a raised open palm and sounds an
// alarm once the palm has been held for the configured duration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nivrith/abhaya/internal/alert"
	"github.com/nivrith/abhaya/internal/app"
	"github.com/nivrith/abhaya/internal/config"
	"github.com/nivrith/abhaya/internal/logger"
	"github.com/nivrith/abhaya/internal/render"
	"github.com/nivrith/abhaya/internal/tray"
)

var (
	configPath string
	cameraID   int
	hold       time.Duration
	headless   bool
	useTray    bool
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "abhaya",
		Short: "Hands-free SOS monitor driven by hand gestures.",
		Long: `Abhaya watches the camera for a raised open palm. Holding the palm for
the configured duration (3s by default) raises an SOS and sounds a looping
two-tone alarm; lowering the palm or closing it into a fist stops it.

Without --headless a preview window shows the camera feed with the gesture
state overlaid; press q or Escape to quit. With --tray the monitor runs
headless behind a system tray icon instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to settings file (e.g. "+config.DefaultConfigFilename+")")
	rootCmd.Flags().IntVar(&cameraID, "camera", -1, "camera device index (overrides settings)")
	rootCmd.Flags().DurationVar(&hold, "hold", 0, "palm hold duration before SOS (overrides settings)")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without the preview window")
	rootCmd.Flags().BoolVar(&useTray, "tray", false, "run headless behind a system tray icon")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides settings)")
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cameraID >= 0 {
		cfg.CameraID = cameraID
	}
	if hold > 0 {
		cfg.HoldThreshold = hold
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, known := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(zap.NewAtomicLevelAt(level))
	defer log.Sync() //nolint:errcheck // Flushing stdout on exit is best-effort.

	if !known {
		log.Warnw("unknown log level, using info", "log_level", cfg.LogLevel)
	}

	var out alert.Output
	if speakerOut, err := alert.NewSpeakerOutput(); err == nil {
		out = speakerOut
	} else {
		log.Warnw("audio unavailable, alarm will be silent", "error", err)
		out = alert.NopOutput{}
	}

	a := app.New(app.Config{
		CameraID:        cfg.CameraID,
		FrameWidth:      cfg.FrameWidth,
		FrameHeight:     cfg.FrameHeight,
		IdleFPS:         cfg.IdleFPS,
		ActiveFPS:       cfg.ActiveFPS,
		MotionThreshold: cfg.MotionThreshold,
		HoldThreshold:   cfg.HoldThreshold,
	}, out, log)

	if useTray {
		return runWithTray(ctx, a)
	}

	if !headless {
		a.SetRenderer(render.NewWindow("Abhaya Safety Monitor"))
	}

	return a.Run(ctx)
}

// runWithTray keeps the main goroutine on the tray event loop, which the
// systray library requires, and runs the frame loop beside it.
func runWithTray(ctx context.Context, a *app.App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnQuit(cancel)

	a.OnSosChange(func(active bool) {
		if active {
			t.SetStatus("SOS ACTIVE")
		} else {
			t.SetStatus("monitoring")
		}
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx)
		t.Quit()
	}()

	t.Run()
	cancel()

	return <-errCh
}
