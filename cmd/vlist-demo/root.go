package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/window"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	addFlags(rootCmd)
}

// addFlags defines the command line flags. Defaults come from the
// environment, which may be filled from a .env file.
func addFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("items", "n", envInt("VLIST_ITEMS", 25), "Number of items to start with")
	cmd.Flags().IntP("buffer", "b", envInt("VLIST_BUFFER", 40), "Rows mounted past each viewport edge")
	cmd.Flags().Uint64("seed", uint64(envInt("VLIST_SEED", 1)), "Seed for item contents")
	cmd.Flags().String("ids", envString("VLIST_IDS", "counter"), "Identifier scheme: counter or uuid")
	cmd.Flags().Bool("verbatim", false, "Restore the raw scroll offset after changes instead of keeping the top row in place")
	cmd.Flags().String("log-file", envString("VLIST_LOG_FILE", ""), "Write logs to this file")
	cmd.Flags().BoolP("debug", "d", false, "Debug logging")
	cmd.Flags().String("snapshot", "", "Render one frame of the given size (e.g. 80x24) to stdout and exit")
	cmd.Flags().Int("scroll", 0, "Scroll offset applied before a snapshot")
}

var rootCmd = &cobra.Command{
	Use:   "vlist-demo",
	Short: "Scroll through a virtualized list of variable-height items",
	Long: `vlist-demo shows a list whose rows are mounted only around the viewport.
Rows are measured once, then kept in a position index which is updated in place
as items are inserted and removed.`,
	Example: `
# Run with 1000 items
vlist-demo -n 1000

# Log window changes
vlist-demo -d --log-file vlist.log

# Print a frame without a terminal
vlist-demo --snapshot 60x20 --scroll 30
  `,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readFlags(cmd)
		if err != nil {
			return err
		}

		logger, closer := setupLogger(cfg.logFile, cfg.debug)
		defer closer.Close()
		slog.SetDefault(logger)

		opts := []window.Option{
			window.WithBufferSize(cfg.buffer),
			window.WithLogger(logger.With("component", "window")),
		}
		if cfg.verbatim {
			opts = append(opts, window.WithRestoreMode(window.RestoreVerbatim))
		}

		source := NewSource(cfg.ids, cfg.seed)
		root := newUI(source, source.Items(cfg.items), logger, opts...)

		if cfg.snapshot != "" {
			return snapshot(cmd.OutOrStdout(), root, cfg.snapshot, cfg.scroll)
		}

		app := vlist.NewApplication().EnableMouse(true)
		if err := app.SetRoot(root).Run(); err != nil {
			slog.Error("application stopped", "error", err)
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type config struct {
	items    int
	buffer   int
	seed     uint64
	ids      IDGenerator
	verbatim bool
	logFile  string
	debug    bool
	snapshot string
	scroll   int
}

func readFlags(cmd *cobra.Command) (config, error) {
	var cfg config
	cfg.items, _ = cmd.Flags().GetInt("items")
	cfg.buffer, _ = cmd.Flags().GetInt("buffer")
	cfg.seed, _ = cmd.Flags().GetUint64("seed")
	cfg.verbatim, _ = cmd.Flags().GetBool("verbatim")
	cfg.logFile, _ = cmd.Flags().GetString("log-file")
	cfg.debug, _ = cmd.Flags().GetBool("debug")
	cfg.snapshot, _ = cmd.Flags().GetString("snapshot")
	cfg.scroll, _ = cmd.Flags().GetInt("scroll")

	if cfg.items < 0 {
		return cfg, fmt.Errorf("invalid item count %d", cfg.items)
	}
	if cfg.buffer < 0 {
		return cfg, fmt.Errorf("invalid buffer size %d", cfg.buffer)
	}

	ids, _ := cmd.Flags().GetString("ids")
	switch ids {
	case "counter":
		cfg.ids = NewCounterIDs(0)
	case "uuid":
		cfg.ids = UUIDs{}
	default:
		return cfg, fmt.Errorf("unknown identifier scheme %q", ids)
	}
	return cfg, nil
}

// setupLogger returns a JSON logger writing to a rotated file, or a
// discarding logger when path is empty. The terminal belongs to the UI.
func setupLogger(path string, debug bool) (*slog.Logger, io.Closer) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), w
}

// snapshot renders root on an in-memory screen of the given size and prints
// the result.
func snapshot(w io.Writer, root vlist.Primitive, size string, scroll int) error {
	var width, height int
	if _, err := fmt.Sscanf(size, "%dx%d", &width, &height); err != nil || width <= 0 || height <= 0 {
		return fmt.Errorf("invalid snapshot size %q", size)
	}

	screen := vlist.NewCaptureScreen(width, height)
	app := vlist.NewApplication().SetScreen(screen).SetRoot(root)
	app.ForceDraw()
	if u, ok := root.(*ui); ok && scroll != 0 {
		u.list.ScrollBy(scroll)
		app.ForceDraw()
	}

	_, err := fmt.Fprintln(w, screen.String())
	return err
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
