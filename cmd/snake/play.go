package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL - Change direction
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --speed slow
  snake play --seed 42 --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
}

// play runs an interactive session. Errors are returned rather than
// exiting so the log file is closed and flushed first.
func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("config loaded",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"step", cfg.Snake.StepInterval,
		"length", cfg.Snake.InitialLength,
	)

	if runErr := tui.Run(snake.New(cfg), rc, logger); runErr != nil {
		logger.Error("game exited", "error", runErr)
		return runErr
	}
	return nil
}
