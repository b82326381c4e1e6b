package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/spaceshoot/internal/audio"
	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/loop"
)

func main() {
	// stderr shares the raw-mode terminal with the game, so logs only go to
	// a file when one is named.
	var logOut io.Writer = io.Discard
	if logFile := config.GetEnv("LOG_FILE", ""); logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "spaceshoot")

	tuning, err := config.LoadTuningFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load tuning: %v\n", err)
		os.Exit(1)
	}

	var cues audio.Cues = audio.Nop{}
	if config.GetEnvBool("SPACESHOOT_SOUND", true) {
		bc, err := audio.NewBeepCues(0.4)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer bc.Close()
			cues = bc
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Seed:   uint64(config.GetEnvInt("SPACESHOOT_SEED", 0)),
		Tuning: &tuning,
		Logger: logger,
		Cues:   cues,
	}
	if err := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
