package main

import (
	"fmt"
	"os"

	"github.com/tomz197/spaceshoot/internal/audio"
	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/desktop"
	"github.com/tomz197/spaceshoot/internal/game"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

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

	seed := uint64(config.GetEnvInt("SPACESHOOT_SEED", 1))
	world := game.NewWorld(seed, game.WithTuning(tuning), game.WithLogger(logger))

	if err := desktop.Run(desktop.NewGame(world, cues, logger), "Space Shoot"); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
