package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates the process logger. LOG_LEVEL selects the level
// (debug, info, warn, error); unknown values fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

// LoadTuningFromEnv loads the tuning file named by SPACESHOOT_TUNING, or the
// defaults when it is unset.
func LoadTuningFromEnv() (Tuning, error) {
	path := GetEnv("SPACESHOOT_TUNING", "")
	if path == "" {
		return Default(), nil
	}
	return LoadTuning(path)
}
