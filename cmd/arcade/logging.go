package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tapcade/arcade/internal/storage"
)

var logFile io.Closer

// setupLogging configures the default logger. A full-screen game owns the
// terminal, so anything noisier than warnings belongs in --log-file.
func setupLogging(level, path string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})

	if path != "" {
		if strings.HasPrefix(path, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, path[1:])
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logger.SetOutput(f)
		logger.SetFormatter(log.LogfmtFormatter)
		logFile = f
	}

	log.SetDefault(logger)
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// localPlayer names the local user for the scoreboard.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.AnonymousPlayer
}
