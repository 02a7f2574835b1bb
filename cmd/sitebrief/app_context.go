package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/sitebrief/internal/logger"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Logger *logger.Logger
}

func (a *AppContext) init(stderr io.Writer, flags *rootFlags) error {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:  level,
		Format: logger.Format(flags.logFormat),
		Writer: stderr,
	})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use --log-format console or --log-format json.")
	}

	a.Logger = log
	return nil
}

// CommandLogger returns a logger scoped to a command.
func (a *AppContext) CommandLogger(name string) *logger.Logger {
	if a == nil || a.Logger == nil {
		return logger.Nop()
	}
	return a.Logger.With("command", name)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
