package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/landmarks/core"
	"github.com/katalvlaran/landmarks/roads"
	"github.com/katalvlaran/landmarks/spanning"
)

// Environment overrides, applied when the matching flag is not set.
const (
	envLogLevel = "LANDMARKS_LOG_LEVEL"
	envMode     = "LANDMARKS_MODE"
	envStart    = "LANDMARKS_START"
)

// app carries the streams, logger and resolved settings shared by all commands.
type app struct {
	in    io.Reader
	out   io.Writer
	log   *logrus.Logger
	level string
	mode  string
	index bool
	start int
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &app{in: in, out: out, log: log, start: spanning.ReferenceStart}
}

// resolve applies env overrides to unset flags and configures the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		if v := os.Getenv(envLogLevel); v != "" {
			a.level = v
		}
	}
	if !flags.Changed("mode") {
		if v := os.Getenv(envMode); v != "" {
			a.mode = v
		}
	}
	if flags.Lookup("start") != nil && !flags.Changed("start") {
		if v := os.Getenv(envStart); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", envStart, v, err)
			}
			a.start = n
		}
	}

	lvl, err := logrus.ParseLevel(a.level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(lvl)

	return nil
}

// input returns the named file, or stdin when args is empty.
func (a *app) input(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(a.in), nil
	}
	return os.Open(args[0])
}

func (a *app) graphOptions() []core.GraphOption {
	if a.index {
		return []core.GraphOption{core.WithEdgeIndex()}
	}
	return nil
}

// hooks returns planner options that log every examined pair at debug
// level. Empty when debug logging is off.
func (a *app) hooks() []roads.Option {
	if !a.log.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}
	return []roads.Option{roads.WithOnCandidate(func(c roads.Candidate) {
		a.log.WithFields(logrus.Fields{
			"a":        c.I + 1,
			"b":        c.J + 1,
			"distance": c.Distance,
			"finite":   c.Finite,
			"valid":    c.Valid,
		}).Debug("candidate road")
	})}
}

// planOptions parses the mode only here, so a bad --mode or LANDMARKS_MODE
// fails the roads command alone.
func (a *app) planOptions() ([]roads.Option, roads.Mode, error) {
	mode, err := roads.ParseMode(a.mode)
	if err != nil {
		return nil, mode, err
	}
	return append([]roads.Option{roads.WithMode(mode)}, a.hooks()...), mode, nil
}
