package unifi

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func runCmdStream(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func runCmdCapture(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

type severity int

const (
	fatalStep severity = iota
	toleratedStep
)

type step struct {
	name     string
	severity severity
	fn       func() error
}

// runSteps executes steps in order. A fatal step error aborts the run with no
// rollback; tolerated failures are logged and the run continues. Errors that
// carry an explicit exit code always abort regardless of severity.
func runSteps(steps []step) error {
	for _, s := range steps {
		logger.Info("step", "name", s.name)
		err := s.fn()
		if err == nil {
			continue
		}
		var ee *ExitError
		if s.severity == fatalStep || errors.As(err, &ee) {
			logger.Error("step failed", "name", s.name, "error", err)
			return err
		}
		logger.Warn("step failed, continuing", "name", s.name, "error", err)
	}
	return nil
}
