package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner executes external OS commands. Tests substitute a fake to assert
// invocation sequences without root privileges or a real interface.
type Runner interface {
	// Run executes the command and discards its output.
	Run(name string, args ...string) error
	// Output executes the command and returns its standard output.
	Output(name string, args ...string) (string, error)
}

type execRunner struct {
	log *logrus.Logger
}

func (e execRunner) Run(name string, args ...string) error {
	e.log.WithFields(logrus.Fields{"cmd": name, "args": args}).Debug("running command")

	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return commandError(name, args, out, err)
	}
	return nil
}

func (e execRunner) Output(name string, args ...string) (string, error) {
	e.log.WithFields(logrus.Fields{"cmd": name, "args": args}).Debug("running command")

	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", commandError(name, args, nil, err)
	}
	return string(out), nil
}

// commandError folds the command line and any captured output into the
// returned error so failures surface with their underlying detail.
func commandError(name string, args []string, out []byte, err error) error {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	if detail := strings.TrimSpace(string(out)); detail != "" {
		return fmt.Errorf("%s: %w: %s", cmdline, err, detail)
	}
	return fmt.Errorf("%s: %w", cmdline, err)
}
