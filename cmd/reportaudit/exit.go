package main

import (
	"errors"
)

// Process exit codes.
const (
	exitOK      = 0
	exitIssues  = 1
	exitInput   = 2
	exitRuntime = 3
)

// exitError attaches an exit code to a command error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// errIssuesFound ends a successful run that raised Error severity issues.
var errIssuesFound = &exitError{code: exitIssues, err: errors.New("accessibility errors found")}

func inputError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitInput, err: err}
}

func runtimeError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitRuntime, err: err}
}

// exitCode maps err to a process exit code. Errors without a code come from
// argument parsing and count as input errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}
	return exitInput
}
