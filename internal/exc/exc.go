// SPDX-License-Identifier: Apache-2.0

// Package exc runs external commands with lifecycle supervision. Every
// command is started in its own process group so that cancellation kills the
// whole tree, not just the direct child. Tools like soffice fork helpers that
// would otherwise outlive a timed out conversion.
package exc

import (
	"context"
	"os"
	"os/exec"
	"syscall"

	"github.com/rs/zerolog"
)

var logFields = struct {
	execCmd string
	execDir string
	execPid string
}{
	execCmd: "exec_cmd",
	execDir: "exec_dir",
	execPid: "exec_pid",
}

// CmdExecution executes a command and manages its lifecycle
// It forcefully terminates the child process group if ctx.Done() signal is received
type CmdExecution struct {
	done   chan bool
	cmd    *exec.Cmd
	logger *zerolog.Logger
}

func NewCmdExecution(cmd *exec.Cmd, logger zerolog.Logger) *CmdExecution {
	sc := &CmdExecution{
		done:   make(chan bool),
		cmd:    cmd,
		logger: &logger,
	}

	return sc
}

// StopCmd gracefully stops the command execution
func (sc *CmdExecution) StopCmd(ctx context.Context) {
	close(sc.done)
}

// RunCmd starts running the command while monitoring any ctx.Done() signal.
// Cancellation is delivered as SIGKILL to the command's process group.
func (sc *CmdExecution) RunCmd(ctx context.Context) error {
	curDir, err := os.Getwd()
	if err != nil {
		return err
	}

	defer func() {
		sc.StopCmd(ctx)
	}()

	sc.logger.Debug().
		Str(logFields.execCmd, sc.cmd.String()).
		Str(logFields.execDir, curDir).
		Msg("Executing command")

	// start the command as its own process group leader
	sc.cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := sc.cmd.Start(); err != nil {
		return err
	}

	// monitor for cancellation to forcefully terminate the command process group if needed
	go func() {
		select {
		case <-ctx.Done():
			sc.logger.Debug().
				Str(logFields.execCmd, sc.cmd.String()).
				Str(logFields.execDir, curDir).
				Int(logFields.execPid, sc.cmd.Process.Pid).
				Msg("Force terminating command")

			// negative pid targets the whole process group
			err = syscall.Kill(-sc.cmd.Process.Pid, syscall.SIGKILL)
			if err != nil {
				sc.logger.Warn().
					Int(logFields.execPid, sc.cmd.Process.Pid).
					Err(err).
					Msg("Error occurred while terminating the process group")
			}

			return
		case <-sc.done: // stop this coroutine
			return
		}
	}()

	sc.logger.Debug().
		Str(logFields.execCmd, sc.cmd.String()).
		Int(logFields.execPid, sc.cmd.Process.Pid).
		Msg("Waiting for command to finish execution")

	if err = sc.cmd.Wait(); err != nil {
		return err
	}

	return nil
}

// Run is a convenience wrapper that builds the execution and runs it in one
// call.
func Run(ctx context.Context, cmd *exec.Cmd, logger zerolog.Logger) error {
	return NewCmdExecution(cmd, logger).RunCmd(ctx)
}
