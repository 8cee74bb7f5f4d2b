// Package process spawns external tools and streams their output as it
// arrives.
package process

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Commander is the subset of *exec.Cmd the pipeline drives. Tests substitute
// fakes through ExecFunc.
type Commander interface {
	StdoutPipe() (io.ReadCloser, error)
	StderrPipe() (io.ReadCloser, error)
	Start() error
	Wait() error
}

// ExecFunc creates a command for name running in dir. An empty dir inherits
// the working directory of the host process.
type ExecFunc func(ctx context.Context, dir, name string, args ...string) Commander

// Exec is the ExecFunc backed by os/exec.
func Exec(ctx context.Context, dir, name string, args ...string) Commander {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd
}

// Consumer reads one output stream of a process until EOF.
type Consumer func(r io.Reader) error

// Lines calls fn for every line of the stream. Lines have no length limit; a
// final line without a newline is delivered at EOF.
func Lines(fn func(line string)) Consumer {
	return func(r io.Reader) error {
		reader := bufio.NewReader(r)

		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				fn(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
			}

			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				// The writer blocks on a full pipe unless the rest is read.
				_, _ = io.Copy(io.Discard, r)
				return err
			}
		}
	}
}

// Chunks calls fn with the bytes of each read, exactly as the process
// delivered them.
func Chunks(fn func(chunk []byte)) Consumer {
	return func(r io.Reader) error {
		buf := make([]byte, 4096)

		for {
			n, err := r.Read(buf)
			if n > 0 {
				fn(buf[:n])
			}

			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

// Run starts c, drains stdout and stderr into their consumers and then waits
// for the process to exit. It returns the exit code; err is non-nil only when
// the process could not be run or its streams could not be read.
func Run(c Commander, stdout, stderr Consumer) (int, error) {
	outPipe, err := c.StdoutPipe()
	if err != nil {
		return -1, err
	}

	errPipe, err := c.StderrPipe()
	if err != nil {
		return -1, err
	}

	if err := c.Start(); err != nil {
		return -1, err
	}

	// Both streams must reach EOF before Wait closes the pipes.
	var g errgroup.Group
	g.Go(func() error { return stdout(outPipe) })
	g.Go(func() error { return stderr(errPipe) })
	streamErr := g.Wait()

	if err := c.Wait(); err != nil {
		if code, ok := ExitCode(err); ok {
			return code, nil
		}

		return -1, err
	}

	return 0, streamErr
}

// ExitCode extracts the exit status carried by err.
func ExitCode(err error) (int, bool) {
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}

	return 0, false
}
