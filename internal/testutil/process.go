package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Norgate-AV/koremake/internal/process"
)

// ExitStatus is returned by a Fake that exits with a nonzero code.
type ExitStatus int

func (e ExitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// ExitCode returns the exit code.
func (e ExitStatus) ExitCode() int { return int(e) }

// Invocation records one command created through a Recorder.
type Invocation struct {
	Dir  string
	Name string
	Args []string
}

// Fake is a scripted Commander. Stderr chunks are delivered as separate reads.
type Fake struct {
	Stdout   string
	Stderr   []string
	Code     int
	StartErr error
	// OnWait runs before Wait returns, e.g. to write the files a tool produces
	OnWait func()

	started bool
}

func (f *Fake) StdoutPipe() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.Stdout)), nil
}

func (f *Fake) StderrPipe() (io.ReadCloser, error) {
	return io.NopCloser(&chunkReader{chunks: f.Stderr}), nil
}

func (f *Fake) Start() error {
	if f.StartErr != nil {
		return f.StartErr
	}

	f.started = true
	return nil
}

func (f *Fake) Wait() error {
	if !f.started {
		return fmt.Errorf("not started")
	}

	if f.OnWait != nil {
		f.OnWait()
	}

	if f.Code != 0 {
		return ExitStatus(f.Code)
	}

	return nil
}

type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}

	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if r.chunks[0] == "" {
		r.chunks = r.chunks[1:]
	}

	return n, nil
}

// Recorder is a process.ExecFunc source that records every invocation and answers
// each with the Fake returned by Script.
type Recorder struct {
	Script func(inv Invocation) *Fake

	mu    sync.Mutex
	calls []Invocation
}

// Exec implements process.ExecFunc.
func (r *Recorder) Exec(_ context.Context, dir, name string, args ...string) process.Commander {
	inv := Invocation{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	r.calls = append(r.calls, inv)
	r.mu.Unlock()

	if r.Script == nil {
		return &Fake{}
	}

	return r.Script(inv)
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Invocation(nil), r.calls...)
}
