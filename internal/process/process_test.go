package process_test

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/koremake/internal/process"
	"github.com/Norgate-AV/koremake/internal/testutil"
)

func TestRun_StreamsAndExitCode(t *testing.T) {
	fake := &testutil.Fake{
		Stdout: "one\ntwo\n",
		Stderr: []string{"warn", "ing\n"},
		Code:   2,
	}

	var out []string
	var chunks []string

	code, err := process.Run(fake,
		process.Lines(func(line string) { out = append(out, line) }),
		process.Chunks(func(b []byte) { chunks = append(chunks, string(b)) }),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, code)
	assert.Equal(t, []string{"one", "two"}, out)
	assert.Equal(t, []string{"warn", "ing\n"}, chunks)
}

func TestRun_Success(t *testing.T) {
	code, err := process.Run(&testutil.Fake{},
		process.Lines(func(string) {}),
		process.Lines(func(string) {}),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_StartFailure(t *testing.T) {
	fake := &testutil.Fake{StartErr: errors.New("executable file not found")}

	code, err := process.Run(fake, process.Lines(func(string) {}), process.Lines(func(string) {}))
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.Contains(t, err.Error(), "not found")
}

func TestChunks_LargeStream(t *testing.T) {
	payload := strings.Repeat("x", 10000)

	var total int
	err := process.Chunks(func(b []byte) { total += len(b) })(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, len(payload), total)
}

func TestExitCode(t *testing.T) {
	code, ok := process.ExitCode(testutil.ExitStatus(7))
	assert.True(t, ok)
	assert.Equal(t, 7, code)

	_, ok = process.ExitCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestLines_NoLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	input := long + "\r\n\nlast"

	var lines []string
	err := process.Lines(func(line string) { lines = append(lines, line) })(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], len(long))
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "last", lines[2])
}

func TestRun_DrainsLongLinesFromRealProcess(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// A 2 MiB line followed by more output than a pipe buffer holds.
	script := `head -c 2097152 /dev/zero | tr '\0' x; echo; head -c 1048576 /dev/zero | tr '\0' y; echo; echo done >&2`

	var stdout, stderr []string
	done := make(chan struct{})

	var code int
	var err error
	go func() {
		defer close(done)
		code, err = process.Run(process.Exec(context.Background(), "", "sh", "-c", script),
			process.Lines(func(line string) { stdout = append(stdout, line) }),
			process.Lines(func(line string) { stderr = append(stderr, line) }),
		)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("process.Run did not return")
	}

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	require.Len(t, stdout, 2)
	assert.Len(t, stdout[0], 2097152)
	assert.Len(t, stdout[1], 1048576)
	assert.Equal(t, []string{"done"}, stderr)
}
