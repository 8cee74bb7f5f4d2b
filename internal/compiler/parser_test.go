package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type collected struct {
	plain      []string
	structured []string
}

func feed(chunks ...string) collected {
	var c collected
	p := NewDiagnosticParser(func(line string) { c.plain = append(c.plain, line) })
	p.Structured = func(line string) { c.structured = append(c.structured, line) }

	for _, chunk := range chunks {
		_, _ = p.Write([]byte(chunk))
	}

	p.Flush()
	return c
}

func TestDiagnosticParser_ChunkBoundaries(t *testing.T) {
	whole := feed("abc\ndef\n")
	split := feed("ab", "c\ndef\n")
	bytewise := feed("a", "b", "c", "\n", "d", "e", "f", "\n")

	want := []string{"abc", "def"}
	if diff := cmp.Diff(want, whole.plain); diff != "" {
		t.Errorf("single chunk (-want +got):\n%s", diff)
	}
	assert.Equal(t, whole, split)
	assert.Equal(t, whole, bytewise)
}

func TestDiagnosticParser_MarkedLinesAreNotEmitted(t *testing.T) {
	got := feed("#{\"type\":\"error\"}\n", "plain # not marked\n", "#", "split marker\n")

	assert.Equal(t, []string{"plain # not marked"}, got.plain)
	assert.Equal(t, []string{"{\"type\":\"error\"}", "split marker"}, got.structured)
}

func TestDiagnosticParser_MarkerOnlyAtLineStart(t *testing.T) {
	got := feed(" #indented\n", "x#y\n")

	assert.Equal(t, []string{"#indented", "x#y"}, got.plain)
	assert.Empty(t, got.structured)
}

func TestDiagnosticParser_TrimsLines(t *testing.T) {
	got := feed("  error: bad token \r\n")

	assert.Equal(t, []string{"error: bad token"}, got.plain)
}

func TestDiagnosticParser_EmptyLines(t *testing.T) {
	got := feed("\n\n")

	assert.Equal(t, []string{"", ""}, got.plain)
}

func TestDiagnosticParser_FlushTail(t *testing.T) {
	got := feed("first\n", "unterminated")
	assert.Equal(t, []string{"first", "unterminated"}, got.plain)

	got = feed("first\n")
	assert.Equal(t, []string{"first"}, got.plain, "flush after a newline adds nothing")
}

func TestDiagnosticParser_DefaultDiscardsStructured(t *testing.T) {
	var plain []string
	p := NewDiagnosticParser(func(line string) { plain = append(plain, line) })

	n, err := p.Write([]byte("#data\nmsg\n"))
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, []string{"msg"}, plain)
}
