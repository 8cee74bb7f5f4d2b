package compiler

import (
	"bytes"
	"strings"
)

// Marker starts a line of structured error data on the compiler's stderr.
const Marker = '#'

type parserState int

const (
	atLineStart parserState = iota
	inPlainLine
	inMarkedLine
)

// DiagnosticParser reassembles the shader compiler's stderr into logical
// lines. Chunk boundaries never change the lines it produces.
//
// Plain lines are trimmed and passed to emit. Marked lines are accumulated and
// handed to structured, which currently discards them.
type DiagnosticParser struct {
	state parserState
	line  bytes.Buffer
	emit  func(line string)

	// Structured receives marked lines with the marker removed.
	Structured func(line string)
}

// NewDiagnosticParser creates a parser that reports plain lines to emit.
func NewDiagnosticParser(emit func(line string)) *DiagnosticParser {
	return &DiagnosticParser{
		emit:       emit,
		Structured: func(string) {},
	}
}

// Write feeds a chunk of the stream. It never fails.
func (p *DiagnosticParser) Write(chunk []byte) (int, error) {
	for _, c := range chunk {
		switch {
		case c == '\n':
			p.endLine()
		case p.state == atLineStart && c == Marker:
			p.state = inMarkedLine
		default:
			p.line.WriteByte(c)
			if p.state == atLineStart {
				p.state = inPlainLine
			}
		}
	}

	return len(chunk), nil
}

// Flush terminates a trailing line that was not followed by a newline.
func (p *DiagnosticParser) Flush() {
	if p.state != atLineStart {
		p.endLine()
	}
}

func (p *DiagnosticParser) endLine() {
	line := strings.TrimSpace(p.line.String())

	if p.state == inMarkedLine {
		p.Structured(line)
	} else {
		p.emit(line)
	}

	p.line.Reset()
	p.state = atLineStart
}
