package codebuf

import (
	"regexp"
	"strings"
)

// IndentWidth is the number of spaces per indentation level.
const IndentWidth = 4

// controlFlowHeader matches a brace-less control statement whose body is the next line.
var controlFlowHeader = regexp.MustCompile(`^(for|while|if).*\(.*\)$`)

// Buffer accumulates source fragments and re-levels their indentation when
// rendered. Fragments may span several lines and carry arbitrary leading
// whitespace; every physical line is trimmed on entry and indented again from
// the bracket balance of the lines before it.
type Buffer struct {
	offset string
	lines  []string
}

// New creates a buffer whose rendered lines are all shifted right by offset spaces.
func New(offset int) *Buffer {
	if offset < 0 {
		offset = 0
	}
	return &Buffer{offset: strings.Repeat(" ", offset)}
}

// Add appends text after everything buffered so far.
func (b *Buffer) Add(text string) {
	b.lines = append(b.lines, splitTrimmed(text)...)
}

// Prepend inserts text before everything buffered so far. It lets a caller
// open a wrapper around statements that were already added.
func (b *Buffer) Prepend(text string) {
	b.lines = append(splitTrimmed(text), b.lines...)
}

// NewLine appends an empty line.
func (b *Buffer) NewLine() {
	b.lines = append(b.lines, "")
}

// Len reports the number of buffered lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// String renders the buffered lines joined by newlines.
func (b *Buffer) String() string {
	out := make([]string, len(b.lines))
	level := 0
	previous := ""
	for i, line := range b.lines {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "}") || strings.HasPrefix(line, "]") || strings.Contains(line, "});") || line == ");" {
			level = dedent(level)
		}

		extra := 0
		if controlFlowHeader.MatchString(previous) {
			extra = 1
		}
		previous = line

		out[i] = b.offset + strings.Repeat(" ", (level+extra)*IndentWidth) + line

		if strings.HasSuffix(line, "{") || strings.HasSuffix(line, "[") {
			level++
		}
		if strings.HasSuffix(line, "));") {
			level = dedent(level)
		}
	}
	return strings.Join(out, "\n")
}

func dedent(level int) int {
	if level > 0 {
		return level - 1
	}
	return 0
}

func splitTrimmed(text string) []string {
	raw := strings.Split(strings.TrimSpace(text), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
