package digplan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lagoon/trench"
)

// ErrMalformedInstruction is trench.ErrMalformedInstruction, re-exported so
// callers of the parser need not import trench to match it.
var ErrMalformedInstruction = trench.ErrMalformedInstruction

// LineError reports the 1-based line number and text of a rejected line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("digplan: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Mode selects which reading of a plan to use.
type Mode int

const (
	// ModePlain uses the direction and length fields.
	ModePlain Mode = iota
	// ModeHex decodes the colour payload.
	ModeHex
)

// String returns "plain" or "hex".
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeHex:
		return "hex"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return ModePlain, nil
	case "hex":
		return ModeHex, nil
	}
	return 0, fmt.Errorf("digplan: unknown mode %q (expected plain|hex)", s)
}

// Entry is one parsed line.
type Entry struct {
	Plain trench.Instruction
	Hex   trench.Instruction
	Color string // the six hex digits, without '#'
}

// Plan is an ordered list of entries.
type Plan struct {
	Entries []Entry
}

// Len returns the number of edges in the plan.
func (p Plan) Len() int {
	return len(p.Entries)
}

// Instructions returns the edges of the plan read in mode m.
func (p Plan) Instructions(m Mode) []trench.Instruction {
	out := make([]trench.Instruction, len(p.Entries))
	for i, e := range p.Entries {
		if m == ModeHex {
			out[i] = e.Hex
		} else {
			out[i] = e.Plain
		}
	}
	return out
}

// Parse reads a whole plan from r.
func Parse(r io.Reader) (Plan, error) {
	var plan Plan
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := ParseLine(text)
		if err != nil {
			return Plan{}, &LineError{Line: line, Text: text, Err: err}
		}
		plan.Entries = append(plan.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return Plan{}, fmt.Errorf("digplan: read: %w", err)
	}

	return plan, nil
}

// ParseLine parses a single "<D> <L> (#rrggbb)" line.
func ParseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedInstruction, len(fields))
	}

	dir, err := parseLetter(fields[0])
	if err != nil {
		return Entry{}, err
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad length %q", ErrMalformedInstruction, fields[1])
	}
	plain := trench.Instruction{Dir: dir, Length: n}
	if err := plain.Validate(); err != nil {
		return Entry{}, err
	}

	color, ok := strings.CutPrefix(fields[2], "(#")
	if ok {
		color, ok = strings.CutSuffix(color, ")")
	}
	if !ok {
		return Entry{}, fmt.Errorf("%w: bad colour %q", ErrMalformedInstruction, fields[2])
	}
	hex, err := DecodeColor(color)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Plain: plain,
		Hex:   hex,
		Color: color,
	}, nil
}

// DecodeColor reads an edge from six hex digits: the first five are the
// length, the last is the heading (0=R, 1=D, 2=L, 3=U).
func DecodeColor(color string) (trench.Instruction, error) {
	if len(color) != 6 {
		return trench.Instruction{}, fmt.Errorf("%w: colour %q must have 6 hex digits", ErrMalformedInstruction, color)
	}
	n, err := strconv.ParseUint(color[:5], 16, 32)
	if err != nil || n == 0 {
		return trench.Instruction{}, fmt.Errorf("%w: bad hex length %q", ErrMalformedInstruction, color[:5])
	}
	var dir trench.Direction
	switch color[5] {
	case '0':
		dir = trench.Right
	case '1':
		dir = trench.Down
	case '2':
		dir = trench.Left
	case '3':
		dir = trench.Up
	default:
		return trench.Instruction{}, fmt.Errorf("%w: bad hex heading %q", ErrMalformedInstruction, color[5])
	}

	return trench.Instruction{Dir: dir, Length: int(n)}, nil
}

func parseLetter(s string) (trench.Direction, error) {
	switch s {
	case "U":
		return trench.Up, nil
	case "D":
		return trench.Down, nil
	case "L":
		return trench.Left, nil
	case "R":
		return trench.Right, nil
	}
	return 0, fmt.Errorf("%w: bad direction %q", ErrMalformedInstruction, s)
}
