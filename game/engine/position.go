package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Stack is the kind of place a card can sit in.
type Stack int

const (
	StackTableau Stack = iota + 1
	StackOpen
	StackFoundation
)

const (
	tableauTag    = "TABLEAU"
	openTag       = "OPEN"
	foundationTag = "FOUNDATION"
)

func (s Stack) String() string {
	switch s {
	case StackTableau:
		return tableauTag
	case StackOpen:
		return openTag
	case StackFoundation:
		return foundationTag
	default:
		return fmt.Sprintf("Stack(%d)", int(s))
	}
}

func parseStack(tag string) (Stack, error) {
	switch strings.TrimSpace(tag) {
	case tableauTag:
		return StackTableau, nil
	case openTag:
		return StackOpen, nil
	case foundationTag:
		return StackFoundation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStack, tag)
	}
}

// Position identifies the location of one card. Index is the column for
// tableau positions and the slot otherwise; Depth is only meaningful for
// tableau positions (0 is the buried card).
type Position struct {
	Stack Stack
	Index int
	Depth int
}

// TableauPosition addresses the card at depth in column.
func TableauPosition(column, depth int) Position {
	return Position{Stack: StackTableau, Index: column, Depth: depth}
}

// OpenPosition addresses an open cell.
func OpenPosition(slot int) Position {
	return Position{Stack: StackOpen, Index: slot}
}

// FoundationPosition addresses a foundation slot.
func FoundationPosition(slot int) Position {
	return Position{Stack: StackFoundation, Index: slot}
}

// String encodes the position, e.g. "TABLEAU:3/5" or "OPEN:2".
func (p Position) String() string {
	if p.Stack == StackTableau {
		return fmt.Sprintf("%s:%d/%d", tableauTag, p.Index, p.Depth)
	}
	return fmt.Sprintf("%s:%d", p.Stack, p.Index)
}

// Locator is anything that can be resolved to a Position: a Position itself
// or its text encoding.
type Locator interface {
	Locate() (Position, error)
}

// Locate returns p unchanged, except that Depth is cleared for open cells
// and foundations, which hold a single card. It only fails when p carries an
// unknown stack.
func (p Position) Locate() (Position, error) {
	switch p.Stack {
	case StackTableau:
		return p, nil
	case StackOpen, StackFoundation:
		p.Depth = 0
		return p, nil
	default:
		return Position{}, fmt.Errorf("%w: %s", ErrInvalidStack, p.Stack)
	}
}

// PositionString is the text encoding of a Position.
type PositionString string

// Locate parses the string.
func (s PositionString) Locate() (Position, error) {
	return ParsePosition(string(s))
}

// ParsePosition decodes the text form of a position.
func ParsePosition(s string) (Position, error) {
	tag, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedPosition, s)
	}

	stack, err := parseStack(tag)
	if err != nil {
		return Position{}, err
	}

	if stack == StackTableau {
		colPart, depthPart, ok := strings.Cut(rest, "/")
		if !ok {
			return Position{}, fmt.Errorf("%w: %q has no depth", ErrMalformedPosition, s)
		}
		column, err := parseIndex(colPart)
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q: %v", ErrMalformedPosition, s, err)
		}
		depth, err := parseIndex(depthPart)
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q: %v", ErrMalformedPosition, s, err)
		}
		return TableauPosition(column, depth), nil
	}

	slot, err := parseIndex(rest)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrMalformedPosition, s, err)
	}
	return Position{Stack: stack, Index: slot}, nil
}

// ResolvePosition turns a Locator into a Position.
func ResolvePosition(l Locator) (Position, error) {
	if l == nil {
		return Position{}, fmt.Errorf("%w: nil locator", ErrMalformedPosition)
	}
	return l.Locate()
}

// MarshalText encodes the position for JSON.
func (p Position) MarshalText() ([]byte, error) {
	if _, err := p.Locate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes the position from JSON.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Target is a move destination: a tableau column, an open cell or a
// foundation slot.
type Target struct {
	Stack Stack
	Index int
}

// ToTableau targets a tableau column.
func ToTableau(column int) Target {
	return Target{Stack: StackTableau, Index: column}
}

// ToOpenCell targets an open cell.
func ToOpenCell(slot int) Target {
	return Target{Stack: StackOpen, Index: slot}
}

// ToFoundation targets a foundation slot.
func ToFoundation(slot int) Target {
	return Target{Stack: StackFoundation, Index: slot}
}

// String encodes the target, e.g. "TABLEAU:3" or "FOUNDATION:0".
func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.Stack, t.Index)
}

// ParseTarget decodes the text form of a target.
func ParseTarget(s string) (Target, error) {
	tag, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrMalformedPosition, s)
	}
	stack, err := parseStack(tag)
	if err != nil {
		return Target{}, err
	}
	index, err := parseIndex(rest)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q: %v", ErrMalformedPosition, s, err)
	}
	return Target{Stack: stack, Index: index}, nil
}

// MarshalText encodes the target for JSON.
func (t Target) MarshalText() ([]byte, error) {
	if _, err := parseStack(t.Stack.String()); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes the target from JSON.
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Move pairs a source position with a destination.
type Move struct {
	From Position `json:"from"`
	To   Target   `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative index %d", n)
	}
	return n, nil
}
