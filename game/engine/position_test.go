package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"TABLEAU:3/5", TableauPosition(3, 5)},
		{"TABLEAU: 0 / 0", TableauPosition(0, 0)},
		{"OPEN:2", OpenPosition(2)},
		{"FOUNDATION:0", FoundationPosition(0)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if err != nil {
				t.Fatalf("ParsePosition(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePosition_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"STOCK:1", ErrInvalidStack},
		{"tableau:1/1", ErrInvalidStack},
		{"TABLEAU:1", ErrMalformedPosition},
		{"TABLEAU:x/1", ErrMalformedPosition},
		{"TABLEAU:-1/0", ErrMalformedPosition},
		{"OPEN:", ErrMalformedPosition},
		{"OPEN", ErrMalformedPosition},
		{"", ErrMalformedPosition},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParsePosition(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParsePosition(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestPositionRoundTrip(t *testing.T) {
	positions := []Position{
		TableauPosition(0, 0),
		TableauPosition(7, 18),
		OpenPosition(3),
		FoundationPosition(1),
	}

	for _, p := range positions {
		parsed, err := ParsePosition(p.String())
		if err != nil {
			t.Fatalf("ParsePosition(%q) failed: %v", p, err)
		}
		if parsed != p {
			t.Errorf("round trip of %+v gave %+v", p, parsed)
		}

		located, err := ResolvePosition(p)
		if err != nil || located != p {
			t.Errorf("ResolvePosition(%+v) = %+v, %v", p, located, err)
		}

		located, err = ResolvePosition(PositionString(p.String()))
		if err != nil || located != p {
			t.Errorf("ResolvePosition(%q) = %+v, %v", p.String(), located, err)
		}
	}
}

func TestResolvePosition_Errors(t *testing.T) {
	if _, err := ResolvePosition(nil); !errors.Is(err, ErrMalformedPosition) {
		t.Errorf("Expected ErrMalformedPosition for nil locator, got %v", err)
	}
	if _, err := ResolvePosition(Position{Stack: Stack(42)}); !errors.Is(err, ErrInvalidStack) {
		t.Errorf("Expected ErrInvalidStack for unknown stack, got %v", err)
	}
	if _, err := ResolvePosition(Position{}); !errors.Is(err, ErrInvalidStack) {
		t.Errorf("Expected ErrInvalidStack for zero position, got %v", err)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{"TABLEAU:4", ToTableau(4)},
		{"OPEN:0", ToOpenCell(0)},
		{"FOUNDATION:3", ToFoundation(3)},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if err != nil {
			t.Fatalf("ParseTarget(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}

	if _, err := ParseTarget("PILE:1"); !errors.Is(err, ErrInvalidStack) {
		t.Errorf("Expected ErrInvalidStack, got %v", err)
	}
	if _, err := ParseTarget("OPEN:one"); !errors.Is(err, ErrMalformedPosition) {
		t.Errorf("Expected ErrMalformedPosition, got %v", err)
	}
}

func TestMoveJSON(t *testing.T) {
	m := Move{From: TableauPosition(2, 4), To: ToFoundation(1)}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Failed to marshal move: %v", err)
	}
	if string(data) != `{"from":"TABLEAU:2/4","to":"FOUNDATION:1"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var decoded Move
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal move: %v", err)
	}
	if decoded != m {
		t.Errorf("Decoded %+v, want %+v", decoded, m)
	}

	if m.String() != "TABLEAU:2/4 -> FOUNDATION:1" {
		t.Errorf("Unexpected String() %q", m.String())
	}
}

func TestLocate_ClearsDepthOfSingleCardStacks(t *testing.T) {
	tests := []struct {
		input Position
		want  Position
	}{
		{Position{Stack: StackOpen, Index: 2, Depth: 4}, OpenPosition(2)},
		{Position{Stack: StackFoundation, Index: 1, Depth: 12}, FoundationPosition(1)},
		{TableauPosition(3, 5), TableauPosition(3, 5)},
	}

	for _, tt := range tests {
		located, err := ResolvePosition(tt.input)
		if err != nil {
			t.Fatalf("ResolvePosition(%+v) failed: %v", tt.input, err)
		}
		if located != tt.want {
			t.Errorf("ResolvePosition(%+v) = %+v, want %+v", tt.input, located, tt.want)
		}

		parsed, err := ParsePosition(located.String())
		if err != nil || parsed != located {
			t.Errorf("round trip of %+v gave %+v, %v", located, parsed, err)
		}
	}
}
