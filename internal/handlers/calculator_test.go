package handlers

import (
	"strings"
	"testing"

	"github.com/khanglvm/launchd/internal/search"
)

type stubClipboard struct {
	copied []string
	err    error
}

func (c *stubClipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return c.err
}

func newCalc() (*Calculator, *stubClipboard, *int) {
	clip := &stubClipboard{}
	closed := 0
	h := NewCalculator(clip, func() { closed++ })
	return h, clip, &closed
}

func TestCalculatorMatches(t *testing.T) {
	h, _, _ := newCalc()

	tests := []struct {
		query string
		want  bool
	}{
		{"= 2 + 2", true},
		{"=sqrt(16)", true},
		{"  = 1", true},
		{"2 + 2", false},
		{"firefox", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := h.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestCalculatorEmptyExpressionShowsHelp(t *testing.T) {
	h, _, _ := newCalc()

	results := h.Results("=")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Type an expression" {
		t.Errorf("expected help row, got %q", results[0].Title)
	}
	if results[0].OnActivate != nil || results[0].Target != nil {
		t.Error("help row must be inert")
	}
}

func TestCalculatorIntegerFormatting(t *testing.T) {
	h, _, _ := newCalc()

	results := h.Results("= 6 / 2")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "3" {
		t.Errorf(`expected title "3" (not "3.0"), got %q`, results[0].Title)
	}
	if results[0].Type != search.TypeCalculator {
		t.Errorf("expected calculator result type, got %q", results[0].Type)
	}
}

func TestCalculatorFloatFormatting(t *testing.T) {
	h, _, _ := newCalc()

	results := h.Results("= 1/3")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !strings.Contains(results[0].Title, "0.333") {
		t.Errorf(`expected title containing "0.333", got %q`, results[0].Title)
	}
}

func TestCalculatorConstantsAndFunctions(t *testing.T) {
	h, _, _ := newCalc()

	tests := []struct {
		query string
		title string
	}{
		{"= 2 + 2", "4"},
		{"= sqrt(16)", "4"},
		{"= pow(2, 10)", "1024"},
		{"= max(3, 7)", "7"},
		{"= abs(0 - 5)", "5"},
	}
	for _, tt := range tests {
		results := h.Results(tt.query)
		if len(results) != 1 || results[0].Title != tt.title {
			t.Errorf("Results(%q): expected title %q, got %v", tt.query, tt.title, results)
		}
	}
}

func TestCalculatorSandboxBlocksUnknownNames(t *testing.T) {
	h, _, _ := newCalc()

	results := h.Results(`=__import__('os').system('ls')`)
	if len(results) != 1 {
		t.Fatalf("expected a single error result, got %d", len(results))
	}
	r := results[0]
	if r.Title != "Invalid expression" {
		t.Errorf("expected error row, got title %q", r.Title)
	}
	if r.OnActivate != nil || r.Target != nil {
		t.Error("error row must have no activation")
	}
}

func TestCalculatorDivideByZero(t *testing.T) {
	h, _, _ := newCalc()

	results := h.Results("= 1 / 0")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title == "" || results[0].OnActivate != nil {
		t.Errorf("expected inert error row, got %+v", results[0])
	}
	// Whatever the evaluator reports, it must not look like a number.
	if results[0].Title == "0" {
		t.Error("division by zero produced a numeric title")
	}
}

func TestCalculatorOverflow(t *testing.T) {
	h, _, _ := newCalc()

	results := h.Results("= pow(10, 400) * pow(10, 400)")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Math error" {
		t.Errorf("expected overflow to report a math error, got %q", results[0].Title)
	}
}

func TestCalculatorActivationCopiesAndCloses(t *testing.T) {
	h, clip, closed := newCalc()

	results := h.Results("= 2 + 2")
	if len(results) != 1 || results[0].OnActivate == nil {
		t.Fatalf("expected activatable result, got %v", results)
	}

	results[0].OnActivate()

	if len(clip.copied) != 1 || clip.copied[0] != "4" {
		t.Errorf("expected value copied to clipboard, got %v", clip.copied)
	}
	if *closed != 1 {
		t.Errorf("expected launcher close requested, got %d", *closed)
	}
}
