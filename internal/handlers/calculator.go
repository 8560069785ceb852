package handlers

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/khanglvm/launchd/internal/search"
)

const (
	calculatorName     = "calculator"
	calculatorPriority = 100

	calculatorIcon = "accessories-calculator"
	errorIcon      = "dialog-error"
)

// calcEnv is the whole evaluation sandbox: the two named constants and the
// allowed functions. Nothing outside this map resolves, so there is no
// attribute access, no imports, no name lookup beyond the allowlist.
var calcEnv = map[string]interface{}{
	"pi": math.Pi,
	"e":  math.E,

	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"round": math.Round,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"log":   math.Log,
	"log10": math.Log10,
	"pow":   math.Pow,
	"min":   math.Min,
	"max":   math.Max,
}

// Calculator evaluates arithmetic expressions prefixed with "=".
type Calculator struct {
	clipboard Clipboard
	closer    func()
}

// NewCalculator creates the handler. On activation the computed value is
// copied through clipboard and closer is invoked.
func NewCalculator(clipboard Clipboard, closer func()) *Calculator {
	return &Calculator{clipboard: clipboard, closer: closer}
}

func (h *Calculator) Name() string  { return calculatorName }
func (h *Calculator) Priority() int { return calculatorPriority }

func (h *Calculator) Matches(query string) bool {
	return strings.HasPrefix(strings.TrimSpace(query), "=")
}

func (h *Calculator) Results(query string) []search.ResultItem {
	input := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(query), "="))
	if input == "" {
		return []search.ResultItem{{
			Title:       "Type an expression",
			Description: "e.g. = 2 + 2, = sqrt(16), = pi * 2",
			Icon:        calculatorIcon,
			Type:        search.TypeCalculator,
		}}
	}

	display, failure := evaluate(input)
	if failure != nil {
		return []search.ResultItem{{
			Title:       failure.title,
			Description: failure.detail,
			Icon:        errorIcon,
			Type:        search.TypeCalculator,
		}}
	}

	return []search.ResultItem{{
		Title:       display,
		Description: "= " + input,
		Icon:        calculatorIcon,
		Type:        search.TypeCalculator,
		OnActivate: func() {
			if err := h.clipboard.Copy(display); err != nil {
				log.Printf("Warning: failed to copy result to clipboard: %v", err)
			}
			if h.closer != nil {
				h.closer()
			}
		},
	}}
}

// evalFailure is the tagged error reason for a failed evaluation. The
// evaluator's internal error types never leak past this boundary.
type evalFailure struct {
	title  string
	detail string
}

// evaluate runs input inside the sandbox and returns the display string, or
// the failure to render. It never panics and never executes anything outside
// calcEnv.
func evaluate(input string) (string, *evalFailure) {
	program, err := expr.Compile(input, expr.Env(calcEnv))
	if err != nil {
		return "", &evalFailure{
			title:  "Invalid expression",
			detail: "Could not evaluate: " + truncate(input, 60),
		}
	}

	out, err := expr.Run(program, calcEnv)
	if err != nil {
		return "", &evalFailure{
			title:  "Math error",
			detail: truncate(err.Error(), 80),
		}
	}

	return formatValue(out)
}

// formatValue renders the result. A float equal to its integer truncation is
// shown as an integer ("3", never "3.0").
func formatValue(v interface{}) (string, *evalFailure) {
	switch n := v.(type) {
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return "", &evalFailure{title: "Math error", detail: "Result out of range"}
		}
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return strconv.FormatInt(int64(n), 10), nil
		}
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	default:
		// Booleans, strings and anything else the sandbox can produce.
		return fmt.Sprintf("%v", v), nil
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
