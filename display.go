package numstr

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// String converts any value to its human-readable representation: the
// [fmt.Stringer] rendering when implemented, otherwise the "%v" form.
// Applied to a plain string it returns an equal string, so it is safe to
// map over already-converted sequences.
func String[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// Debug converts any value to its developer-oriented "%#v" representation.
//
// Use with [Map] to convert a sequence of values:
//
//	numstr.Map(seq, numstr.Debug[*User])
func Debug[T any](v T) string {
	return fmt.Sprintf("%#v", v)
}

var pretty = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DebugPretty converts any value to an indented multi-line developer
// representation. Map keys are sorted so the output is deterministic.
func DebugPretty[T any](v T) string {
	return strings.TrimRight(pretty.Sdump(v), "\n")
}

// YAML converts any value to its YAML document representation. Values the
// encoder rejects (cycles, unsupported kinds) fall back to [Debug] so the
// converter stays total.
func YAML[T any](v T) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return Debug(v)
	}
	return string(data)
}

// Template parses tmpl once and returns a converter that renders each value
// through it. Parse errors wrap [ErrInvalidTemplate]. The returned
// converter is total: values the template cannot execute against fall back
// to [String].
func Template[T any](tmpl string) (func(T) string, error) {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(v T) string {
		var b strings.Builder
		if err := t.Execute(&b, v); err != nil {
			return String(v)
		}
		return b.String()
	}, nil
}
