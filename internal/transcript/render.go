package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Pure-Company/purefp"
)

// ============================================================================
// Line sinks
// ============================================================================

// LineFunc receives rendered output one line at a time, without the
// trailing newline.
//
// Example:
//
//	out := transcript.Writer(os.Stdout).Tee(logLine)
type LineFunc func(line string) error

// WriteLine calls f.
func (f LineFunc) WriteLine(line string) error {
	return f(line)
}

// Empty returns a sink that discards every line (Monoid identity).
func (f LineFunc) Empty() LineFunc {
	return func(string) error { return nil }
}

// Compose sends each line to f, then to other (Monoid operation). The first
// error wins, but other still sees the line.
func (f LineFunc) Compose(other LineFunc) LineFunc {
	return func(line string) error {
		err1 := f(line)
		err2 := other(line)
		if err1 != nil {
			return err1
		}
		return err2
	}
}

// Tee sends each line to f and every other sink, stopping at the first error.
func (f LineFunc) Tee(others ...LineFunc) LineFunc {
	all := append([]LineFunc{f}, others...)
	return func(line string) error {
		for _, sink := range all {
			if err := sink(line); err != nil {
				return err
			}
		}
		return nil
	}
}

// Map transforms each line before it reaches f.
func (f LineFunc) Map(transform func(string) string) LineFunc {
	return func(line string) error {
		return f(transform(line))
	}
}

// Writer returns a sink writing newline-terminated lines to w.
func Writer(w io.Writer) LineFunc {
	return func(line string) error {
		_, err := io.WriteString(w, line+"\n")
		return err
	}
}

// ============================================================================
// Formats
// ============================================================================

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(raw)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, raw)
	}
}

// Style colors the parts of a text line. Nil colors print plain text.
type Style struct {
	Name  *color.Color
	Expr  *color.Color
	Value *color.Color
}

// Plain is the uncolored style.
func Plain() Style {
	return Style{}
}

// Colored returns a style that always emits ANSI colors, whatever the
// global color.NoColor setting says.
func Colored() Style {
	s := Style{
		Name:  color.New(color.FgCyan),
		Expr:  color.New(color.Faint),
		Value: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{s.Name, s.Expr, s.Value} {
		c.EnableColor()
	}
	return s
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// TextLine renders one step as "name     expr = value".
func TextLine(s Step, style Style) string {
	return fmt.Sprintf("%s %s = %s",
		paint(style.Name, fmt.Sprintf("%-8s", s.Name)),
		paint(style.Expr, s.Expr),
		paint(style.Value, s.Value),
	)
}

// Render writes steps to out in the given format. Style applies to text
// output only.
func Render(out LineFunc, format Format, steps purefp.List[Step], style Style) error {
	switch format {
	case FormatText:
		for s := range purefp.All(steps) {
			if err := out(TextLine(s, style)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sliceOf(steps)); err != nil {
			return fmt.Errorf("failed to encode transcript as json: %w", err)
		}
		return writeLines(out, buf.Bytes())
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(sliceOf(steps)); err != nil {
			return fmt.Errorf("failed to encode transcript as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode transcript as yaml: %w", err)
		}
		return writeLines(out, buf.Bytes())
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// sliceOf keeps an empty transcript encoding as [] rather than null.
func sliceOf(steps purefp.List[Step]) []Step {
	s := purefp.ToSlice(steps)
	if s == nil {
		return []Step{}
	}
	return s
}

func writeLines(out LineFunc, data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if err := out(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
