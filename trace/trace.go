// Package trace writes the line-oriented evaluation trace of a pipeline run.
//
// Every line is written as soon as it is produced; nothing is buffered, so the
// order of lines on the writer is the order in which stages touched elements.
package trace

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kbukum/seqtrace/pipeline"
)

// Writer emits trace lines of the form "<label>: <value>".
type Writer struct {
	out io.Writer
}

// NewWriter returns a Writer that writes to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Line writes "<label>: <value>".
func (w *Writer) Line(label string, v any) error {
	_, err := fmt.Fprintf(w.out, "%s: %v\n", label, v)
	return err
}

// Marker writes text as a line of its own.
func (w *Writer) Marker(text string) error {
	_, err := fmt.Fprintln(w.out, text)
	return err
}

// Result writes the final "Result: [a, b]" line.
func Result[T any](w *Writer, values []T) error {
	return w.Line("Result", FormatSequence(values))
}

// Hook returns a pipeline hook that writes "<label>: <value>" for every value
// the stage receives.
func Hook[T any](w *Writer, label string) pipeline.Hook[T] {
	return func(_ context.Context, v T) error {
		return w.Line(label, v)
	}
}

// FormatSequence renders values as "[a, b, c]", or "[]" when empty.
func FormatSequence[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
