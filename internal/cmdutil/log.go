// Package cmdutil holds the stderr diagnostics shared by the command layer.
package cmdutil

import (
	"fmt"
	"io"
)

// Logger writes prefixed diagnostic lines; Quiet silences Infof and Warnf.
type Logger struct {
	Dst   io.Writer
	Quiet bool
}

func (l Logger) Infof(format string, a ...any) { l.printf("INFO: ", format, a...) }
func (l Logger) Warnf(format string, a ...any) { l.printf("WARN: ", format, a...) }

// Errorf is never silenced.
func (l Logger) Errorf(format string, a ...any) {
	if l.Dst == nil {
		return
	}
	_, _ = fmt.Fprintf(l.Dst, "error: "+format+"\n", a...)
}

func (l Logger) printf(prefix, format string, a ...any) {
	if l.Quiet || l.Dst == nil {
		return
	}
	_, _ = fmt.Fprintf(l.Dst, prefix+format+"\n", a...)
}
