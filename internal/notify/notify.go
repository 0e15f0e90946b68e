// Package notify delivers fire-and-forget user notifications. The CLI
// implementation prints styled toast lines; Nop is used where output would
// corrupt an interactive view.
package notify

import (
	"fmt"
	"io"

	"studyquest/internal/ui"
)

// ToastWriter prints each toast as one styled line.
type ToastWriter struct {
	W io.Writer
}

func (t ToastWriter) Toast(msg string) {
	fmt.Fprintln(t.W, ui.Dim.Render("»"), msg)
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Toast(string) {}
