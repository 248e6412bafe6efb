// Package notify is the user-facing notification boundary. The services
// layer decides what happened and with which message; delivery (printing,
// toasts, whatever the surface offers) is the implementation's business.
// Each terminal outcome of an operation produces exactly one notification.
package notify

import (
	"fmt"
	"io"
)

// Level classifies a notification for presentation purposes.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one user-facing outcome.
type Notification struct {
	Level   Level
	Message string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Success, Error and Info are small constructors used at call sites.
func Success(msg string) Notification { return Notification{Level: LevelSuccess, Message: msg} }
func Error(msg string) Notification   { return Notification{Level: LevelError, Message: msg} }
func Info(msg string) Notification    { return Notification{Level: LevelInfo, Message: msg} }

// ConsoleNotifier prints notifications to a writer, one line each.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (c *ConsoleNotifier) Notify(n Notification) {
	var tag string
	switch n.Level {
	case LevelSuccess:
		tag = "ok"
	case LevelError:
		tag = "error"
	default:
		tag = "info"
	}
	fmt.Fprintf(c.out, "[%s] %s\n", tag, n.Message)
}
