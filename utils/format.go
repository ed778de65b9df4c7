package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

var palette = map[MessageType]*color.Color{
	DefaultMessage: color.New(color.Reset),
	SuccessMessage: color.New(color.FgGreen),
	ErrorMessage:   color.New(color.FgRed),
	StatusMessage:  color.New(color.FgCyan, color.Bold),
}

// DecorateText shows the message types in different colors.
// Colors are dropped automatically when the output is not a terminal.
func DecorateText(s string, msgType MessageType) string {
	c, ok := palette[msgType]
	if !ok {
		return s
	}
	return c.Sprint(s)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	secs := (d % time.Minute).Seconds()
	if d < time.Hour {
		return fmt.Sprintf("%dm %.2fs", int64(d/time.Minute), secs)
	}
	mins := int64((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm %.2fs", int64(d/time.Hour), mins, secs)
}
