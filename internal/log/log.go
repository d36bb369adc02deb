//nolint:revive // Package name kept as "log" for stable internal imports.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Level controls which messages reach the console.
type Level int

const (
	// LevelWarn prints warnings and errors only.
	LevelWarn Level = iota
	// LevelInfo adds informational progress messages.
	LevelInfo
	// LevelDebug adds debug messages.
	LevelDebug
)

var level = LevelWarn

// SetLevel sets the active log level
func SetLevel(l Level) {
	level = l
}

// GetLevel returns the active log level
func GetLevel() Level {
	return level
}

// SetVerbose raises the level to info when enabled
func SetVerbose(enabled bool) {
	if enabled && level < LevelInfo {
		level = LevelInfo
	}
	if !enabled && level == LevelInfo {
		level = LevelWarn
	}
}

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	if enabled {
		level = LevelDebug
		return
	}
	if level == LevelDebug {
		level = LevelInfo
	}
}

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	if level >= LevelDebug {
		fmt.Println(color.CyanString("[DEBUG] ") + fmt.Sprintf(format, elem...))
	}
}

// Error logs an error message to stderr
func Error(str string, elem ...any) {
	fmt.Fprintln(os.Stderr, color.RedString("[x] ")+fmt.Sprintf(str, elem...))
}

// ErrorH2 logs an indented error message to stderr
func ErrorH2(format string, elem ...any) {
	fmt.Fprintln(os.Stderr, color.RedString("  [x] ")+fmt.Sprintf(format, elem...))
}

// Warn logs a warning to stderr regardless of verbosity
func Warn(format string, elem ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString("[!] ")+fmt.Sprintf(format, elem...))
}

// Info logs an informational message
func Info(format string, elem ...any) {
	if level >= LevelInfo {
		fmt.Println(color.BlueString("[x] ") + fmt.Sprintf(format, elem...))
	}
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	if level >= LevelInfo {
		fmt.Println(color.GreenString("  [x] ") + fmt.Sprintf(format, elem...))
	}
}

// InfoH3 logs a double-indented informational message
func InfoH3(format string, elem ...any) {
	if level >= LevelInfo {
		fmt.Println(color.YellowString("    [x] ") + fmt.Sprintf(format, elem...))
	}
}
