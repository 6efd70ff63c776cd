package core

import "strings"

// Level represents the severity level of a log entry.
//
// Levels form a fixed total order used by every filtering comparison:
// Debug < Info < Warn < Error < Critical. The zero value is not a valid
// level; destination configs use it to mean "apply this destination's
// default minimum level".
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota + 1
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for errors the application cannot recover from
	CriticalLevel
)

// Category is the coarse classification a Level maps to. Identity-aware
// destinations (event log, mail) deliver by category rather than by level.
type Category int8

const (
	CategoryInformational Category = iota
	CategoryWarning
	CategoryError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Short returns the 3-letter code used in formatted lines.
func (l Level) Short() string {
	switch l {
	case DebugLevel:
		return "DBG"
	case InfoLevel:
		return "INF"
	case WarnLevel:
		return "WRN"
	case ErrorLevel:
		return "ERR"
	case CriticalLevel:
		return "CRT"
	default:
		return "???"
	}
}

// Category maps the level onto its coarse category: Debug and Info are
// informational, Warn is a warning, Error and Critical are errors.
func (l Level) Category() Category {
	switch l {
	case WarnLevel:
		return CategoryWarning
	case ErrorLevel, CriticalLevel:
		return CategoryError
	default:
		return CategoryInformational
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryWarning:
		return "Warning"
	case CategoryError:
		return "Error"
	default:
		return "Informational"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "DBG":
		return DebugLevel, nil
	case "INFO", "INF":
		return InfoLevel, nil
	case "WARN", "WRN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "CRITICAL", "CRT":
		return CriticalLevel, nil
	default:
		return 0, Configf("invalid level %q", s)
	}
}
