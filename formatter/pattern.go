package formatter

import (
	"strings"

	"github.com/benny779/Logger/core"
)

// PatternBuilder accumulates a timestamp layout from ordered tokens. Each
// token method appends its Go reference-time fragment plus any literal
// suffixes and returns the builder for chaining:
//
//	layout, err := formatter.NewPatternBuilder().
//	    Year("-").Month("-").Day(" ").
//	    Hour(":").Minute(":").Second().Millisecond(3).
//	    Layout()
//
// Literal text is spliced into the layout as-is, so digits inside literals
// will be interpreted by time.Format like any other layout fragment.
type PatternBuilder struct {
	pattern strings.Builder
	err     error
}

// NewPatternBuilder creates an empty pattern builder.
func NewPatternBuilder() *PatternBuilder {
	return &PatternBuilder{}
}

func (b *PatternBuilder) append(fragment string, suffix []string) *PatternBuilder {
	b.pattern.WriteString(fragment)
	for _, s := range suffix {
		b.pattern.WriteString(s)
	}
	return b
}

// Year appends the 4-digit year fragment.
func (b *PatternBuilder) Year(suffix ...string) *PatternBuilder {
	return b.append("2006", suffix)
}

// Month appends the 2-digit month fragment.
func (b *PatternBuilder) Month(suffix ...string) *PatternBuilder {
	return b.append("01", suffix)
}

// Day appends the 2-digit day fragment.
func (b *PatternBuilder) Day(suffix ...string) *PatternBuilder {
	return b.append("02", suffix)
}

// Hour appends the 2-digit 24h hour fragment.
func (b *PatternBuilder) Hour(suffix ...string) *PatternBuilder {
	return b.append("15", suffix)
}

// Minute appends the 2-digit minute fragment.
func (b *PatternBuilder) Minute(suffix ...string) *PatternBuilder {
	return b.append("04", suffix)
}

// Second appends the 2-digit second fragment.
func (b *PatternBuilder) Second(suffix ...string) *PatternBuilder {
	return b.append("05", suffix)
}

// Millisecond appends a fractional-second fragment with the given number of
// digits (1 to 7). Go layout rules require it to directly follow the seconds
// fragment. Out-of-range digits record a ConfigError that Layout reports.
func (b *PatternBuilder) Millisecond(digits int, suffix ...string) *PatternBuilder {
	if digits < 1 || digits > 7 {
		if b.err == nil {
			b.err = core.Configf("millisecond digits %d outside [1,7]", digits)
		}
		return b
	}
	return b.append("."+strings.Repeat("0", digits), suffix)
}

// Literal appends text verbatim.
func (b *PatternBuilder) Literal(text string) *PatternBuilder {
	return b.append(text, nil)
}

// Clear resets the builder to empty, discarding any recorded error.
func (b *PatternBuilder) Clear() *PatternBuilder {
	b.pattern.Reset()
	b.err = nil
	return b
}

// Layout renders the accumulated pattern, or reports the first token error
// recorded while building.
func (b *PatternBuilder) Layout() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.pattern.String(), nil
}
