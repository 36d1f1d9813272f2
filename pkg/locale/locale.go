package locale

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders float64 values for one locale. Only the decimal
// separator glyph is localized: values keep their shortest round-trip
// representation with no grouping and no forced precision.
type Formatter struct {
	tag       language.Tag
	separator string
}

// NewFormatter creates a formatter for a BCP-47 locale tag such as "en-US"
// or "de-DE". An unparseable tag is a construction error.
func NewFormatter(localeTag string) (*Formatter, error) {
	tag, err := language.Parse(localeTag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", localeTag, err)
	}

	return &Formatter{
		tag:       tag,
		separator: decimalSeparator(tag),
	}, nil
}

// Tag returns the formatter's parsed language tag.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Format renders the value with the locale's decimal separator.
func (f *Formatter) Format(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if f.separator == "." {
		return s
	}
	return strings.Replace(s, ".", f.separator, 1)
}

// decimalSeparator probes the locale's printer with a fractional value and
// extracts whatever glyph it places between the digits.
func decimalSeparator(tag language.Tag) string {
	probe := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1.5))
	sep := strings.TrimFunc(probe, unicode.IsDigit)
	if sep == "" {
		return "."
	}
	return sep
}
