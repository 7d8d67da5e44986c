// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package savename

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimestampLayout is the layout used to render timestamps: date and time separated by a space,
// followed by ".ffffff" only if there are sub-second microseconds.
const TimestampLayout = time.DateTime

// Parser tries to convert the raw text of a value. It returns false if raw is not in the format
// it handles.
type Parser func(raw string) (value any, ok bool)

// DefaultParsers returns the parsers used when decoding, tried in order: ParseInt, then ParseFloat.
// Values that neither parses are kept as strings.
func DefaultParsers() []Parser {
	return []Parser{ParseInt, ParseFloat}
}

// ParseInt parses a base-10 integer, with optional sign and surrounding spaces, into an int.
func ParseInt(raw string) (any, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, false
	}
	return v, true
}

// ParseFloat parses a float64. Values too large to represent become ±Inf.
func ParseFloat(raw string) (any, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	return v, true
}

// ParseTimestamp parses a time.Time in the TimestampLayout, as written by Encode, or in RFC 3339.
// It is not part of the DefaultParsers.
func ParseTimestamp(raw string) (any, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return nil, false
}

// parseValue returns the result of the first parser that accepts raw, or raw itself.
func parseValue(parsers []Parser, raw string) any {
	for _, parse := range parsers {
		if value, ok := parse(raw); ok {
			return value
		}
	}
	return raw
}

// formatValue renders value, whose kind has already been checked.
func formatValue(value any, kind Kind, digits int) string {
	switch kind {
	case KindFloat:
		switch v := value.(type) {
		case float32:
			return formatFloat(float64(v), digits)
		case float64:
			return formatFloat(v, digits)
		}
	case KindTimestamp:
		return formatTimestamp(value.(time.Time))
	case KindString:
		return value.(string)
	}
	return fmt.Sprint(value)
}

// formatFloat rounds v to digits decimal places and renders it without exponent. The result always
// holds a decimal point, so it is decoded back as a float and not as an int.
func formatFloat(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(roundFloat(v, digits), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// roundFloat rounds half to even on the exact binary value. Negative digits round to tens,
// hundreds, etc.
func roundFloat(v float64, digits int) float64 {
	if digits < 0 {
		scale := math.Pow10(-digits)
		return math.RoundToEven(v/scale) * scale
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

func formatTimestamp(t time.Time) string {
	s := t.Format(TimestampLayout)
	if micro := t.Nanosecond() / 1000; micro != 0 {
		s += fmt.Sprintf(".%06d", micro)
	}
	return s
}
