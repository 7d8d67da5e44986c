// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package savename encodes a set of parameters into a filesystem-safe name, and decodes such
// names back into parameters.
//
// A savename looks like "batchsize=16_features=64_lr=0.001", optionally preceded by a directory
// prefix and followed by a "." suffix (e.g. "models/batchsize=16_lr=0.001.h5"). It is used
// to tag experiment directories with the hyperparameters that produced them.
//
// Example:
//
//	params := savename.NewParams().Set("lr", 1e-3).Set("features", 64).Set("opt", "adam")
//	dir := savename.Encode(params, "")  // "features=64_lr=0.001_opt=adam"
//	...
//	prefix, params, suffix, err := savename.Decode("runs/features=64_lr=0.001.h5")
//	// prefix = "runs", suffix = "h5", params = {features: 64, lr: 0.001}
//
// Values must not contain the connector character: they would not be decoded correctly.
//
// Known sharp edge: a suffix is only recognized if the text after the last "." is not an
// integer, since otherwise the "." is taken to be the decimal point of a float value.
// So "a=1.5" has no suffix and "a=1.h5" has suffix "h5", but "a=1.5e3" is read as
// a=1 with suffix "5e3".
package savename

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// DefaultConnector separates consecutive "key=value" entries.
	DefaultConnector = "_"

	// DefaultDigits is the number of decimal places floats are rounded to when encoding.
	DefaultDigits = 3
)

var (
	// ErrInvalidArgument is returned when the codec is misconfigured, e.g. a connector that
	// is not exactly one character.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedToken is returned by Decode when the last entry of a savename has no "=".
	ErrMalformedToken = errors.New("malformed savename")
)

// Codec holds the configuration to encode and decode savenames. Create it with New, and
// configure it with the various methods before using it.
//
// Configuration errors are reported on the calls to Encode or Decode.
// Once configured, a Codec can be used concurrently.
type Codec struct {
	err error

	connector string
	digits    int
	sorted    bool
	allowed   KindSet
	parsers   []Parser
}

// New returns a Codec with the default configuration: connector "_", floats rounded to 3 digits,
// sorted keys, all kinds allowed and values decoded as int, then float, then string.
func New() *Codec {
	return &Codec{
		connector: DefaultConnector,
		digits:    DefaultDigits,
		sorted:    true,
		allowed:   AllKinds,
		parsers:   DefaultParsers(),
	}
}

var defaultCodec = New()

func (c *Codec) setError(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Connector sets the character separating entries. It must be exactly one character.
func (c *Codec) Connector(connector string) *Codec {
	if utf8.RuneCountInString(connector) != 1 {
		c.setError(errors.Wrapf(ErrInvalidArgument, "connector must be exactly one character, got %q", connector))
		return c
	}
	c.connector = connector
	return c
}

// Digits sets the number of decimal places floats are rounded to when encoding.
func (c *Codec) Digits(digits int) *Codec {
	c.digits = digits
	return c
}

// Unsorted makes Encode keep the insertion order of the parameters, instead of sorting the keys.
func (c *Codec) Unsorted() *Codec {
	c.sorted = false
	return c
}

// AllowedKinds restricts the kinds of values Encode includes. Parameters of other kinds are
// silently left out of the name.
func (c *Codec) AllowedKinds(kinds ...Kind) *Codec {
	c.allowed = KindsOf(kinds...)
	return c
}

// Parsers sets the ordered list of parsers Decode tries on each value. A value no parser accepts
// is kept as a string.
func (c *Codec) Parsers(parsers ...Parser) *Codec {
	c.parsers = slices.Clone(parsers)
	return c
}

// ParseValue converts raw with the first of the configured parsers that accepts it, or returns raw
// as a string.
func (c *Codec) ParseValue(raw string) any {
	return parseValue(c.parsers, raw)
}

// Err returns the first configuration error, if any.
func (c *Codec) Err() error {
	return c.err
}

// Encode params into a savename, appending "." + suffix if suffix is not empty.
//
// Parameters whose values are not of an allowed Kind are left out. If no parameter is left,
// the result is just the suffix part.
func (c *Codec) Encode(params *Params, suffix string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	keys := params.Keys()
	if c.sorted {
		slices.Sort(keys)
	}
	var sb strings.Builder
	for _, key := range keys {
		value, _ := params.Get(key)
		kind, ok := KindOf(value)
		if !ok || !c.allowed.Has(kind) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(c.connector)
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(formatValue(value, kind, c.digits))
	}
	if suffix != "" {
		sb.WriteByte('.')
		sb.WriteString(suffix)
	}
	return sb.String(), nil
}

// Encode params with the default configuration. See Codec.Encode.
func Encode(params *Params, suffix string) string {
	// The default configuration has no errors.
	name, _ := defaultCodec.Encode(params, suffix)
	return name
}

// Decode a savename with the default configuration. See Codec.Decode.
func Decode(token string) (prefix string, params *Params, suffix string, err error) {
	return defaultCodec.Decode(token)
}
