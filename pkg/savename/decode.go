// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package savename

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Decode a savename, optionally preceded by a directory and followed by a "." suffix, into
// its parts.
//
// The prefix is the directory part of token, joined with any text before the first connector of
// the name if that text holds no "=" (e.g. "runs/seq2seq_lr=0.1" has prefix "runs/seq2seq").
// Values are converted by the first of the configured parsers that accepts them, or kept
// as strings.
//
// It returns an error wrapping ErrMalformedToken if the last entry has no "=", or
// ErrInvalidArgument if the Codec is misconfigured.
func (c *Codec) Decode(token string) (prefix string, params *Params, suffix string, err error) {
	if c.err != nil {
		err = c.err
		return
	}
	dir, base := filepath.Split(token)
	name, suffix := splitSuffix(base)
	extraPrefix, core := c.splitPrefix(name)
	prefix = filepath.Join(dir, extraPrefix)

	params = NewParams()
	start := c.decodeEntries(core, params)
	last := core[start:]
	eqIdx := strings.Index(last, "=")
	if eqIdx == -1 {
		err = errors.Wrapf(ErrMalformedToken,
			"can't decode %q: there is a %q after the last \"=\", values containing %q are not allowed",
			token, c.connector, c.connector)
		return "", nil, "", err
	}
	params.Set(last[:eqIdx], parseValue(c.parsers, last[eqIdx+1:]))
	return
}

// splitSuffix separates the text after the last ".", if it comes after the last "=" and it is
// not an integer: an integer is taken to be the decimals of a float value.
func splitSuffix(base string) (name, suffix string) {
	lastEq := strings.LastIndex(base, "=")
	lastDot := strings.LastIndex(base, ".")
	if lastDot == -1 || lastEq > lastDot {
		return base, ""
	}
	tail := base[lastDot+1:]
	if _, isInt := ParseInt(tail); isInt {
		return base, ""
	}
	return base[:lastDot], tail
}

// splitPrefix separates the text before the first connector, if it comes before the first "=".
func (c *Codec) splitPrefix(name string) (prefix, core string) {
	firstEq := strings.Index(name, "=")
	firstConnector := strings.Index(name, c.connector)
	if firstConnector == -1 || firstEq < firstConnector {
		return "", name
	}
	return name[:firstConnector], name[firstConnector+len(c.connector):]
}

// decodeEntries sets in params every "key=value" entry of core that is followed by a connector,
// and returns the position where the last entry starts.
//
// An entry ends at the first connector after its "=", and the value must not be empty: in
// "a=_b=1_c=2" the first entry is key "a=_b" with value 1.
func (c *Codec) decodeEntries(core string, params *Params) (start int) {
	pos := 0
	for {
		eqIdx := strings.Index(core[pos:], "=")
		if eqIdx == -1 {
			return
		}
		eqIdx += pos
		end := strings.Index(core[eqIdx+1:], c.connector)
		if end == -1 {
			return
		}
		end += eqIdx + 1
		if end == eqIdx+1 {
			// Empty value: try the next "=".
			pos = eqIdx + 1
			continue
		}
		params.Set(core[start:eqIdx], parseValue(c.parsers, core[eqIdx+1:end]))
		start = end + len(c.connector)
		pos = start
	}
}
