// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package savename

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Kind classifies the parameter values a savename can hold.
type Kind int

const (
	// KindInt covers all Go signed and unsigned integer types. Booleans are not integers.
	KindInt Kind = iota
	// KindFloat covers float32 and float64.
	KindFloat
	// KindString is a plain string.
	KindString
	// KindTimestamp is a time.Time.
	KindTimestamp

	numKinds
)

var kindNames = [numKinds]string{"int", "float", "string", "timestamp"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(invalid)"
	}
	return kindNames[k]
}

// ParseKind converts a kind name ("int", "float", "string" or "timestamp") to a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, kindName := range kindNames {
		if kindName == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown value kind %q, valid kinds are %s",
		name, strings.Join(kindNames[:], ", "))
}

// KindOf returns the Kind of value, or false if values of its type cannot be part of a savename.
func KindOf(value any) (Kind, bool) {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt, true
	case float32, float64:
		return KindFloat, true
	case string:
		return KindString, true
	case time.Time:
		return KindTimestamp, true
	}
	return 0, false
}

// KindSet is a set of kinds, stored as a bit mask.
type KindSet uint8

// AllKinds includes every Kind, and it is the default set of kinds allowed when encoding.
const AllKinds = KindSet(1<<numKinds - 1)

// KindsOf returns the set with the given kinds.
func KindsOf(kinds ...Kind) KindSet {
	var set KindSet
	for _, k := range kinds {
		if k < 0 || k >= numKinds {
			continue
		}
		set |= 1 << k
	}
	return set
}

// Has returns whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return k >= 0 && k < numKinds && s&(1<<k) != 0
}

// String lists the kinds in the set, separated by ",".
func (s KindSet) String() string {
	var names []string
	for k := Kind(0); k < numKinds; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, ",")
}
