// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package savename

import (
	"flag"
)

// Value implements flag.Value: the flag takes a savename, whose decoded parameters are stored
// in the Params it was created with.
type Value struct {
	params *Params
	codec  *Codec
}

var _ flag.Value = (*Value)(nil)

// NewValue returns a flag.Value that decodes into params using codec. If codec is nil, the
// default configuration is used. The current contents of params are the flag's default.
func NewValue(params *Params, codec *Codec) *Value {
	if codec == nil {
		codec = defaultCodec
	}
	return &Value{params: params, codec: codec}
}

// String implements flag.Value, and returns the encoded parameters.
func (v *Value) String() string {
	if v == nil || v.params == nil {
		return ""
	}
	name, err := v.codec.Encode(v.params, "")
	if err != nil {
		return ""
	}
	return name
}

// Set implements flag.Value. The decoded parameters replace the previous contents of the Params,
// and any prefix or suffix in token is ignored.
func (v *Value) Set(token string) error {
	_, params, _, err := v.codec.Decode(token)
	if err != nil {
		return err
	}
	v.params.reset(params)
	return nil
}

// FlagVar defines a flag in flag.CommandLine that decodes a savename into params.
//
// Example:
//
//	var architecture = savename.NewParams().Set("features", 64).Set("out", 10)
//
//	func init() {
//		savename.FlagVar(architecture, "architecture", "Architecture hyperparameters, e.g. \"features=32_out=8\".")
//	}
func FlagVar(params *Params, name, usage string) {
	flag.Var(NewValue(params, nil), name, usage)
}

// Flag defines a flag in flag.CommandLine that decodes a savename and returns the Params
// where the values are stored.
func Flag(name, usage string) *Params {
	params := NewParams()
	FlagVar(params, name, usage)
	return params
}
