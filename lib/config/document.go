// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// document is one parsed configuration tree. Documents are immutable
// once parsed: a refresh builds a new document and swaps it in whole.
//
// The zero value is the empty placeholder used before the first
// refresh. Every lookup against it reports absence, so components that
// query the cache before it is populated degrade to their defaults
// instead of failing.
type document struct {
	root gjson.Result
}

// parseDocument strips JSONC comments and trailing commas from data
// and parses the result. Malformed JSON is an error; the caller treats
// it as fatal.
func parseDocument(data []byte) (document, error) {
	stripped := jsonc.ToJSON(data)
	if !gjson.ValidBytes(stripped) {
		return document{}, errors.New("not valid JSON")
	}
	return document{root: gjson.ParseBytes(stripped)}, nil
}

// section returns the object stored under the given top-level name.
// A missing section is indistinguishable from an empty one: lookups
// against both report absence.
func (d document) section(name string) gjson.Result {
	return member(d.root, name)
}

// member looks up an object member by its literal name. gjson path
// syntax gives "." and "*" special meaning, but section and key names
// are plain strings, so member names are matched literally instead of
// going through Result.Get. Iteration follows document order, which
// also makes this the basis for ordered variable collection.
func member(object gjson.Result, name string) gjson.Result {
	if !object.IsObject() {
		return gjson.Result{}
	}
	var found gjson.Result
	object.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			found = value
			return false
		}
		return true
	})
	return found
}

// asInt32 interprets value through the integer lane: a JSON number
// with no fractional part that fits in int32. Anything else, including
// numeric strings, reports false.
func asInt32(value gjson.Result) (int32, bool) {
	if value.Type != gjson.Number {
		return 0, false
	}
	n := value.Num
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}
