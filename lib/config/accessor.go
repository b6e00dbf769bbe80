// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

// Value is a two-lane lookup result. Exactly one lane is meaningful
// per lookup — Str when the string lane was requested, Int for the
// integer lane — and the other holds its zero value so call sites can
// destructure without branching.
type Value struct {
	Str string
	Int int32
}

// TryGet fetches the value stored at root.key from the cached
// document.
//
// A missing section or key returns ok=false with a nil error; absence
// is a normal outcome handled by the caller via defaults, and a
// missing section is not distinguished from a missing key.
//
// With isString false the value is interpreted through the integer
// lane; a present value that is not integer-shaped is a *FatalError
// naming the offending root and key. With isString true the value is
// converted to its string representation, which never fails, and
// withVariables additionally routes it through Substitute.
func (c *Cache) TryGet(root, key string, isString, withVariables bool) (Value, bool, error) {
	value := member(c.snapshot().section(root), key)
	if !value.Exists() {
		return Value{}, false, nil
	}

	if !isString {
		n, ok := asInt32(value)
		if !ok {
			return Value{}, false, &FatalError{Op: "reading", Root: root, Key: key, Err: ErrNotInteger}
		}
		return Value{Int: n}, true, nil
	}

	text := value.String()
	if withVariables {
		substituted, err := c.Substitute(text)
		if err != nil {
			return Value{}, false, err
		}
		text = substituted
	}
	return Value{Str: text}, true, nil
}

// GetOrDefault is TryGet with absence collapsed into the zero Value
// ("" / 0). It exists for call sites where the default is genuinely
// acceptable; where absence and a zero value mean different things,
// use TryGet.
func (c *Cache) GetOrDefault(root, key string, isString, withVariables bool) (Value, error) {
	value, ok, err := c.TryGet(root, key, isString, withVariables)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, nil
	}
	return value, nil
}
