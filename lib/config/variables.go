// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/tidwall/gjson"
)

// variablesSection is the reserved top-level section holding
// user-defined substitution variables.
const variablesSection = "variables"

// maxVariables caps the variable table. The bound is a deliberate
// safety limit on substitution cost, not a storage limitation.
const maxVariables = 64

// Variable is one user-defined name/value pair. Occurrences of Name
// inside string config values are replaced with Value.
type Variable struct {
	Name  string
	Value string
}

// Variables collects the variable table from the current document, in
// document order. Order matters: Substitute applies variables in this
// order, so a later variable can rewrite text injected by an earlier
// one. Defining more than 64 variables is a *FatalError.
func (c *Cache) Variables() ([]Variable, error) {
	section := c.snapshot().section(variablesSection)
	if !section.IsObject() {
		return nil, nil
	}

	variables := make([]Variable, 0, maxVariables)
	var overflow bool
	section.ForEach(func(key, value gjson.Result) bool {
		if len(variables) == maxVariables {
			overflow = true
			return false
		}
		variables = append(variables, Variable{Name: key.String(), Value: value.String()})
		return true
	})
	if overflow {
		return nil, &FatalError{Op: "collecting variables", Root: variablesSection, Err: ErrTooManyVariables}
	}
	return variables, nil
}

// Substitute rewrites text by replacing, for each variable in table
// order, every occurrence of the variable's name with its value. The
// rewrite is sequential and non-recursive: each variable runs one
// ReplaceAll pass over the text as left by the previous variable.
// A later variable whose name matches text introduced by an earlier
// replacement therefore rewrites it — existing configurations rely on
// this cascading behavior, so it is kept as is.
//
// Text containing no variable name is returned unchanged. The variable
// table is copied out of the cache up front, so the cache lock is not
// held across the rewrite passes.
func (c *Cache) Substitute(text string) (string, error) {
	variables, err := c.Variables()
	if err != nil {
		return "", err
	}

	for _, variable := range variables {
		if strings.Contains(text, variable.Name) {
			text = strings.ReplaceAll(text, variable.Name, variable.Value)
		}
	}
	return text, nil
}
