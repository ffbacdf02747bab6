package config

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// TokenContext holds the named values available to shell-command expansion.
// The compiler seeds it with facts about the compiled configuration; the
// startup sequence may add workspace facts before handing it to the
// expansion collaborator. Values are cty so the expansion side can evaluate
// HCL expressions against them directly.
type TokenContext struct {
	vars map[string]cty.Value
}

// NewTokenContext returns an empty TokenContext.
func NewTokenContext() *TokenContext {
	return &TokenContext{vars: make(map[string]cty.Value)}
}

// Set binds a value to a token name, replacing any previous binding.
func (t *TokenContext) Set(name string, val cty.Value) {
	t.vars[name] = val
}

// SetString binds a string value to a token name.
func (t *TokenContext) SetString(name, val string) {
	t.vars[name] = cty.StringVal(val)
}

// SetStringList binds an ordered list of strings to a token name. An empty
// list is stored as an empty string list value rather than omitted.
func (t *TokenContext) SetStringList(name string, vals []string) {
	if len(vals) == 0 {
		t.vars[name] = cty.ListValEmpty(cty.String)
		return
	}
	elems := make([]cty.Value, len(vals))
	for i, v := range vals {
		elems[i] = cty.StringVal(v)
	}
	t.vars[name] = cty.ListVal(elems)
}

// Variables returns a copy of the current bindings.
func (t *TokenContext) Variables() map[string]cty.Value {
	out := make(map[string]cty.Value, len(t.vars))
	for k, v := range t.vars {
		out[k] = v
	}
	return out
}

// Names returns the bound token names in sorted order.
func (t *TokenContext) Names() []string {
	names := make([]string, 0, len(t.vars))
	for k := range t.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// EvalContext materializes the bindings as an HCL evaluation context for the
// expansion collaborator. The returned context holds a copy of the
// variables, so later Set calls do not affect it.
func (t *TokenContext) EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{Variables: t.Variables()}
}
