// Package tools holds the tool registry, the declarative input contracts,
// the dispatcher that enforces them, and the handlers that map validated
// calls onto the coin platform.
package tools

import (
	"context"
	"fmt"
)

// FieldType enumerates the value kinds a tool argument may declare.
type FieldType int

const (
	FieldString FieldType = iota
	FieldNumber
	FieldInteger
	FieldBoolean
	FieldStringList
	FieldIntegerList
	FieldObjectList
)

// Field is one entry of a tool's input contract. The generic validator
// interprets these declaratively; no tool carries hand-written validation
// code.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
	// MinLen applies to strings (minimum length) and lists (minimum
	// number of items).
	MinLen int
	// Min and Max bound numeric fields inclusively.
	Min *float64
	Max *float64
	// Enum restricts a string field to the listed values.
	Enum []string
	// Default is applied when an optional field is absent.
	Default any
	// Elem describes the per-element contract of an object list.
	Elem []Field
}

// Handler executes one validated tool call.
type Handler func(ctx context.Context, env *Env, args Args) (any, error)

// Spec is a complete tool definition: identity, input contract, write
// classification and handler.
type Spec struct {
	Name        string
	Title       string
	Description string
	// Write marks state-mutating tools, which are gated on the signing
	// identity.
	Write   bool
	Fields  []Field
	Handler Handler
}

// Registry is an ordered, immutable-after-startup mapping from tool name
// to definition.
type Registry struct {
	order []string
	specs map[string]*Spec
}

func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds a tool definition. Duplicate names are a startup error.
func (r *Registry) Register(s *Spec) error {
	if s.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if _, exists := r.specs[s.Name]; exists {
		return fmt.Errorf("tool %q registered twice", s.Name)
	}
	r.order = append(r.order, s.Name)
	r.specs[s.Name] = s
	return nil
}

// Lookup returns the definition for name, or false when unregistered.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Specs returns all definitions in registration order.
func (r *Registry) Specs() []*Spec {
	out := make([]*Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

func f64(v float64) *float64 {
	return &v
}
