package serialization

import (
	"fmt"
	"sort"

	"github.com/voteforge/electionkit/internal/ekerr"
)

// Codec is a pair of coercion rules for one named type that has no
// unambiguous structural JSON mapping (timestamps, large integers, group
// elements, enumerations). Parse turns the JSON-decoded form of a value
// into its typed form; Format is the inverse.
type Codec struct {
	// Name is the canonical type identifier the codec is registered under.
	Name string

	// Parse converts a JSON-decoded value (string, float64, bool, map,
	// slice) into the typed value.
	Parse func(raw any) (any, error)

	// Format converts a typed value into a JSON-compatible value.
	Format func(v any) (any, error)
}

// Registry is the closed set of codecs known to the serializer. It is
// populated once at construction and read-only afterwards, so a single
// Registry can back concurrent serialize and deserialize calls.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry builds a registry from the given codecs. Duplicate or
// incomplete codecs are a configuration error.
func NewRegistry(codecs ...Codec) (*Registry, error) {
	m := make(map[string]Codec, len(codecs))
	for _, c := range codecs {
		if c.Name == "" || c.Parse == nil || c.Format == nil {
			return nil, fmt.Errorf("%w: codec %q must have a name, a parse rule and a format rule",
				ekerr.ErrInvalidConfiguration, c.Name)
		}
		if _, exists := m[c.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate codec %q", ekerr.ErrInvalidConfiguration, c.Name)
		}
		m[c.Name] = c
	}
	return &Registry{codecs: m}, nil
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name string) (Codec, bool) {
	c, ok := r.codecs[name]
	return c, ok
}

// Parse coerces a JSON-decoded value into the typed form registered under
// name. An unregistered name fails with ErrUnsupportedType.
func (r *Registry) Parse(name string, raw any) (any, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: no codec registered for %q", ekerr.ErrUnsupportedType, name)
	}
	return c.Parse(raw)
}

// Format converts a typed value registered under name back into its
// JSON-compatible form.
func (r *Registry) Format(name string, v any) (any, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: no codec registered for %q", ekerr.ErrUnsupportedType, name)
	}
	return c.Format(v)
}

// Names returns the sorted canonical identifiers of all registered codecs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
