package atca

import (
	"fmt"

	"cryptoauth-go/pkg/atca/record"
)

// DefaultSize is the byte size assumed for names the native library does
// not export a size accessor for. The library's own introspection utility
// uses the same fallback.
const DefaultSize = 4

// SizeResolver resolves the byte size of a named native type. The bindings
// layer implements it over the <name>_size symbol convention; mocklib
// provides an in-memory table for tests.
type SizeResolver interface {
	ResolveSize(name string) (int, bool)
}

// Sizes is a registry of native type sizes. Known names are resolved once
// at construction; later lookups of new names are resolved on demand and
// cached. A nil resolver (closed or stub library) always falls back.
type Sizes struct {
	resolver SizeResolver
	cache    map[string]int
}

// NewSizes builds a size registry over r, eagerly resolving each of the
// known names.
func NewSizes(r SizeResolver, known ...string) *Sizes {
	s := &Sizes{resolver: r, cache: make(map[string]int, len(known))}
	if r == nil {
		return s
	}
	for _, name := range known {
		if n, ok := r.ResolveSize(name); ok {
			s.cache[name] = n
		}
	}
	return s
}

// Size returns the byte size of the named native type, falling back to
// DefaultSize when the library does not report one.
func (s *Sizes) Size(name string) int {
	if n, ok := s.cache[name]; ok {
		return n
	}
	if s.resolver != nil {
		if n, ok := s.resolver.ResolveSize(name); ok {
			s.cache[name] = n
			return n
		}
	}
	return DefaultSize
}

// Type returns the fixed-width scalar type matching the introspected size
// of name. Sizes other than 1, 2 and 4 bytes fail with ErrUnsupportedSize.
func (s *Sizes) Type(name string) (*record.Type, error) {
	switch n := s.Size(name); n {
	case 1:
		return record.Uint8, nil
	case 2:
		return record.Uint16, nil
	case 4:
		return record.Uint32, nil
	default:
		return nil, fmt.Errorf("%w: %s reports %d", ErrUnsupportedSize, name, n)
	}
}
