// Package mapping holds the fixed translation tables between Zendesk
// enumerations and Halo codes. Each table is a bijection built from a single
// forward map; the reverse direction is derived at construction so the two
// can never drift apart.
package mapping

import (
	"fmt"

	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// Bijection maps labels to codes and back in O(1). The zero value is not
// usable; build one with NewBijection.
type Bijection[L comparable, C comparable] struct {
	name    string
	forward map[L]C
	reverse map[C]L
}

// NewBijection derives the reverse table from forward. It panics if forward
// is not injective, since every table here is fixed at compile time and a
// duplicate code is a programming error, not an input error.
func NewBijection[L comparable, C comparable](name string, forward map[L]C) *Bijection[L, C] {
	reverse := make(map[C]L, len(forward))
	for label, code := range forward {
		if existing, dup := reverse[code]; dup {
			panic(fmt.Sprintf("mapping %s: code %v assigned to both %v and %v", name, code, existing, label))
		}
		reverse[code] = label
	}
	return &Bijection[L, C]{name: name, forward: forward, reverse: reverse}
}

// Code resolves a label to its backend code.
func (b *Bijection[L, C]) Code(label L) (C, error) {
	code, ok := b.forward[label]
	if !ok {
		var zero C
		return zero, apperrors.NewMappingNotFound(b.name, label)
	}
	return code, nil
}

// Label resolves a backend code to its label.
func (b *Bijection[L, C]) Label(code C) (L, error) {
	label, ok := b.reverse[code]
	if !ok {
		var zero L
		return zero, apperrors.NewMappingNotFound(b.name, code)
	}
	return label, nil
}

// Labels returns every label in the table, in no particular order.
func (b *Bijection[L, C]) Labels() []L {
	labels := make([]L, 0, len(b.forward))
	for label := range b.forward {
		labels = append(labels, label)
	}
	return labels
}
