// Package transform holds the fixed catalog of named image filters and the
// uniform selection over it.
package transform

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/marcos-nsantos/pixbox/internal/domain"
)

// Func edits img and returns the result. Implementations are pure: the same
// input always produces the same output.
type Func func(img image.Image) *image.NRGBA

type Transform struct {
	Name  string
	Apply Func
}

// Source is the random source used by Pick. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Registry is an immutable ordered list of transforms.
type Registry struct {
	transforms []Transform
	index      map[string]int
}

// NewRegistry builds a registry from the catalog. With no names every
// catalog entry is included, in catalog order.
func NewRegistry(names ...string) (*Registry, error) {
	all := Catalog()
	if len(names) == 0 {
		return newRegistry(all), nil
	}

	byName := make(map[string]Transform, len(all))
	for _, t := range all {
		byName[t.Name] = t
	}

	selected := make([]Transform, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTransform, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		selected = append(selected, t)
	}

	return newRegistry(selected), nil
}

func newRegistry(transforms []Transform) *Registry {
	index := make(map[string]int, len(transforms))
	for i, t := range transforms {
		index[t.Name] = i
	}
	return &Registry{transforms: transforms, index: index}
}

func (r *Registry) Len() int {
	return len(r.transforms)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.transforms))
	for i, t := range r.transforms {
		names[i] = t.Name
	}
	return names
}

func (r *Registry) Lookup(name string) (Transform, error) {
	i, ok := r.index[name]
	if !ok {
		return Transform{}, fmt.Errorf("%w: %q", domain.ErrUnknownTransform, name)
	}
	return r.transforms[i], nil
}

// Pick draws one transform uniformly at random from src.
func (r *Registry) Pick(src Source) Transform {
	return r.transforms[src.IntN(len(r.transforms))]
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource draws from the runtime-seeded math/rand/v2 generator and is
// safe for concurrent use.
var DefaultSource Source = globalSource{}
