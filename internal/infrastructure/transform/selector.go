package transform

import "image"

// Selector applies a transform drawn uniformly from a registry on every call.
type Selector struct {
	registry *Registry
	source   Source
}

func NewSelector(registry *Registry, source Source) *Selector {
	return &Selector{registry: registry, source: source}
}

func (s *Selector) Transform(img image.Image) (string, image.Image) {
	chosen := s.registry.Pick(s.source)
	return chosen.Name, chosen.Apply(img)
}

func (s *Selector) Names() []string {
	return s.registry.Names()
}
