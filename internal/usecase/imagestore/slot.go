package imagestore

import (
	"sync"

	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
)

// Slot is the single process-wide buffer holding the most recently
// uploaded image. All access is exclusive and goes through With.
type Slot struct {
	mu  sync.Mutex
	img entity.Image
}

func NewSlot() *Slot {
	return &Slot{}
}

// With blocks until the slot is free, then runs fn while holding it. The
// slot is released when fn returns or panics. fn must not retain buf.
func (s *Slot) With(fn func(buf *entity.Image) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.img)
}

// Snapshot returns a copy of the slot contents.
func (s *Slot) Snapshot() entity.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img.Clone()
}
