package store

import (
	"context"
	"sync"
)

// MemorySlot keeps the value in process memory.
type MemorySlot struct {
	mu    sync.Mutex
	value string
	ok    bool
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Get(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.ok, nil
}

func (s *MemorySlot) Set(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.ok = value, true
	return nil
}

func (s *MemorySlot) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.ok = "", false
	return nil
}
