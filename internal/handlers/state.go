package handlers

import "sync"

// PathStore holds the process-wide current spreadsheet path. It starts unset
// and is overwritten by each set-excel-path call. The mutex keeps the pointer
// itself race-free, but concurrent set/read across requests is still
// last-writer-wins with no isolation; that matches the intended semantics.
type PathStore struct {
	mu   sync.RWMutex
	path string
}

func NewPathStore() *PathStore {
	return &PathStore{}
}

func (p *PathStore) Set(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.path = path
}

// Get returns the current path and whether one has been set.
func (p *PathStore) Get() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path, p.path != ""
}
