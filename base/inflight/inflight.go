package inflight

import "sync"

// Flags is a set of keys marking work that is in flight
type Flags struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

func New() *Flags {
	return &Flags{set: make(map[string]struct{})}
}

// TryAcquire sets all keys or none of them. ok is false when one of the keys
// is already set. release is safe to call more than once.
func (f *Flags) TryAcquire(keys ...string) (release func(), ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		if _, busy := f.set[k]; busy {
			return func() {}, false
		}
	}
	for _, k := range keys {
		f.set[k] = struct{}{}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, k := range keys {
				delete(f.set, k)
			}
		})
	}, true
}

func (f *Flags) IsSet(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.set[key]
	return ok
}

// Len is the number of keys currently set
func (f *Flags) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.set)
}
