package style

import (
	"sort"
	"strconv"
	"sync"

	apperrors "github.com/alexisbeaulieu97/stylist/pkg/errors"
)

// PresetKey composes a registry key such as "h2" or "p3".
func PresetKey(family Family, size int) string {
	return string(family) + strconv.Itoa(size)
}

// Registry stores text preset fragments by key. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	fragments  map[string]Fragment
	generation uint64
}

// NewRegistry creates an empty preset registry.
func NewRegistry() *Registry {
	return &Registry{fragments: make(map[string]Fragment)}
}

// Register adds or replaces the fragment for key.
func (r *Registry) Register(key string, fragment Fragment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fragments[key] = fragment
	r.generation++
}

// RegisterAll adds or replaces every fragment in presets.
func (r *Registry) RegisterAll(presets map[string]Fragment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, fragment := range presets {
		r.fragments[key] = fragment
	}
	r.generation++
}

// Get returns the fragment registered for key.
func (r *Registry) Get(key string) (Fragment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fragment, ok := r.fragments[key]
	return fragment, ok
}

// Lookup returns the fragment for <family><size>. Unregistered keys yield a
// *errors.PresetError wrapping errors.ErrPresetNotFound.
func (r *Registry) Lookup(family Family, size int) (Fragment, error) {
	key := PresetKey(family, size)
	fragment, ok := r.Get(key)
	if !ok {
		return Fragment{}, apperrors.NewPresetError(key, apperrors.ErrPresetNotFound)
	}
	return fragment, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.fragments))
	for key := range r.fragments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered presets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fragments)
}

// Generation changes every time the registry is written. Resolvers fold it into
// cache keys so sheets built from replaced presets are never served.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}
