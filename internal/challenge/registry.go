package challenge

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// ErrEmptyPool is returned when no registered challenge is eligible at the
// requested difficulty. This indicates a content gap, not a player error.
var ErrEmptyPool = errors.New("challenge: no eligible challenge for difficulty")

// ErrNotFound is returned when a challenge id is not registered.
var ErrNotFound = errors.New("challenge: unknown challenge")

// Record is an immutable registry entry: a challenge type plus the metadata
// the engine reads before paying the cost of instantiation (BaseTime in
// particular, so the timer can be configured without building the instance).
type Record struct {
	ID       string
	Category Category
	Factory  Factory
	Meta     Meta
}

// eligible reports whether this record may appear at the given level.
func (r Record) eligible(level int) bool {
	if level < r.Meta.MinDifficulty {
		return false
	}
	return r.Meta.MaxDifficulty == 0 || level <= r.Meta.MaxDifficulty
}

// Registry is a catalog of challenge types. Challenge packages register
// themselves in init() functions against the Default registry; the
// composing application may also build its own with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	records map[string]Record
	rng     *rand.Rand
}

// NewRegistry creates an empty registry. A seed of 0 means seed from the
// current time; any other value makes selection and instantiation
// reproducible.
func NewRegistry(seed int64) *Registry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Registry{
		records: make(map[string]Record),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Register inserts a challenge record. Re-registration under the same id
// replaces the previous entry (last write wins), which permits patching a
// challenge definition at runtime.
func (reg *Registry) Register(id string, cat Category, f Factory, meta Meta) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if meta.MinDifficulty < 1 {
		meta.MinDifficulty = 1
	}
	reg.records[id] = Record{ID: id, Category: cat, Factory: f, Meta: meta}
}

// RandomChallenge picks uniformly among records eligible at the given
// difficulty and returns the record, not an instance, so the caller can
// read Meta.BaseTime before instantiating.
func (reg *Registry) RandomChallenge(level int) (Record, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	pool := make([]Record, 0, len(reg.records))
	for _, r := range reg.records {
		if r.eligible(level) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return Record{}, fmt.Errorf("%w %d", ErrEmptyPool, level)
	}

	// Map iteration order is random but not seeded; sort for determinism.
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	return pool[reg.rng.Intn(len(pool))], nil
}

// Get instantiates a challenge by id at the given difficulty.
func (reg *Registry) Get(id string, level int) (Instance, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.records[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNotFound, id)
	}
	return r.Factory(level, reg.rng), nil
}

// New instantiates the given record at the given difficulty using the
// registry's rng. Used by the engine after RandomChallenge.
func (reg *Registry) New(r Record, level int) Instance {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return r.Factory(level, reg.rng)
}

// Reseed replaces the registry's rng source. Used when the player asks for
// a reproducible run after the registry was built.
func (reg *Registry) Reseed(seed int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.rng = rand.New(rand.NewSource(seed))
}

// ByCategory returns all records in the given category, sorted by id.
func (reg *Registry) ByCategory(cat Category) []Record {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	var out []Record
	for _, r := range reg.records {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns all registered ids, sorted.
func (reg *Registry) IDs() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	ids := make([]string, 0, len(reg.records))
	for id := range reg.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered challenge types.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.records)
}

// Default is the registry challenge packages register against at load time.
var Default = NewRegistry(0)

// Register adds a challenge to the Default registry. Typically called from
// a challenge package's init() function.
func Register(id string, cat Category, f Factory, meta Meta) {
	Default.Register(id, cat, f, meta)
}
