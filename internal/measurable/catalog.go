package measurable

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sahidursuman/measured/internal/log"
)

// Catalog maps kind names to kinds. Names are matched case-insensitively.
type Catalog struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		kinds: make(map[string]*Kind),
	}
}

// Register adds k. Registering the same *Kind twice is a no-op; a different
// kind under a taken name fails with ErrDuplicateKind.
func (c *Catalog) Register(k *Kind) error {
	if k == nil || k.Name() == "" {
		return ErrBlankKindName
	}
	key := strings.ToLower(k.Name())

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.kinds[key]; ok {
		if existing == k {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateKind, k.Name())
	}
	c.kinds[key] = k
	log.Debug(log.CatRegistry, "kind registered", "kind", k.Name())
	return nil
}

// Lookup finds a kind by name, e.g. "weight" or "Weight"
func (c *Catalog) Lookup(name string) (*Kind, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if k, ok := c.kinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns the registered kind names, sorted
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.kinds))
	for _, k := range c.kinds {
		names = append(names, k.Name())
	}
	sort.Strings(names)
	return names
}

// FindByUnit returns the kinds that define name as a unit or alias
func (c *Catalog) FindByUnit(name string) []*Kind {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*Kind
	for _, k := range c.kinds {
		if k.IsValidUnit(name) {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

var defaultCatalog atomic.Pointer[Catalog]

func init() {
	defaultCatalog.Store(NewCatalog())
}

// Default returns the process-wide catalog. UnmarshalJSON resolves kinds
// through it.
func Default() *Catalog {
	return defaultCatalog.Load()
}

// SetDefault replaces the process-wide catalog, e.g. once the kinds of a
// command line invocation have been loaded. A nil catalog is ignored.
func SetDefault(c *Catalog) {
	if c != nil {
		defaultCatalog.Store(c)
	}
}

// Register adds k to the process-wide catalog
func Register(k *Kind) error {
	return Default().Register(k)
}

// Lookup finds a kind in the process-wide catalog
func Lookup(name string) (*Kind, error) {
	return Default().Lookup(name)
}

// Kinds lists the process-wide catalog
func Kinds() []string {
	return Default().Kinds()
}
