// Package regexcache provides the process-local bounded LRU of compiled
// regular expressions used by the DSL evaluator and the top-down learner
// (spec §4.2).
//
// A pattern that fails to compile is absorbed: the cache stores and returns
// a shared sentinel match-anything-single-character regex instead of
// surfacing the compile error (spec §7, ResourceError). The sentinel is
// built once and reused, never rebuilt per miss.
package regexcache

import (
	"regexp"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the default number of compiled patterns the cache
// retains, matching the Rust source's NonZeroUsize::new(2000).
const DefaultCapacity = 2000

// sentinelPattern is the fallback regex substituted for patterns that fail
// to compile: a match-anything-single-char regex.
const sentinelPattern = "."

// Cache is a bounded, mutex-guarded LRU from pattern string to compiled
// *regexp.Regexp. It is safe for concurrent use, though the synthesis core
// itself is single-threaded (spec §5) — the mutex exists because the cache
// is process-wide shared state, the one piece of global state the core's
// concurrency model calls out explicitly.
type Cache struct {
	mu       sync.Mutex
	lru      *lru.Cache[string, *regexp.Regexp]
	sentinel *regexp.Regexp
}

// New creates a Cache with the given capacity. A non-positive capacity
// selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l, err := lru.New[string, *regexp.Regexp](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, which we've
		// already guarded against above.
		panic("regexcache: " + err.Error())
	}
	return &Cache{lru: l, sentinel: regexp.MustCompile(sentinelPattern)}
}

// defaultMu guards defaultCache so SetCapacity can swap it out from under
// concurrent Compile/Default callers.
var defaultMu sync.RWMutex

// defaultCache is the package-level singleton most callers use, sized per
// DefaultCapacity, mirroring the Rust source's lazy_static CACHE.
var defaultCache = New(DefaultCapacity)

// Default returns the package-level shared cache.
func Default() *Cache {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCache
}

// SetCapacity replaces the package-level shared cache with a fresh, empty
// one sized to capacity — used by synth.Config.RegexCacheCapacity so a
// Driver can size the one process-wide regex LRU spec §4.2 calls for
// without every caller threading a *Cache through by hand. Existing
// entries are dropped, matching a fresh lazy_static CACHE resize.
func SetCapacity(capacity int) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCache = New(capacity)
}

// Compile returns the compiled regex for pattern, compiling and caching it
// on a miss. A pattern that fails to compile never surfaces an error: the
// shared sentinel "." regex is cached and returned instead (spec §4.2,
// §7 ResourceError — absorbed, never surfaced).
func (c *Cache) Compile(pattern string) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.lru.Get(pattern); ok {
		return re
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		re = c.sentinel
	}
	c.lru.Add(pattern, re)
	return re
}

// Compile compiles pattern using the default shared cache.
func Compile(pattern string) *regexp.Regexp {
	return Default().Compile(pattern)
}

// Len reports the number of patterns currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
