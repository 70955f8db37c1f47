package raytracer

import (
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Category uint8

const (
	RayHit  Category = iota // ray hit an object
	RayMiss                 // ray missed everything
)

func (c Category) String() string {
	if c == RayHit {
		return "hit"
	}
	return "miss"
}

// RayLog is one cast ray as seen by a scenario.
type RayLog struct {
	Name      string
	Category  Category
	Origin    Tuple
	Direction Tuple
	Distance  Real // hit parameter, 0 for misses
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // ray name -> logs
}

var cache = newRayLogCache()

func newRayLogCache() *RayLogCache {
	return &RayLogCache{rays: make(map[string][]RayLog)}
}

func logRay(name string, category Category, r Ray, distance Real) {
	if !RayLogging {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:      name,
		Category:  category,
		Origin:    r.Origin,
		Direction: r.Direction,
		Distance:  distance,
	})
}

// RayCounts returns hit and miss counts for the named ray log.
func RayCounts(name string) (hits, misses int) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for _, l := range cache.rays[name] {
		if l.Category == RayHit {
			hits++
		} else {
			misses++
		}
	}
	return hits, misses
}

// resetRayLog drops everything recorded so far.
func resetRayLog() {
	cache.mu.Lock()
	cache.rays = make(map[string][]RayLog)
	cache.mu.Unlock()
}

// raysStats logs per-name hit/miss totals with thousands separators.
func raysStats() {
	cache.mu.Lock()
	names := make([]string, 0, len(cache.rays))
	for k := range cache.rays {
		names = append(names, k)
	}
	cache.mu.Unlock()
	sort.Strings(names)

	p := message.NewPrinter(language.English)
	for _, name := range names {
		hits, misses := RayCounts(name)
		Logger().Info("ray stats",
			"name", name,
			"hits", p.Sprintf("%d", hits),
			"misses", p.Sprintf("%d", misses),
		)
	}
}
