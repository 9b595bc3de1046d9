package geometry

import (
	"strconv"
	"strings"
	"sync"
)

// Geometries carry no mutable state, so every grid of one shape shares a
// single instance. The cache is keyed by (size, region shape) and lives for
// the process.
var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Geometry)
)

// cacheKey serializes (size, regions) into a canonical string key. Region
// order and cell order within a region are part of the shape.
func cacheKey(size int, regions []Group) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(size))
	for _, region := range regions {
		b.WriteByte('|')
		for i, rc := range region {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(strconv.Itoa(rc.Row))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(rc.Col))
		}
	}

	return b.String()
}

func lookup(key string) (*Geometry, bool) {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	g, ok := cache[key]

	return g, ok
}

// store publishes g under key and returns the cached instance. When two
// goroutines build the same shape concurrently the first stored copy wins,
// so equal keys always yield pointer-equal geometries.
func store(key string, g *Geometry) *Geometry {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if prior, ok := cache[key]; ok {
		return prior
	}
	cache[key] = g

	return g
}
