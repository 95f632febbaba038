package interp

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// EnableDetailedCacheStats turns on the per-node lines in the stats
// report.
var EnableDetailedCacheStats = getEnvBool("KRAIT_DETAILED_CACHE_STATS", false)

// getEnvBool reads a boolean environment variable with a default value.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// CacheStats is a snapshot of the stability distribution over a set of
// nodes.
type CacheStats struct {
	Uninitialized int
	Monomorphic   int
	Polymorphic   int
	Megamorphic   int
}

// Total returns the number of nodes counted.
func (s CacheStats) Total() int {
	return s.Uninitialized + s.Monomorphic + s.Polymorphic + s.Megamorphic
}

// CollectStats classifies every node into the snapshot.
func CollectStats(nodes map[string]Node) CacheStats {
	var s CacheStats
	for _, n := range nodes {
		switch n.State() {
		case CacheStateUninitialized:
			s.Uninitialized++
		case CacheStateMonomorphic:
			s.Monomorphic++
		case CacheStatePolymorphic:
			s.Polymorphic++
		case CacheStateMegamorphic:
			s.Megamorphic++
		}
	}
	return s
}

// PrintCacheStats writes a stability report for the given nodes, one
// aggregate line plus, when detailed stats are enabled, a line per node.
func PrintCacheStats(w io.Writer, nodes map[string]Node) {
	s := CollectStats(nodes)
	if s.Total() == 0 {
		fmt.Fprintf(w, "Node stats: no nodes\n")
		return
	}
	fmt.Fprintf(w, "Node stats: Total: %d, Mono: %d, Poly: %d, Mega: %d, Uninit: %d\n",
		s.Total(), s.Monomorphic, s.Polymorphic, s.Megamorphic, s.Uninitialized)

	if !EnableDetailedCacheStats {
		return
	}
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, nodes[name].State())
	}
}
