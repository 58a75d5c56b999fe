package rates

import (
	"math"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// Graph stores the known currency pairs and answers arbitrary pair
// conversions by walking the rate graph. One instance belongs to one
// simulation run; consumers receive it by reference, there is no
// package-level state.
type Graph struct {
	edges map[string]map[string]float64

	// Neighbor insertion order per currency. Go map iteration is
	// randomized, but the first-discovered conversion path must be
	// reproducible across runs, so BFS walks neighbors in the order
	// their edges were registered.
	order map[string][]string
}

func NewGraph() *Graph {
	return &Graph{
		edges: make(map[string]map[string]float64),
		order: make(map[string][]string),
	}
}

// AddRate registers a direct rate and its reciprocal. A repeated pair
// overwrites the previous rate and keeps its original traversal slot.
// Non-finite and non-positive rates are ignored so a bad input line
// cannot poison the graph.
func (g *Graph) AddRate(from, to string, rate float64) {
	if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		return
	}
	g.insert(from, to, rate)
	g.insert(to, from, 1/rate)
}

func (g *Graph) insert(from, to string, rate float64) {
	if g.edges[from] == nil {
		g.edges[from] = make(map[string]float64)
	}
	if _, exists := g.edges[from][to]; !exists {
		g.order[from] = append(g.order[from], to)
	}
	g.edges[from][to] = rate
}

// Convert turns amount from one currency into another. Identical
// currencies short-circuit without touching the graph, which keeps
// same-currency amounts free of float round-trip error.
func (g *Graph) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	if rate, ok := g.edges[from][to]; ok {
		return amount * rate, nil
	}
	rate, err := g.searchRate(from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

// searchRate runs an unweighted BFS from `from`, carrying the product
// of edge rates to each node, and returns the cumulative rate the
// first time `to` is dequeued. With redundant inconsistent edges this
// is not necessarily the numerically best rate; downstream commission
// and report numbers depend on exactly this traversal.
func (g *Graph) searchRate(from, to string) (float64, error) {
	visited := map[string]bool{}
	cumulative := map[string]float64{from: 1}
	queue := []string{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return cumulative[current], nil
		}
		visited[current] = true

		for _, neighbor := range g.order[current] {
			if visited[neighbor] {
				continue
			}
			cumulative[neighbor] = cumulative[current] * g.edges[current][neighbor]
			queue = append(queue, neighbor)
		}
	}
	return 0, domain.ErrNoConversionPath
}
