package builder

import (
	"fmt"

	"github.com/katalvlaran/landmarks/core"
)

// validateMin ensures got ≥ min for the given method.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateFits ensures labels cfg.offset+1 … cfg.offset+need exist in g.
func validateFits(method string, nodeCount, need int, cfg builderConfig) error {
	if cfg.offset+need > nodeCount {
		return fmt.Errorf("%s: need labels %d..%d, graph has %d nodes: %w",
			method, cfg.offset+1, cfg.offset+need, nodeCount, ErrGraphTooSmall)
	}
	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	return nil
}

// addRoad inserts one road between constructor-local nodes u and v.
func addRoad(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	a, b := cfg.label(u), cfg.label(v)
	if err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, a, b, err, ErrConstructFailed)
	}
	return nil
}
