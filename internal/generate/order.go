package generate

import (
	"fmt"
	"strings"
)

// Phase identifies one orderable step of the spawn pipeline. Elevation and
// terrain classification always run first and are not phases.
type Phase string

const (
	PhaseStreets Phase = "streets"
	PhaseLava    Phase = "lava"
	PhaseBanks   Phase = "banks"
	PhaseBins    Phase = "bins"
	PhaseCrates  Phase = "crates"
	PhaseGarbage Phase = "garbage"
	PhaseFire    Phase = "fire"
	PhaseTrees   Phase = "trees"
	PhaseRocks   Phase = "rocks"
	PhaseCoins   Phase = "coins"
	PhaseWater   Phase = "water"
)

// DefaultOrder returns the standard phase order. Terrain-altering phases
// run before content so capability checks see final terrain, and water
// stock runs last to fill whatever water tiles remain empty.
func DefaultOrder() []Phase {
	return []Phase{
		PhaseStreets, PhaseLava,
		PhaseBanks, PhaseBins, PhaseCrates, PhaseGarbage, PhaseFire,
		PhaseTrees, PhaseRocks, PhaseCoins, PhaseWater,
	}
}

// Phases returns every known phase in default-order position.
func Phases() []Phase { return DefaultOrder() }

func validPhase(p Phase) bool {
	switch p {
	case PhaseStreets, PhaseLava, PhaseBanks, PhaseBins, PhaseCrates,
		PhaseGarbage, PhaseFire, PhaseTrees, PhaseRocks, PhaseCoins, PhaseWater:
		return true
	}
	return false
}

// Dedup removes repeated phases; the first occurrence wins.
func Dedup(order []Phase) []Phase {
	seen := make(map[Phase]bool, len(order))
	out := make([]Phase, 0, len(order))
	for _, p := range order {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// ParseOrder reads a comma-separated phase list. An empty string is an
// empty order, which generates bare terrain.
func ParseOrder(s string) ([]Phase, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var order []Phase
	for _, part := range strings.Split(s, ",") {
		p := Phase(strings.TrimSpace(part))
		if !validPhase(p) {
			return nil, fmt.Errorf("generate: unknown phase %q, valid phases are %v", p, Phases())
		}
		order = append(order, p)
	}
	return order, nil
}
