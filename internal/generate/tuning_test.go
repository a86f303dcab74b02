package generate

import (
	"math"
	"testing"

	"badlands/internal/world"
)

func TestScoreShares(t *testing.T) {
	shares := map[world.TileType]float64{
		world.Grass:    0.5,
		world.Mountain: 0.2,
	}
	target := TerrainTarget{
		world.Grass:    0.4,
		world.Mountain: 0.2,
		world.Snow:     0.1,
	}
	want := 0.1 + 0.0 + 0.1
	if got := ScoreShares(shares, target); math.Abs(got-want) > 1e-12 {
		t.Fatalf("score = %v, want %v", got, want)
	}
	if got := ScoreShares(shares, nil); got != 0 {
		t.Fatalf("empty target scored %v, want 0", got)
	}
}

func TestBetterBalance(t *testing.T) {
	ok := BalanceResult{Score: 0.5, Walkable: 0.6}
	better := BalanceResult{Score: 0.3, Walkable: 0.5}
	failed := BalanceResult{Score: math.Inf(1), Failed: true}

	if !betterBalance(better, ok) {
		t.Fatal("lower score not preferred")
	}
	if betterBalance(ok, better) {
		t.Fatal("higher score preferred")
	}
	if !betterBalance(ok, failed) {
		t.Fatal("successful run not preferred over failed one")
	}
	if betterBalance(failed, ok) {
		t.Fatal("failed run preferred")
	}

	tieA := BalanceResult{Score: 0.4, Walkable: 0.7}
	tieB := BalanceResult{Score: 0.4, Walkable: 0.6}
	if !betterBalance(tieA, tieB) {
		t.Fatal("walkable tiebreak ignored")
	}
}

func TestDefaultSpecsRoundTrip(t *testing.T) {
	for _, spec := range DefaultIntSpecs() {
		g := Default(120, 1)
		v := spec.Values[len(spec.Values)-1]
		spec.Set(g, v)
		if got := spec.Get(g); got != v {
			t.Fatalf("%s: set %d, got %d", spec.Name, v, got)
		}
	}
	for _, spec := range DefaultFloatSpecs() {
		g := Default(120, 1)
		v := spec.Values[len(spec.Values)-1]
		spec.Set(g, v)
		if got := spec.Get(g); got != v {
			t.Fatalf("%s: set %v, got %v", spec.Name, v, got)
		}
	}
}

func TestThresholdSpecsKeepOrder(t *testing.T) {
	for _, spec := range DefaultFloatSpecs() {
		for _, v := range spec.Values {
			g := Default(120, 1)
			spec.Set(g, v)
			th := g.Thresholds
			ordered := th.DeepWater <= th.ShallowWater &&
				th.ShallowWater <= th.Sand &&
				th.Sand <= th.Grass &&
				th.Grass <= th.Hill &&
				th.Hill <= th.Mountain
			if !ordered {
				t.Fatalf("%s = %v left thresholds out of order: %+v", spec.Name, v, th)
			}
		}
	}
}

func TestRunBalanceFlagsFailures(t *testing.T) {
	g := Default(MinWorldSize-1, 1)
	res := RunBalance(*g, DefaultTarget())
	if !res.Failed {
		t.Fatal("undersized world did not fail")
	}
	if !math.IsInf(res.Score, 1) {
		t.Fatalf("failed run scored %v, want +inf", res.Score)
	}
}

func TestTuneNeverReturnsWorseThanBaseline(t *testing.T) {
	base := *Default(100, 5)
	base.Order = []Phase{PhaseLava}
	target := TerrainTarget{
		world.Grass:    0.4,
		world.Mountain: 0.1,
		world.Lava:     0.02,
	}
	intSpecs := []IntSpec{{
		Name:   "lava.spawn_points",
		Values: []int{0, 30},
		Get:    func(g *Generator) int { return g.Lava.SpawnPoints },
		Set:    func(g *Generator, v int) { g.Lava.SpawnPoints = v },
	}}
	floatSpecs := []FloatSpec{{
		Name:   "thresholds.grass",
		Values: []float64{40, 55},
		Get:    func(g *Generator) float64 { return g.Thresholds.Grass },
		Set: func(g *Generator, v float64) {
			g.Thresholds.Grass = v
			g.Thresholds.Raise()
		},
	}}

	tuned, result, records := Tune(base, target, intSpecs, floatSpecs, 1, 2)

	if len(records) == 0 || records[0].Parameter != "baseline" {
		t.Fatalf("trace does not start with baseline: %+v", records)
	}
	baseline := records[0].Result
	if betterBalance(baseline, result) {
		t.Fatalf("tuning regressed: baseline %+v, tuned %+v", baseline, result)
	}
	if result.Failed {
		t.Fatal("tuning settled on a failing configuration")
	}

	replay := RunBalance(tuned, target)
	if replay.Score != result.Score || replay.Walkable != result.Walkable {
		t.Fatalf("tuned settings do not reproduce the reported result: %+v vs %+v", replay, result)
	}
}
