package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"badlands/internal/generate"
)

type paramSet struct {
	octaves     int
	frequency   float64
	persistence float64
	attenuation float64
	deepWater   float64
	grass       float64
	mountain    float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("oct=%d freq=%.2f pers=%.2f atten=%.2f deep=%.1f grass=%.1f mountain=%.1f",
		p.octaves, p.frequency, p.persistence, p.attenuation, p.deepWater, p.grass, p.mountain)
}

type scenarioResult struct {
	params   paramSet
	score    float64
	walkable float64
	failed   bool
}

func main() {
	size := flag.Int("size", 160, "world side length for sweep runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic worlds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	target := generate.DefaultTarget()

	octaveOptions := []int{6, 10, 14}
	frequencyOptions := []float64{1.5, 2.5, 3.5}
	persistenceOptions := []float64{0.9, 1.1, 1.3}
	attenuationOptions := []float64{1.8, 2.2, 2.6}
	bandOptions := []struct {
		deep     float64
		grass    float64
		mountain float64
	}{
		{deep: 4, grass: 38, mountain: 72},
		{deep: 8, grass: 45, mountain: 77.5},
		{deep: 15, grass: 55, mountain: 85},
	}

	var sets []paramSet
	for _, oct := range octaveOptions {
		for _, freq := range frequencyOptions {
			for _, pers := range persistenceOptions {
				for _, atten := range attenuationOptions {
					for _, band := range bandOptions {
						sets = append(sets, paramSet{
							octaves:     oct,
							frequency:   freq,
							persistence: pers,
							attenuation: atten,
							deepWater:   band.deep,
							grass:       band.grass,
							mountain:    band.mountain,
						})
					}
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %dx%d worlds)\n", len(sets), *workers, *size, *size)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(*size, *seed, params, target)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.failed {
			fmt.Printf("Candidate failed with %s\n", res.params)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].score < all[j].score })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) score=%.4f walkable=%.1f%% params=%s\n", i+1, res.score, res.walkable*100, res.params)
	}
	if len(all) > 0 {
		best := all[0]
		fmt.Printf("\nBest overall: score=%.4f walkable=%.1f%% params=%s\n", best.score, best.walkable*100, best.params)
	}
}

func runScenario(size int, seed int64, params paramSet, target generate.TerrainTarget) scenarioResult {
	g := generate.Default(size, seed)
	g.Noise.Octaves = params.octaves
	g.Noise.Frequency = params.frequency
	g.Noise.Persistence = params.persistence
	g.Noise.Attenuation = params.attenuation
	g.Thresholds.DeepWater = params.deepWater
	g.Thresholds.Grass = params.grass
	g.Thresholds.Mountain = params.mountain
	g.Thresholds.Raise()

	res := generate.RunBalance(*g, target)
	return scenarioResult{params: params, score: res.Score, walkable: res.Walkable, failed: res.Failed}
}
