package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"toruslife/internal/sims/life"
)

type timing struct {
	workers    int
	elapsed    time.Duration
	population int
	board      []uint8
}

type sweepResult struct {
	rows, cols int
	chance     float64
	population int
	active     int
	stableAt   int
}

func main() {
	mode := flag.String("mode", "time", "time: compare worker counts; sweep: survey board sizes and densities")
	steps := flag.Int("steps", 500, "generations per run")
	rows := flag.Int("rows", 400, "board rows")
	cols := flag.Int("cols", 600, "board columns")
	chance := flag.Float64("chance", 0.5, "initial alive probability")
	seed := flag.Int64("seed", 42, "random seed")
	workerList := flag.String("workers", "1,2,4,"+strconv.Itoa(runtime.NumCPU()), "comma separated worker counts to time")
	jobs := flag.Int("jobs", runtime.NumCPU(), "concurrent boards in sweep mode")
	flag.Parse()

	switch *mode {
	case "time":
		counts, err := parseWorkers(*workerList)
		if err != nil {
			log.Fatal(err)
		}
		runTimings(counts, *rows, *cols, *chance, *seed, *steps)
	case "sweep":
		runSweep(*jobs, *seed, *steps)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func parseWorkers(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad worker count %q", part)
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no worker counts in %q", s)
	}
	return out, nil
}

func newSession(rows, cols, workers int, chance float64, seed int64) *life.Session {
	cfg := life.DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	cfg.Workers = workers
	cfg.SpawnChance = chance
	s := life.NewWithConfig(cfg, life.WithLogger(log.New(io.Discard, "", 0)))
	s.Reset(seed)
	return s
}

func runTimings(counts []int, rows, cols int, chance float64, seed int64, steps int) {
	fmt.Printf("Timing %dx%d board, %d generations, chance %.2f, seed %d\n", rows, cols, steps, chance, seed)
	var results []timing
	for _, workers := range counts {
		s := newSession(rows, cols, workers, chance, seed)
		start := time.Now()
		for i := 0; i < steps; i++ {
			s.Iterate()
		}
		elapsed := time.Since(start)
		results = append(results, timing{
			workers:    workers,
			elapsed:    elapsed,
			population: s.Grid().Population(),
			board:      slices.Clone(s.Cells()),
		})
	}

	base := results[0]
	for _, r := range results {
		speedup := float64(base.elapsed) / float64(r.elapsed)
		perGen := r.elapsed / time.Duration(max(steps, 1))
		fmt.Printf("workers=%-3d elapsed=%-12s per-gen=%-10s speedup=%.2fx population=%d\n",
			r.workers, r.elapsed.Round(time.Microsecond), perGen.Round(time.Microsecond), speedup, r.population)
		if !slices.Equal(r.board, base.board) {
			fmt.Printf("MISMATCH: board with %d workers differs from %d workers\n", r.workers, base.workers)
			os.Exit(1)
		}
	}
	fmt.Println("All worker counts produced identical boards.")
}

func runSweep(jobs int, seed int64, steps int) {
	type scenario struct {
		rows, cols int
		chance     float64
	}
	var scenarios []scenario
	for _, size := range []int{64, 128, 256} {
		for _, chance := range []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7} {
			scenarios = append(scenarios, scenario{rows: size, cols: size, chance: chance})
		}
	}
	fmt.Printf("Sweeping %d boards (%d jobs, %d generations)\n", len(scenarios), jobs, steps)

	work := make(chan scenario)
	results := make(chan sweepResult)
	var wg sync.WaitGroup
	for i := 0; i < max(jobs, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range work {
				results <- runScenario(sc.rows, sc.cols, sc.chance, seed, steps)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, sc := range scenarios {
			work <- sc
		}
		close(work)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].rows != all[j].rows {
			return all[i].rows < all[j].rows
		}
		return all[i].chance < all[j].chance
	})
	for _, r := range all {
		stable := "-"
		if r.stableAt >= 0 {
			stable = strconv.Itoa(r.stableAt)
		}
		density := float64(r.population) / float64(r.rows*r.cols)
		fmt.Printf("%4dx%-4d chance=%.1f population=%-6d density=%.3f active=%-6d stable=%s\n",
			r.rows, r.cols, r.chance, r.population, density, r.active, stable)
	}
	fmt.Printf("Sweep finished in %s\n", time.Since(start).Round(time.Millisecond))
}

// runScenario evolves one board single-threaded and records when its
// population first held steady for a period-2 window.
func runScenario(rows, cols int, chance float64, seed int64, steps int) sweepResult {
	s := newSession(rows, cols, 1, chance, seed)
	res := sweepResult{rows: rows, cols: cols, chance: chance, stableAt: -1}
	history := make([]int, 0, steps)
	for i := 0; i < steps; i++ {
		s.Iterate()
		history = append(history, s.Grid().Population())
		if res.stableAt < 0 && len(history) >= 4 {
			n := len(history)
			if history[n-1] == history[n-3] && history[n-2] == history[n-4] {
				res.stableAt = i + 1
			}
		}
	}
	res.population = s.Grid().Population()
	res.active = s.Grid().Active.Len()
	return res
}
