package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"logicgrid-api/internal/core"
	"logicgrid-api/internal/generator"
)

// categoriesFile is the on-disk shape of the -categories input: the category definitions and,
// optionally, a fixed target fact every generated puzzle should share.
type categoriesFile struct {
	Categories []struct {
		ID     string       `json:"id"`
		Kind   string       `json:"kind"`
		Values []core.Value `json:"values"`
	} `json:"categories"`
	Target *struct {
		Category1 string     `json:"category1"`
		Value1    core.Value `json:"value1"`
		Category2 string     `json:"category2"`
	} `json:"target"`
}

// outputPuzzle is the minimal record written to the batch output file for each generated puzzle.
type outputPuzzle struct {
	ID        string        `json:"id"`
	Seed      int64         `json:"seed"`
	ClueCount int           `json:"clue_count"`
	Clues     []interface{} `json:"clues"`
	Target    interface{}   `json:"target"`
}

func main() {
	categoriesPath := flag.String("categories", "", "path to a categories definition JSON file")
	count := flag.Int("n", 100, "number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("w", 0, "number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	targetClueCount := flag.Int("target-clues", 0, "exact clue count to backtrack for (0 = greedy standard mode)")
	flag.Parse()

	if *categoriesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -categories is required")
		os.Exit(1)
	}
	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	data, err := os.ReadFile(*categoriesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading categories file: %v\n", err)
		os.Exit(1)
	}

	var def categoriesFile
	if err := json.Unmarshal(data, &def); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing categories file: %v\n", err)
		os.Exit(1)
	}

	categories := make([]core.Category, len(def.Categories))
	for i, c := range def.Categories {
		kind := core.KindNominal
		if c.Kind == "ORDINAL" {
			kind = core.KindOrdinal
		}
		categories[i] = core.Category{ID: c.ID, Kind: kind, Values: c.Values}
	}
	var target *core.TargetFact
	if def.Target != nil {
		target = &core.TargetFact{Category1: def.Target.Category1, Value1: def.Target.Value1, Category2: def.Target.Category2}
	}

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	results := make([]outputPuzzle, *count)
	var generated int64
	var failed int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				fmt.Printf("  Progress: %s/%s puzzles (%.1f/sec)\n", humanize.Comma(g), humanize.Comma(int64(*count)), rate)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	gen := generator.NewGenerator()
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				opts := generator.Options{Seed: seed, TargetClueCount: *targetClueCount}
				puzzle, err := gen.GeneratePuzzle(categories, target, opts)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				clues := make([]interface{}, len(puzzle.Clues))
				for i, c := range puzzle.Clues {
					clues[i] = c
				}
				results[idx] = outputPuzzle{
					ID:        puzzle.PuzzleID,
					Seed:      seed,
					ClueCount: len(puzzle.Clues),
					Clues:     clues,
					Target:    puzzle.Target,
				}
				atomic.AddInt64(&generated, 1)
			}
		}()
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %s puzzles in %v (%s failed)\n", humanize.Comma(atomic.LoadInt64(&generated)), elapsed, humanize.Comma(atomic.LoadInt64(&failed)))

	out, err := json.Marshal(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	fmt.Printf("Done! File size: %s\n", humanize.Bytes(uint64(info.Size())))
}
