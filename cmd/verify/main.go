// Command verify replays a generated puzzle's proof chain against a blank grid and reports
// whether the chain actually solves it, independent of whatever engine produced the chain.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
	"logicgrid-api/internal/solver"
)

// puzzleFile is the on-disk shape this command reads: the categories the puzzle was built over
// and the ordered clue sequence to replay. Only these two fields are read; note that outputPuzzle
// in cmd/generate carries no categories, so its records are not accepted as they are.
type puzzleFile struct {
	Categories []struct {
		ID     string       `json:"id"`
		Kind   string       `json:"kind"`
		Values []core.Value `json:"values"`
	} `json:"categories"`
	Clues []clue.Clue `json:"clues"`
}

func main() {
	path := flag.String("puzzle", "", "path to a puzzle JSON file with categories and clues")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: -puzzle is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading puzzle file: %v\n", err)
		os.Exit(1)
	}

	var pf puzzleFile
	if err := json.Unmarshal(data, &pf); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing puzzle file: %v\n", err)
		os.Exit(1)
	}

	categories := make([]core.Category, len(pf.Categories))
	for i, c := range pf.Categories {
		kind := core.KindNominal
		if c.Kind == "ORDINAL" {
			kind = core.KindOrdinal
		}
		categories[i] = core.Category{ID: c.ID, Kind: kind, Values: c.Values}
	}

	g, err := grid.NewGrid(categories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid categories: %v\n", err)
		os.Exit(1)
	}

	s := solver.NewSolver()
	total := s.ApplyAll(g, pf.Clues)
	stats := g.Stats()

	fmt.Printf("Applied %d clues, %d deductions\n", len(pf.Clues), total)
	fmt.Printf("Grid: %d/%d cells still possible (solved at %d)\n", stats.Current, stats.Total, stats.Solution)

	if g.IsSolved() {
		fmt.Println("SOLVED")
		return
	}

	fmt.Println("NOT SOLVED")
	os.Exit(1)
}
