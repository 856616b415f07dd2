package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/generator"
	"logicgrid-api/internal/grid"
	"logicgrid-api/internal/solver"
	"logicgrid-api/internal/store"
	"logicgrid-api/internal/validate"
	"logicgrid-api/pkg/config"
	"logicgrid-api/pkg/constants"
)

var (
	cfg  *config.Config
	repo store.PuzzleRepository
)

// RegisterRoutes wires every HTTP operation onto r. puzzles may be nil, in which case
// /api/puzzles/:id and the persistence step of /api/generate are disabled.
func RegisterRoutes(r *gin.Engine, c *config.Config, puzzles store.PuzzleRepository) {
	cfg = c
	repo = puzzles

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/generate", generateHandler)
		api.POST("/bounds", boundsHandler)
		api.POST("/solver/apply", solverApplyHandler)
		api.GET("/puzzles/:id", getPuzzleHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// categoryRequest is the wire shape of one category in a request body.
type categoryRequest struct {
	ID     string       `json:"id" binding:"required"`
	Kind   string       `json:"kind" binding:"required"`
	Values []core.Value `json:"values" binding:"required"`
}

func (cr categoryRequest) toCategory() core.Category {
	kind := core.KindNominal
	if cr.Kind == "ORDINAL" {
		kind = core.KindOrdinal
	}
	return core.Category{ID: cr.ID, Kind: kind, Values: cr.Values}
}

type targetRequest struct {
	Category1 string     `json:"category1"`
	Value1    core.Value `json:"value1"`
	Category2 string     `json:"category2"`
}

type optionsRequest struct {
	Seed             any      `json:"seed"`
	MaxCandidates    *int     `json:"maxCandidates"`
	TargetClueCount  int      `json:"targetClueCount"`
	TimeoutMs        int      `json:"timeoutMs"`
	AllowedClueTypes []string `json:"allowedClueTypes"`
}

type generateRequest struct {
	Categories []categoryRequest `json:"categories" binding:"required"`
	Target     *targetRequest    `json:"target"`
	Options    optionsRequest    `json:"options"`
	Persist    bool              `json:"persist"`
}

func toVariant(s string) clue.Variant {
	switch s {
	case "BINARY":
		return clue.VariantBinary
	case "ORDINAL":
		return clue.VariantOrdinal
	case "SUPERLATIVE":
		return clue.VariantSuperlative
	case "UNARY":
		return clue.VariantUnary
	case "CROSS_ORDINAL":
		return clue.VariantCrossOrdinal
	default:
		return ""
	}
}

func (o optionsRequest) toOptions() generator.Options {
	opts := generator.Options{
		Seed:            o.Seed,
		TargetClueCount: o.TargetClueCount,
		TimeoutMs:       o.TimeoutMs,
	}
	if o.MaxCandidates != nil {
		opts = opts.WithMaxCandidates(*o.MaxCandidates)
	}
	for _, s := range o.AllowedClueTypes {
		if v := toVariant(s); v != "" {
			opts.Constraints.AllowedClueTypes = append(opts.Constraints.AllowedClueTypes, v)
		}
	}
	return opts
}

// generateHandler reads the raw body itself (rather than via ShouldBindJSON) because the schema
// validator and the struct binder both need the full bytes.
func generateHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := validate.ValidateGenerateRequestJSON(body); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": errs})
		return
	}

	var req generateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories := make([]core.Category, len(req.Categories))
	for i, cr := range req.Categories {
		categories[i] = cr.toCategory()
	}

	var target *core.TargetFact
	if req.Target != nil {
		target = &core.TargetFact{Category1: req.Target.Category1, Value1: req.Target.Value1, Category2: req.Target.Category2}
	}

	opts := req.Options.toOptions()
	if opts.TimeoutMs <= 0 && cfg != nil {
		opts.TimeoutMs = cfg.DefaultTimeoutMs
	}

	gen := generator.NewGenerator()
	puzzle, err := gen.GeneratePuzzle(categories, target, opts)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"puzzle_id":  puzzle.PuzzleID,
		"categories": puzzle.Categories,
		"clues":      puzzle.Clues,
		"proof":      puzzle.Proof,
		"target":     puzzle.Target,
	}

	if req.Persist && repo != nil {
		rec := &store.Record{ID: puzzle.PuzzleID, Puzzle: *puzzle}
		if err := repo.Store(c.Request.Context(), rec); err != nil {
			log.Printf("ERROR [generate]: failed to persist puzzle: %v", err)
		} else {
			resp["id"] = rec.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}

type boundsRequest struct {
	Categories []categoryRequest `json:"categories" binding:"required"`
	Target     targetRequest     `json:"target" binding:"required"`
}

func boundsHandler(c *gin.Context) {
	var req boundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories := make([]core.Category, len(req.Categories))
	for i, cr := range req.Categories {
		categories[i] = cr.toCategory()
	}
	target := core.TargetFact{Category1: req.Target.Category1, Value1: req.Target.Value1, Category2: req.Target.Category2}

	gen := generator.NewGenerator()
	bounds, err := gen.GetClueCountBounds(categories, target)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"min": bounds.Min, "max": bounds.Max})
}

type solverApplyRequest struct {
	Categories []categoryRequest `json:"categories" binding:"required"`
	Clues      []clue.Clue       `json:"clues"`
}

func solverApplyHandler(c *gin.Context) {
	var req solverApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories := make([]core.Category, len(req.Categories))
	for i, cr := range req.Categories {
		categories[i] = cr.toCategory()
	}

	g, err := grid.NewGrid(categories)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s := solver.NewSolver()
	total := s.ApplyAll(g, req.Clues)

	c.JSON(http.StatusOK, gin.H{
		"deductions": total,
		"solved":     g.IsSolved(),
		"stats":      g.Stats(),
	})
}

func getPuzzleHandler(c *gin.Context) {
	if repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}
	id := c.Param("id")
	rec, err := repo.Get(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
