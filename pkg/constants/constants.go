package constants

// Generator defaults
const (
	StandardModeCap       = 100
	DefaultBacktrackMs    = 5000
	BoundsIterations      = 10
	MinCategoryCount      = 2
)

// API version
const APIVersion = "0.1.0"

// Default ports
const DefaultPort = "8080"

// Default paths
const DefaultDBPath = "logicgrid.db"

// Date format
const DateFormat = "2006-01-02"
