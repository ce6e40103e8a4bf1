// Package pipeline provides the core massing pipeline.
//
// This package implements the complete solve → render pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Solve: Classify each room, derive module-snapped dimensions, then
//     optimize the batch so rooms share wall lengths
//  2. Render: Generate output in various formats (JSON, CSV, HTML)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rooms: []program.RoomInput{
//	        {Name: "Living Room", AreaM2: 35.5},
//	        {Name: "Kitchen", AreaM2: 18.0},
//	    },
//	    Formats: []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Artifacts["json"]
//
// Run individual stages:
//
//	// Solve only
//	solved, err := runner.Solve(ctx, opts)
//
//	// Render with existing records
//	artifacts, err := runner.Render(ctx, solved, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gduarte/massing/pkg/cache"
	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
	"github.com/gduarte/massing/pkg/program"
	"github.com/gduarte/massing/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultModuleCM is the construction module every dimension snaps to.
	// 150cm divides evenly into common plan grids and matches standard
	// drywall and formwork increments.
	DefaultModuleCM = 150.0

	// DefaultHeightCM is the floor-to-floor height stamped on records.
	DefaultHeightCM = 300.0

	// DefaultMaxPasses bounds the optimization sweeps. This mirrors
	// massing.DefaultMaxPasses so zero-valued options behave the same
	// whether they reach the optimizer directly or through the pipeline.
	DefaultMaxPasses = massing.DefaultMaxPasses

	// DefaultAreaTolerance is the per-room area drift the optimizer may
	// introduce, relative to the room's target area.
	DefaultAreaTolerance = massing.DefaultAreaTolerance
)

// Format constants for output formats.
const (
	FormatJSON = render.FormatJSON
	FormatCSV  = render.FormatCSV
	FormatHTML = render.FormatHTML
)

// ValidFormats is the set of supported output formats.
var ValidFormats = render.ValidFormats

// MaxPassesCeiling caps optimization passes. Past a handful of sweeps the
// fixed point is long since reached.
const MaxPassesCeiling = 10

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the massing pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Rooms         []program.RoomInput `json:"rooms"`
	ModuleCM      float64             `json:"module_cm,omitempty"`
	HeightCM      float64             `json:"height_cm,omitempty"`
	AreaTolerance float64             `json:"area_tolerance,omitempty"`
	MaxPasses     int                 `json:"max_passes,omitempty"`
	SkipOptimize  bool                `json:"skip_optimize,omitempty"` // Keep raw solver dimensions (default: false = optimize)
	Refresh       bool                `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solved holds the records, warnings and batch statistics.
	Solved *Solved

	// RecordsHash is the content hash of the solved batch.
	RecordsHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Solved is the output of the solve stage. It serializes as a unit so the
// whole stage can round-trip through the cache.
type Solved struct {
	Records  []massing.Record `json:"records"`
	Warnings []errors.Warning `json:"warnings,omitempty"`

	// Dropped counts circulation rooms excluded from Records.
	Dropped int `json:"dropped_circulation"`

	Optimize massing.OptimizeStats `json:"optimize"`
	Batch    massing.BatchStats    `json:"batch"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount  int
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solved batch came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, csv, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve checks required fields for the solve stage.
func (o *Options) ValidateForSolve() error {
	if len(o.Rooms) == 0 {
		return fmt.Errorf("at least one room is required")
	}

	// Solve defaults
	if o.ModuleCM == 0 {
		o.ModuleCM = DefaultModuleCM
	}
	if o.HeightCM == 0 {
		o.HeightCM = DefaultHeightCM
	}
	if o.AreaTolerance == 0 {
		o.AreaTolerance = DefaultAreaTolerance
	}
	if o.MaxPasses == 0 {
		o.MaxPasses = DefaultMaxPasses
	}

	if err := errors.ValidateModule(o.ModuleCM); err != nil {
		return err
	}
	if err := errors.ValidateHeight(o.HeightCM); err != nil {
		return err
	}
	if err := errors.ValidateTolerance(o.AreaTolerance); err != nil {
		return err
	}
	if o.MaxPasses < 0 || o.MaxPasses > MaxPassesCeiling {
		return fmt.Errorf("max_passes %d must be in 1-%d", o.MaxPasses, MaxPassesCeiling)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// EffectivePasses is the optimization sweep count after SkipOptimize.
func (o *Options) EffectivePasses() int {
	if o.SkipOptimize {
		return 0
	}
	return o.MaxPasses
}

// RecordsKeyOpts returns cache key options for the solve stage.
func (o *Options) RecordsKeyOpts() cache.RecordsKeyOpts {
	return cache.RecordsKeyOpts{
		ModuleCM:      o.ModuleCM,
		HeightCM:      o.HeightCM,
		AreaTolerance: o.AreaTolerance,
		MaxPasses:     o.EffectivePasses(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}
