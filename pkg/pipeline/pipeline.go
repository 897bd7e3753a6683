// Package pipeline provides the core calculation pipeline for the conveyor
// console.
//
// This package implements the complete normalize -> resolve -> calculate ->
// validate flow that every entry point (CLI, fixtures harness, embedding
// callers) runs through. Centralizing it guarantees identical behavior and
// identical findings no matter who initiates a calculation.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Normalize: migrate raw input to the canonical schema
//  2. Resolve: reconcile the active geometry mode into derived geometry
//  3. Calculate: run the dependency-ordered formula pipeline
//  4. Validate: evaluate the rule engine and partition findings
//
// The stages themselves are pure; the Runner adds the impure conveniences
// around them (result caching, logging, metadata stamping).
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Run(ctx, pipeline.Request{Inputs: raw})
//	if err != nil {
//	    return err
//	}
//	if !result.Success {
//	    // result.Errors holds the blocking findings
//	}
package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/cache"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/formula"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/geometry"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/migrate"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/observability"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/validate"
)

// ModelKey identifies the calculation model this core implements.
const ModelKey = "sliderbed_conveyor"

// Request is one calculation invocation.
type Request struct {
	// Inputs is the raw, possibly legacy-shaped input.
	Inputs schema.RawInput `json:"inputs"`

	// Parameters optionally overrides engineering constants for this call.
	Parameters *schema.Overrides `json:"parameters,omitempty"`

	// ModelVersionID tags the result; a fresh ID is generated when empty.
	ModelVersionID string `json:"model_version_id,omitempty"`

	// Refresh bypasses the result cache read (the result is still stored).
	Refresh bool `json:"refresh,omitempty"`
}

// Metadata describes one calculation run.
type Metadata struct {
	ModelKey       string    `json:"model_key"`
	ModelVersionID string    `json:"model_version_id"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// Result is the complete outcome of one calculation.
//
// Outputs are always present, even when Success is false, so callers can
// display diagnostics for failing configurations. Errors holds only
// error-severity findings; Warnings holds warning and info findings
// regardless of success.
type Result struct {
	Success  bool             `json:"success"`
	Outputs  *schema.Output   `json:"outputs,omitempty"`
	Errors   []schema.Finding `json:"errors,omitempty"`
	Warnings []schema.Finding `json:"warnings,omitempty"`
	Metadata Metadata         `json:"metadata"`

	// Cached reports whether this result was served from the cache. It is
	// informational and not part of the serialized result.
	Cached bool `json:"-"`
}

// Runner executes calculations with caching and logging around the pure
// core. A Runner is safe for concurrent use: it holds no mutable state
// beyond the cache backend.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables memoization; a nil
// logger discards log output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Run executes the full pipeline for one request. The only error return is
// context cancellation; every domain problem is reported through the
// Result's findings instead.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	observability.Calc().OnNormalizeStart(ctx, ModelKey)
	canonical := migrate.Normalize(req.Inputs)
	observability.Calc().OnNormalizeComplete(ctx, ModelKey, time.Since(start))

	params := req.Parameters.Apply(schema.DefaultParameters())
	key := cache.ResultKey(ModelKey, canonical, params)

	if !req.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			cached.Metadata = r.metadata(req)
			cached.Cached = true
			return cached, nil
		}
	}

	result := Evaluate(ctx, canonical, params)
	result.Metadata = r.metadata(req)
	r.store(ctx, key, result)
	return result, nil
}

// Evaluate runs the pure stages: resolve, calculate, validate. It is
// deterministic and side-effect-free apart from observability events;
// callers that need neither caching nor metadata can use it directly.
func Evaluate(ctx context.Context, canonical schema.CanonicalInput, params schema.Parameters) Result {
	start := time.Now()
	observability.Calc().OnCalculateStart(ctx, ModelKey)

	geo := geometry.Resolve(canonical)
	out := formula.Calculate(canonical, params, geo)

	findings := validate.Validate(canonical, params, out)
	if gf := validate.GeometryFinding(geo); gf != nil {
		findings = append([]schema.Finding{*gf}, findings...)
	}
	errs, warnings := validate.Partition(findings)

	observability.Calc().OnCalculateComplete(ctx, ModelKey, len(errs), time.Since(start))
	observability.Calc().OnValidateComplete(ctx, ModelKey, len(errs), len(warnings))

	return Result{
		Success:  len(errs) == 0,
		Outputs:  &out,
		Errors:   errs,
		Warnings: warnings,
	}
}

// RunCalculation is the convenience entry point for embedding callers that
// do not need caching: one request in, one result out.
func RunCalculation(ctx context.Context, req Request) (Result, error) {
	return NewRunner(nil, nil).Run(ctx, req)
}

func (r *Runner) metadata(req Request) Metadata {
	id := req.ModelVersionID
	if id == "" {
		id = uuid.NewString()
	}
	return Metadata{
		ModelKey:       ModelKey,
		ModelVersionID: id,
		CalculatedAt:   time.Now().UTC(),
	}
}

// lookup consults the result cache. Backend failures degrade to a miss.
func (r *Runner) lookup(ctx context.Context, key string) (Result, bool) {
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("result cache read failed", "err", err)
		return Result{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "result")
		return Result{}, false
	}
	var cached Result
	if err := json.Unmarshal(data, &cached); err != nil {
		r.logger.Warn("result cache entry corrupt", "err", err)
		return Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, "result")
	r.logger.Debug("result cache hit", "key", key)
	return cached, true
}

// store writes a result to the cache on a best-effort basis.
func (r *Runner) store(ctx context.Context, key string, result Result) {
	data, err := json.Marshal(result)
	if err != nil {
		r.logger.Warn("result not cacheable", "err", err)
		return
	}
	if err := r.cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.logger.Warn("result cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "result", len(data))
}
