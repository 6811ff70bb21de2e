package app

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/semaphore"

	"retailedge/domain/core"
	"retailedge/domain/retail"
	"retailedge/domain/table"
	"retailedge/internal/assemble"
	"retailedge/internal/classify"
	"retailedge/internal/errors"
	"retailedge/internal/metrics"
	"retailedge/internal/normalize"
	"retailedge/internal/resolver"
	"retailedge/ports"
)

// AnalysisService runs the full analysis cycle for one project: fetch the
// source file, decode it, run the pipeline, persist the outcome. The
// pipeline itself is pure and request-scoped; the service owns all I/O
// collaborators and bounds concurrent requests with a weighted semaphore
// so parallel invocations stay independent and capped.
type AnalysisService struct {
	fetcher    ports.FileFetcher
	decoder    ports.TableDecoder
	repo       ports.ProjectRepository
	calculator *metrics.Calculator
	classifier *classify.Classifier
	rules      []resolver.RoleRule
	sem        *semaphore.Weighted
}

// NewAnalysisService creates a service with the default policy tables.
func NewAnalysisService(
	fetcher ports.FileFetcher,
	decoder ports.TableDecoder,
	repo ports.ProjectRepository,
	maxConcurrent int64,
) *AnalysisService {
	return &AnalysisService{
		fetcher:    fetcher,
		decoder:    decoder,
		repo:       repo,
		calculator: metrics.NewCalculator(metrics.DefaultABCPolicy()),
		classifier: classify.NewClassifier(),
		rules:      resolver.DefaultRules,
		sem:        semaphore.NewWeighted(maxConcurrent),
	}
}

// Run executes fetch -> decode -> analyze -> persist for one project and
// returns the payload to hand back to the caller. Failures at any stage
// produce the error envelope and a failed status write; the caller always
// receives a structurally complete response.
func (s *AnalysisService) Run(ctx context.Context, projectID, fileURL string) (*assemble.ResultPayload, *assemble.ErrorPayload) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, s.fail(ctx, projectID, errors.Wrap(err, "analysis queue unavailable"))
	}
	defer s.sem.Release(1)

	startTime := time.Now()

	data, err := s.fetcher.Fetch(ctx, fileURL)
	if err != nil {
		return nil, s.fail(ctx, projectID, errors.FetchFailed(fileURL, err))
	}

	t, err := s.decoder.Decode(data, fileURL)
	if err != nil {
		return nil, s.fail(ctx, projectID, errors.DecodeFailed(err))
	}

	analysis, err := s.AnalyzeTable(t)
	if err != nil {
		return nil, s.fail(ctx, projectID, err)
	}

	result := assemble.Assemble(analysis)

	if err := s.repo.MarkCompleted(ctx, projectID, result); err != nil {
		log.Printf("[AnalysisService] Failed to persist result for project %s: %v", projectID, err)
		return nil, assemble.AssembleError(errors.DatabaseError("could not store analysis result"))
	}

	log.Printf("[AnalysisService] Project %s analyzed: %d rows, %d categories in %.2fms",
		projectID, len(result.RawData), len(result.CategoryMacro),
		float64(time.Since(startTime).Nanoseconds())/1e6)

	return result, nil
}

// fail records the failure against the project and shapes the error
// envelope. A persistence error during failure handling is logged but not
// surfaced over the original error.
func (s *AnalysisService) fail(ctx context.Context, projectID string, cause error) *assemble.ErrorPayload {
	log.Printf("[AnalysisService] Project %s failed: %v", projectID, cause)
	if err := s.repo.MarkFailed(ctx, projectID, cause.Error()); err != nil {
		log.Printf("[AnalysisService] Could not record failure for project %s: %v", projectID, err)
	}
	return assemble.AssembleError(cause)
}

// AnalyzeTable runs the pure pipeline: resolve columns, normalize series,
// compute metrics, classify rows. Data-quality gaps degrade to defaults;
// the only errors are structural contract violations (empty table, vanished
// column).
func (s *AnalysisService) AnalyzeTable(t *table.InputTable) (*retail.Analysis, error) {
	t = t.TrimHeaders()
	if t.IsEmpty() {
		return nil, core.ErrEmptyTable
	}

	roles := resolver.Resolve(t.Headers, s.rules)
	if gaps := roles.Gaps(); len(gaps) > 0 {
		log.Printf("[AnalysisService] Unresolved roles (defaults applied): %v", gaps)
	}

	rows, err := s.normalizeRows(t, roles)
	if err != nil {
		return nil, err
	}

	derived := s.calculator.ComputeRows(rows)
	s.classifier.Apply(derived)

	totalSales := s.calculator.TotalSales(rows)
	salesProfile, marginProfile := metrics.ProfileRows(derived)

	return &retail.Analysis{
		TotalSales: totalSales,
		TotalUnits: s.calculator.TotalUnits(rows),
		Rows:       derived,
		Categories: s.calculator.AggregateCategories(rows, totalSales),
		Diag: retail.Diagnostics{
			UnresolvedRoles: roles.Gaps(),
			SalesProfile:    salesProfile,
			MarginProfile:   marginProfile,
		},
	}, nil
}

// normalizeRows coerces the resolved columns into canonical per-row records.
func (s *AnalysisService) normalizeRows(t *table.InputTable, roles retail.ColumnRoleMap) ([]retail.NormalizedRow, error) {
	numeric := func(role retail.Role) ([]float64, error) {
		col, ok := roles.Column(role)
		return normalize.NumericSeries(t, col, ok)
	}
	text := func(role retail.Role, sentinel string) ([]string, error) {
		col, ok := roles.Column(role)
		return normalize.TextSeries(t, col, ok, sentinel)
	}

	sales, err := numeric(retail.RoleSalesValue)
	if err != nil {
		return nil, err
	}
	units, err := numeric(retail.RoleUnitVolume)
	if err != nil {
		return nil, err
	}
	price, err := numeric(retail.RoleRetailPriceExc)
	if err != nil {
		return nil, err
	}
	cost, err := numeric(retail.RoleCostPrice)
	if err != nil {
		return nil, err
	}
	sku, err := text(retail.RoleIdentifier, retail.DefaultText)
	if err != nil {
		return nil, err
	}
	description, err := text(retail.RoleDescription, retail.DefaultText)
	if err != nil {
		return nil, err
	}
	category, err := text(retail.RoleCategory, retail.DefaultCategory)
	if err != nil {
		return nil, err
	}
	brand, err := text(retail.RoleBrand, retail.DefaultText)
	if err != nil {
		return nil, err
	}

	rows := make([]retail.NormalizedRow, len(t.Rows))
	for i := range t.Rows {
		rows[i] = retail.NormalizedRow{
			SKU:            sku[i],
			Description:    description[i],
			Category:       category[i],
			Brand:          brand[i],
			SalesValue:     sales[i],
			UnitVolume:     units[i],
			RetailPriceExc: price[i],
			CostPrice:      cost[i],
		}
	}
	return rows, nil
}
