package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seqqc/seqqc/internal/fastqc"
	"github.com/seqqc/seqqc/internal/model"
	"github.com/seqqc/seqqc/internal/source"
)

// DefaultConcurrency is the parse concurrency used when none is configured.
const DefaultConcurrency = 8

// Failure records one resource that could not be parsed in partial mode.
type Failure struct {
	// Index is the resource's position in the input list.
	Index int

	// Source identifies the failing resource.
	Source string

	// Err is the parse or read error.
	Err error
}

// Result is the outcome of a partial-mode batch: the reports that parsed,
// in input order, plus every failure keyed by input index.
type Result struct {
	// Reports holds the successfully parsed reports in input order.
	Reports model.Collection

	// Failures holds one entry per failed resource, ordered by index.
	Failures []Failure
}

// Processor parses many FastQC resources concurrently.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each resource gets its own goroutine and its own Source handle, so no
// file descriptor is shared between concurrent parses.
type Processor struct {
	// concurrency is the maximum number of concurrent parses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// open resolves a path to a line source. Overridable in tests.
	open func(path string) source.Source
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of concurrent parses.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithSourceOpener overrides how paths are resolved to line sources.
// Used by tests to substitute in-memory sources.
func WithSourceOpener(open func(path string) source.Source) Option {
	return func(p *Processor) {
		p.open = open
	}
}

// New creates a Processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		concurrency: DefaultConcurrency,
		open:        source.For,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// parseOne runs the full single-report pipeline for one resource:
// read lines, load the optional summary side-channel, parse.
func (p *Processor) parseOne(path string) (*model.Report, error) {
	src := p.open(path)

	lines, err := src.ReadLines()
	if err != nil {
		return nil, err
	}
	summary, err := source.LoadSummary(src)
	if err != nil {
		return nil, err
	}
	return fastqc.Parse(src.Path(), lines, summary)
}

// Process parses all resources and returns the collection in input order.
// The first failing resource aborts the whole batch; the returned error
// names it. No partial collection is returned on failure.
func (p *Processor) Process(ctx context.Context, paths []string) (model.Collection, error) {
	p.logger.Info("starting batch parse",
		"total_resources", len(paths),
		"concurrency", p.concurrency,
	)
	startTime := time.Now()

	// Pre-allocate to keep input order regardless of completion order.
	reports := make(model.Collection, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := p.parseOne(path)
			if err != nil {
				p.logger.Error("parse failed", "resource", path, "error", err)
				return fmt.Errorf("resource %d (%s): %w", i, path, err)
			}

			mu.Lock()
			reports[i] = report
			mu.Unlock()

			p.logger.Debug("parse completed", "resource", path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Info("batch parse complete",
		"total_resources", len(paths),
		"elapsed", time.Since(startTime),
	)
	return reports, nil
}

// ProcessPartial parses all resources, recording failures per input index
// instead of aborting. Successful reports keep their relative input order.
// The returned error is non-nil only when the batch itself was cancelled.
func (p *Processor) ProcessPartial(ctx context.Context, paths []string) (*Result, error) {
	p.logger.Info("starting partial batch parse",
		"total_resources", len(paths),
		"concurrency", p.concurrency,
	)

	parsed := make(model.Collection, len(paths))
	var (
		mu       sync.Mutex
		failures []Failure
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := p.parseOne(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Warn("parse failed", "resource", path, "error", err)
				failures = append(failures, Failure{Index: i, Source: path, Err: err})
				return nil
			}
			parsed[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Failures: failures}
	sort.Slice(result.Failures, func(a, b int) bool {
		return result.Failures[a].Index < result.Failures[b].Index
	})
	for _, report := range parsed {
		if report != nil {
			result.Reports = append(result.Reports, report)
		}
	}

	p.logger.Info("partial batch parse complete",
		"succeeded", len(result.Reports),
		"failed", len(result.Failures),
	)
	return result, nil
}
