// Package batch evaluates many scenarios concurrently.
package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/scenario"
	"github.com/vovakirdan/discs/internal/storage"
)

// Recorder persists finished runs. *storage.Store satisfies it.
type Recorder interface {
	SaveRun(run storage.Run) (string, error)
}

// Options configures a batch run.
type Options struct {
	Workers  int
	Epsilon  float64
	Logger   *log.Logger
	Recorder Recorder // Optional
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario   scenario.Scenario
	Report     geom.Report
	Duration   time.Duration
	Mismatches []string
	RunID      string // Set when the run was recorded
	Err        error  // Malformed disks; the report is empty
}

// OK reports whether the scenario was evaluated and met its expectations.
func (r Result) OK() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// Summary counts batch outcomes.
type Summary struct {
	Total     int
	Found     int
	Failed    int // Expectation mismatches
	Invalid   int // Scenarios that could not be evaluated
	TotalTime time.Duration
	MaxTime   time.Duration
	SlowestID string
}

// Run evaluates every scenario and returns the results in input order.
// Invalid scenarios produce a Result with Err set and do not stop the batch.
// Cancelling ctx or a recorder failure stops the batch with an error.
func Run(ctx context.Context, scenarios []scenario.Scenario, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	eps := opts.Epsilon
	if eps < 0 {
		eps = geom.DefaultEpsilon
	}
	finder := geom.NewFinder(eps)

	results := make([]Result, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, sc := range scenarios {
		if gctx.Err() != nil {
			break
		}
		i, sc := i, sc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := evaluate(finder, sc)
			if res.Err != nil {
				logger.Warn("invalid scenario", "id", sc.ID, "err", res.Err)
				results[i] = res
				return nil
			}

			logger.Debug("evaluated",
				"id", sc.ID,
				"disks", len(sc.Disks),
				"found", res.Report.Found,
				"duration", res.Duration,
			)
			for _, m := range res.Mismatches {
				logger.Warn("expectation mismatch", "id", sc.ID, "detail", m)
			}

			if opts.Recorder != nil {
				id, err := opts.Recorder.SaveRun(ToRun(res, eps))
				if err != nil {
					return fmt.Errorf("batch: record %s: %w", sc.ID, err)
				}
				res.RunID = id
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluate(finder geom.Finder, sc scenario.Scenario) Result {
	start := time.Now()
	report, err := finder.Explain(sc.Disks)
	res := Result{
		Scenario: sc,
		Duration: time.Since(start),
	}
	if err != nil {
		res.Err = err
		return res
	}
	res.Report = report
	res.Mismatches = sc.Check(report)
	return res
}

// ToRun converts a result into a storage record.
func ToRun(res Result, eps float64) storage.Run {
	return storage.Run{
		ScenarioID: res.Scenario.ID,
		DiskCount:  len(res.Scenario.Disks),
		Found:      res.Report.Found,
		X:          res.Report.Witness.X,
		Y:          res.Report.Witness.Y,
		Epsilon:    eps,
		Duration:   res.Duration,
	}
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Invalid++
			continue
		case len(r.Mismatches) > 0:
			s.Failed++
		}
		if r.Report.Found {
			s.Found++
		}
		s.TotalTime += r.Duration
		if r.Duration > s.MaxTime || s.SlowestID == "" {
			s.MaxTime = r.Duration
			s.SlowestID = r.Scenario.ID
		}
	}
	return s
}
