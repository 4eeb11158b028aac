// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/api"
)

// DefaultWorkers is used when Run is given a non-positive worker count.
const DefaultWorkers = 4

const tracerName = "github.com/katalvlaran/linsys/batch"

// ErrNoProblems is returned for a file without problems.
var ErrNoProblems = errors.New("batch: no problems")

// Problem is one named request.
type Problem struct {
	Name        string `yaml:"name"`
	api.Request `yaml:",inline"`
}

// File is the top-level document.
type File struct {
	Problems []Problem `yaml:"problems"`
}

// Outcome is the result of one problem. Exactly one of Response and Err is
// set.
type Outcome struct {
	Name     string
	Response *api.Response
	Err      error
	Duration time.Duration
}

// Load decodes a problem file from r. Unknown keys are rejected.
func Load(r io.Reader) ([]Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("batch: decode: %w", err)
	}
	if len(f.Problems) == 0 {
		return nil, ErrNoProblems
	}
	for i := range f.Problems {
		if f.Problems[i].Name == "" {
			f.Problems[i].Name = fmt.Sprintf("problem-%d", i+1)
		}
	}

	return f.Problems, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Run solves problems with at most workers concurrent solves. Outcomes are
// returned in input order. When ctx is cancelled no new problem is started;
// the unstarted ones carry ctx.Err() and Run returns it as well.
//
// Each call gets a fresh run ID, attached to every log entry and to the
// spans of the run.
func Run(ctx context.Context, problems []Problem, workers int, logger *logrus.Logger, d api.Defaults) ([]Outcome, error) {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	runID := uuid.NewString()
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "batch.Run", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int("problems", len(problems)),
		attribute.Int("workers", workers),
	))
	defer span.End()

	out := make([]Outcome, len(problems))
	for i, p := range problems {
		out[i].Name = p.Name
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range problems {
		i := i
		if gctx.Err() != nil {
			out[i].Err = gctx.Err()
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			_, ps := tracer.Start(gctx, "batch.problem", trace.WithAttributes(
				attribute.String("problem", problems[i].Name),
				attribute.String("method", problems[i].Method),
			))
			defer ps.End()

			start := time.Now()
			resp, err := api.Solve(problems[i].Request, d)
			out[i].Response, out[i].Err, out[i].Duration = resp, err, time.Since(start)

			entry := logger.WithFields(logrus.Fields{
				"run_id":   runID,
				"problem":  problems[i].Name,
				"method":   problems[i].Method,
				"duration": out[i].Duration,
			})
			if err != nil {
				ps.RecordError(err)
				ps.SetStatus(codes.Error, "solve failed")
				entry.WithError(err).Warn("problem failed")
			} else {
				entry.Debug("problem solved")
			}

			return nil
		})
	}
	_ = g.Wait()

	solved, failed := Summary(out)
	span.SetAttributes(attribute.Int("solved", solved), attribute.Int("failed", failed))
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	return out, nil
}

// Summary counts outcomes.
func Summary(outcomes []Outcome) (solved, failed int) {
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		} else {
			solved++
		}
	}

	return solved, failed
}
