// Package app implements the application layer for quarry.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
	"go.quarry.build/quarry/internal/engine/backend"
)

// App represents the main application logic.
type App struct {
	planLoader ports.PlanLoader
	factory    *backend.Factory
	store      ports.ContentStore
	cache      ports.ActionCache
	log        ports.Logger
	telemetry  ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.PlanLoader,
	factory *backend.Factory,
	store ports.ContentStore,
	cache ports.ActionCache,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		planLoader: loader,
		factory:    factory,
		store:      store,
		cache:      cache,
		log:        log,
		telemetry:  telemetry,
	}
}

// Ingest replays the outputs of a finished build through the caching
// backend. Every output a job declares in the plan must exist under fromDir;
// jobs are ingested concurrently and each job finalizes on its own.
func (a *App) Ingest(ctx context.Context, planPath, fromDir string) error {
	plan, err := a.planLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	be, err := a.factory.New(plan)
	if err != nil {
		return zerr.Wrap(err, "failed to construct backend")
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range plan.Jobs {
		job := &plan.Jobs[i]
		g.Go(func() error {
			vctx, vertex := a.telemetry.Record(gctx, fmt.Sprintf("ingest job %d", job.Index))
			err := a.ingestJob(vctx, be, job, fromDir)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(err, "job", job.Index)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.log.Info("plan ingested", "jobs", len(plan.Jobs))
	return nil
}

// ingestJob streams each declared output of one job into the backend. The
// last Keep call completes the job and writes its cache entry.
func (a *App) ingestJob(ctx context.Context, be *backend.Backend, job *domain.Job, fromDir string) error {
	for _, kind := range job.DeclaredKinds() {
		path := job.Outputs[kind]

		data, err := os.ReadFile(filepath.Join(fromDir, path))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read output file"), "path", path)
		}

		out, err := be.CreateOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Discard()
			return zerr.With(zerr.Wrap(err, "failed to stage output"), "path", path)
		}
		if err := out.Keep(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves one job's cache entry and prints its decoded record.
func (a *App) Lookup(ctx context.Context, planPath string, jobIndex int, w io.Writer) error {
	plan, err := a.planLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}
	if jobIndex < 0 || jobIndex >= len(plan.Jobs) {
		return zerr.With(domain.ErrInvalidPlan, "job", jobIndex)
	}

	key := backend.DeriveKey(plan.BaseKey, jobIndex)
	ref, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		return zerr.Wrap(err, "failed to read action cache")
	}
	if !ok {
		return zerr.With(domain.ErrEntryNotFound, "key", string(key))
	}

	data, err := a.store.Load(ctx, ref)
	if err != nil {
		return zerr.Wrap(err, "failed to load result record")
	}
	result, err := domain.DecodeResult(data)
	if err != nil {
		return zerr.Wrap(err, "failed to decode result record")
	}

	fmt.Fprintf(w, "key:    %s\n", key)
	fmt.Fprintf(w, "record: %s\n", ref)
	fmt.Fprintf(w, "schema: %s\n", result.Schema)
	for _, out := range result.Outputs {
		fmt.Fprintf(w, "  %-20s %s\n", out.Kind, out.Ref)
	}
	return nil
}

// Close releases the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
