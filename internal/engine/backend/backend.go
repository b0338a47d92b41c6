// Package backend implements the compilation-output caching backend: it
// intercepts the artifacts a build produces, persists them into a content
// store, and registers one deterministic result record per completed job in
// the action cache.
package backend

import (
	"context"

	"go.trai.ch/zerr"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
)

// Backend coordinates route lookup, staged writes, completeness checking,
// result encoding, key derivation, and the final cache write. The content
// store and action cache are borrowed for the backend's lifetime, never
// owned.
type Backend struct {
	store   ports.ContentStore
	cache   ports.ActionCache
	log     ports.Logger
	base    domain.BaseKey
	encoder resultEncoder
	routes  *routeTable
	jobs    []*jobState
}

// New builds a Backend for one build invocation. The route table and every
// job's declared kind set are fixed here; a duplicate output path across
// jobs fails construction.
func New(store ports.ContentStore, cache ports.ActionCache, log ports.Logger, plan *domain.Plan) (*Backend, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	routes, err := newRouteTable(plan)
	if err != nil {
		return nil, err
	}

	jobs := make([]*jobState, len(plan.Jobs))
	for i := range plan.Jobs {
		jobs[i] = newJobState(&plan.Jobs[i])
	}

	return &Backend{
		store:   store,
		cache:   cache,
		log:     log,
		base:    plan.BaseKey,
		encoder: resultEncoder{store: store, schema: plan.Schema},
		routes:  routes,
		jobs:    jobs,
	}, nil
}

// CreateOutput resolves path through the route table and returns a staged
// output file for it. Paths the plan never declared fail with
// domain.ErrRouteNotFound before any store or cache interaction.
func (b *Backend) CreateOutput(path string) (*OutputFile, error) {
	r, err := b.routes.lookup(path)
	if err != nil {
		return nil, err
	}
	return &OutputFile{backend: b, path: path, route: r}, nil
}

// storeArtifact persists one kept output and, when it completes its job,
// encodes the result and writes the cache entry. The store call happens
// before the job lock is taken; a store failure leaves the pending set
// untouched so a corrected retry can still complete the job.
func (b *Backend) storeArtifact(ctx context.Context, r route, data []byte) error {
	ref, err := b.store.Store(ctx, data)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to store output bytes"), "job", r.job), "kind", r.kind.String())
	}

	state := b.jobs[r.job]
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.insert(r.kind, ref) {
		return nil
	}
	if err := b.finalizeLocked(ctx, r.job, state); err != nil {
		return err
	}
	state.finalized = true
	return nil
}

// finalizeLocked runs with the job's lock held. Nothing commits partially:
// the cache entry is written only after the full record is built and stored,
// and any failure leaves the job open for a later corrected write.
func (b *Backend) finalizeLocked(ctx context.Context, jobIndex int, state *jobState) error {
	recordRef, err := b.encoder.encode(ctx, state.outputs)
	if err != nil {
		return err
	}

	key := DeriveKey(b.base, jobIndex)
	if err := b.cache.Put(ctx, key, recordRef); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write action cache entry"), "job", jobIndex)
	}

	b.log.Info("cache entry written",
		"job", jobIndex,
		"key", string(key),
		"record", string(recordRef),
	)
	return nil
}
