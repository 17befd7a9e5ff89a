package resolve

import (
	"context"
	"time"

	"github.com/hyperjump/tantei/internal/metrics"
	"github.com/hyperjump/tantei/internal/models"
	"github.com/hyperjump/tantei/internal/sparql"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Resolver runs the full aggregation pipeline: validator and expander fire
// concurrently per run, their outputs are reconciled, and the sequencer
// discards outputs of superseded runs.
type Resolver struct {
	validator *Validator
	expander  *Expander
	sequencer *Sequencer
	logger    *zap.Logger
}

// NewResolver creates a resolver with its own sequencer.
func NewResolver(querier Querier, builder *sparql.Builder, logger *zap.Logger) *Resolver {
	return &Resolver{
		validator: NewValidator(querier, builder),
		expander:  NewExpander(querier, builder, logger),
		sequencer: NewSequencer(),
		logger:    logger,
	}
}

// Resolve aggregates hits into a candidate list. The returned bool reports
// whether the output committed; false means a newer run started before this
// one finished, and the (nil) output must not be rendered.
func (r *Resolver) Resolve(ctx context.Context, hits []models.SearchHit) ([]models.Candidate, bool) {
	run := r.sequencer.Begin()
	metrics.ResolveRuns.Inc()
	start := time.Now()

	ranks := GroupRanks(hits)
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}

	var (
		persons map[string]bool
		members []models.MemberRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		persons = r.validator.Persons(gctx, ids)
		return nil
	})
	g.Go(func() error {
		members = r.expander.Expand(gctx, hits, ranks)
		return nil
	})
	_ = g.Wait()
	metrics.ResolveDuration.Observe(time.Since(start).Seconds())

	if run.Superseded() {
		metrics.ResolveSuperseded.Inc()
		r.logger.Debug("run superseded",
			zap.String("run_id", run.ID),
			zap.Uint64("seq", run.Seq),
		)
		return nil, false
	}

	list := Reconcile(hits, persons, members, ranks)
	r.logger.Debug("run committed",
		zap.String("run_id", run.ID),
		zap.Uint64("seq", run.Seq),
		zap.Int("direct", len(persons)),
		zap.Int("members", len(members)),
		zap.Int("candidates", len(list)),
	)
	return list, true
}
