// Package playout runs playouts on a pool of goroutines and gathers the
// ownership statistics of their final positions.
package playout

import (
	"context"
	"time"

	"owner/board"
	"owner/experiments/metrics"
	"owner/ownermap"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(r *Runner)

type Runner struct {
	goroutines int
	playouts   int
	duration   time.Duration
	seed       uint64
	playout    Playout
	metrics    metrics.Collector
}

func WithPlayouts(playouts int) Option {
	return func(r *Runner) {
		if playouts > 0 {
			r.playouts = playouts
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(r *Runner) {
		if duration > 0 {
			r.duration = duration
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

func WithPlayout(playout Playout) Option {
	return func(r *Runner) {
		if playout != nil {
			r.playout = playout
		}
	}
}

func WithMetrics() Option {
	return func(r *Runner) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRunner(goroutines int, options ...Option) *Runner {
	if goroutines <= 0 {
		goroutines = 1
	}
	r := &Runner{ // Default values
		goroutines: goroutines,
		seed:       uint64(time.Now().UnixNano()),
		playout:    RandomFill,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	if r.playouts <= 0 && r.duration <= 0 {
		panic("Must specify playouts or duration")
	}
	return r
}

// Run plays out start on every goroutine, each filling a private map, and
// merges the maps once all workers are done. The returned map is ready to be
// judged.
func (r *Runner) Run(ctx context.Context, start *board.Grid) (*ownermap.Map, metrics.RunMetric, error) {
	r.metrics.Start(r.goroutines)

	maps := make([]*ownermap.Map, r.goroutines)
	for i := range maps {
		maps[i] = ownermap.New(start.NumPoints())
	}

	var err error
	if r.playouts > 0 {
		err = r.iterate(ctx, start, maps)
	} else {
		err = r.countdown(ctx, start, maps)
	}
	if err != nil {
		return nil, metrics.RunMetric{}, err
	}

	result := ownermap.New(start.NumPoints())
	for i, m := range maps {
		log.Debug().Msgf("merging %d playouts from worker %d", m.Playouts(), i)
		result.Merge(m)
		r.metrics.AddMerge()
	}
	if result.Playouts() == 0 {
		log.Warn().Msg("no playouts completed, ownership cannot be judged")
	}

	return result, r.metrics.Complete(), nil
}

func (r *Runner) iterate(ctx context.Context, start *board.Grid, maps []*ownermap.Map) error {
	task := make(chan any, r.playouts)
	for i := 0; i < r.playouts; i++ {
		task <- nil
	}
	close(task)

	g, ctx := errgroup.WithContext(ctx)
	for i := range maps {
		m := maps[i]
		rng := rand.New(rand.NewSource(r.seed + uint64(i)))
		g.Go(func() error {
			for range task {
				if err := ctx.Err(); err != nil {
					return err
				}
				m.Fill(r.playout(start, rng))
				r.metrics.AddPlayout()
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) countdown(ctx context.Context, start *board.Grid, maps []*ownermap.Map) error {
	deadline, cancel := context.WithTimeout(ctx, r.duration)
	defer cancel()

	g := new(errgroup.Group)
	for i := range maps {
		m := maps[i]
		rng := rand.New(rand.NewSource(r.seed + uint64(i)))
		g.Go(func() error {
			for {
				select {
				case <-deadline.Done():
					return nil
				default:
					m.Fill(r.playout(start, rng))
					r.metrics.AddPlayout()
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// Running out of time is the normal way to stop; cancellation is not.
	return ctx.Err()
}
