package experiments

import (
	"context"
	"fmt"

	"owner/board"
	"owner/config"
	"owner/experiments/metrics"
	"owner/ownermap"
	"owner/playout"

	"github.com/rs/zerolog/log"
)

const Name = "ownership"

// Run plays out the configured position once per goroutine count, logs the
// ownership picture of every run and stores the records under cfg.Output.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	start, err := NewBoard(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up board: %w", err)
	}

	counts := cfg.GoroutineCounts()
	runRecords := []metrics.RunRecord{}
	var last *ownermap.Map

	log.Info().Msgf("starting %s experiment on a %dx%d board...", Name, start.Size(), start.Size())

	for i, goroutines := range counts {
		log.Info().Msgf("starting run %d of %d with %d goroutines...", i+1, len(counts), goroutines)

		m, metric, err := createRunner(cfg, goroutines).Run(ctx, start)
		if err != nil {
			return fmt.Errorf("run %d failed: %w", i+1, err)
		}
		if m.Playouts() == 0 {
			log.Warn().Msgf("run %d completed no playouts, skipping", i+1)
			continue
		}

		report(start, m)
		label := ownermap.ScoreLabel(start, m)
		runRecords = append(runRecords, metrics.RunRecord{
			ID:        i + 1,
			Score:     ownermap.Score(start, m),
			Label:     label,
			RunMetric: metric,
		})
		last = m

		log.Info().Msgf("completed run %d of %d: %d playouts in %s, score %s", i+1, len(counts), metric.Playouts, metric.Duration, label)
	}

	log.Info().Msgf("completed %s experiment", Name)

	writer, err := metrics.NewWriter(cfg.Output, Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteRunRecords(runRecords); err != nil {
		return fmt.Errorf("failed to store run records: %w", err)
	}
	log.Info().Msg("stored run records")

	if last != nil {
		if err := writer.WritePointRecords(PointRecords(start, last)); err != nil {
			return fmt.Errorf("failed to store ownership records: %w", err)
		}
		log.Info().Msg("stored ownership records")
	}

	log.Info().Msgf("results written to %s", writer.Dir())
	return nil
}

func NewBoard(cfg *config.Config) (*board.Grid, error) {
	var start *board.Grid
	if cfg.Position != "" {
		g, err := board.Parse(cfg.Position)
		if err != nil {
			return nil, err
		}
		start = g
	} else {
		start = board.NewGrid(cfg.BoardSize)
	}
	return start.WithKomi(cfg.Komi).WithHandicap(cfg.Handicap), nil
}

func PointRecords(b *board.Grid, m *ownermap.Map) []metrics.PointRecord {
	records := make([]metrics.PointRecord, 0, b.NumPoints())
	for i := 0; i < b.NumPoints(); i++ {
		p := board.Point(i)
		x, y := b.Coord(p)
		records = append(records, metrics.PointRecord{
			Point:     i,
			X:         x,
			Y:         y,
			None:      m.Count(p, board.None),
			Black:     m.Count(p, board.Black),
			White:     m.Count(p, board.White),
			Estimate:  m.Estimate(p),
			Judgement: m.Judge(p, ownermap.GroupThreshold).String(),
			Symbol:    string(ownermap.Symbol(m, p)),
		})
	}
	return records
}

func report(b *board.Grid, m *ownermap.Map) {
	log.Info().Msgf("ownership after %d playouts:\n%s", m.Playouts(), ownermap.Render(b, m))

	judgement := ownermap.NewGroupJudgement(b.NumPoints(), ownermap.GroupThreshold)
	ownermap.JudgeGroups(b, m, judgement)
	for _, status := range []ownermap.GroupStatus{ownermap.Alive, ownermap.Dead, ownermap.StatusUnknown} {
		q := &board.MoveQueue{}
		ownermap.GroupsOfStatus(b, judgement, status, q)
		if q.Len() == 0 {
			continue
		}
		coords := make([]string, 0, q.Len())
		for _, p := range q.Points() {
			x, y := b.Coord(p)
			coords = append(coords, fmt.Sprintf("(%d,%d)", x, y))
		}
		log.Info().Msgf("%d %s groups: %v", q.Len(), status, coords)
	}
}

func createRunner(cfg *config.Config, goroutines int) *playout.Runner {
	options := []playout.Option{playout.WithMetrics()}

	if cfg.Playouts > 0 {
		options = append(options, playout.WithPlayouts(cfg.Playouts))
	} else {
		options = append(options, playout.WithDuration(cfg.Duration))
	}
	if cfg.Seed != 0 {
		options = append(options, playout.WithSeed(cfg.Seed))
	}

	return playout.NewRunner(goroutines, options...)
}
