package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/hiscore/leaderboard"
)

// Computer produces one round of leaderboards. *leaderboard.Service
// implements it.
type Computer interface {
	Compute() (*leaderboard.Result, error)
}

// Run computes rounds independent results, at most parallelism at a time.
// Results come back in round order. The first error cancels the rounds that
// haven't started yet and is returned.
func Run(ctx context.Context, c Computer, rounds, parallelism int) ([]*leaderboard.Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	results := make([]*leaderboard.Result, rounds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	tstart := time.Now()
	for _, round := range lo.Range(rounds) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.Compute()
			if err != nil {
				log.Err(err).Int("round", round).Msg("round failed")
				return err
			}
			log.Debug().Int("round", round).Str("rack", res.Rack).
				Int("buildable", len(res.RackBoard)).Msg("round done")
			results[round] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("rounds", rounds).Dur("elapsed", time.Since(tstart)).Msg("all rounds done")
	return results, nil
}
