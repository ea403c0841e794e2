package runner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/hiscore/leaderboard"
	"github.com/domino14/hiscore/lexicon"
	"github.com/domino14/hiscore/rackgen"
	"github.com/domino14/hiscore/tilemapping"
)

type countingComputer struct {
	calls  atomic.Int32
	failOn int32
}

func (c *countingComputer) Compute() (*leaderboard.Result, error) {
	n := c.calls.Add(1)
	if n == c.failOn {
		return nil, errors.New("boom")
	}
	return &leaderboard.Result{Rack: fmt.Sprintf("rack%d", n)}, nil
}

func TestRunWithService(t *testing.T) {
	is := is.New(t)
	lv, err := tilemapping.NewLetterValues(map[rune]int{'c': 3, 'a': 1, 't': 1, 'o': 1, 'd': 2, 'g': 2})
	is.NoErr(err)
	dict := lexicon.NewDictionary("small", []string{"cat", "act", "dog", "catdog"})
	svc := leaderboard.NewService(dict, lv, rackgen.Fixed("catdogx"))

	results, err := Run(context.Background(), svc, 5, 3)
	is.NoErr(err)
	is.Equal(len(results), 5)
	for _, r := range results {
		is.Equal(r.Rack, "catdogx")
		is.Equal(r.WordList.Words(), []string{"catdog", "dog", "act", "cat"})
	}
}

func TestRunReturnsEveryRound(t *testing.T) {
	is := is.New(t)
	c := &countingComputer{}
	results, err := Run(context.Background(), c, 10, 4)
	is.NoErr(err)
	is.Equal(int(c.calls.Load()), 10)
	for _, r := range results {
		is.True(r != nil)
	}
}

func TestRunStopsOnError(t *testing.T) {
	is := is.New(t)
	c := &countingComputer{failOn: 2}
	results, err := Run(context.Background(), c, 10, 1)
	is.True(err != nil)
	is.True(results == nil)
	// serial execution: nothing runs after the failing round
	is.True(c.calls.Load() <= 3)
}

func TestRunCanceledContext(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &countingComputer{}
	_, err := Run(ctx, c, 3, 1)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(int(c.calls.Load()), 0)
}
