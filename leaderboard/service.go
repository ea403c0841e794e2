package leaderboard

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/domino14/hiscore/lexicon"
	"github.com/domino14/hiscore/tilemapping"
)

// RackSource hands out a new rack every time it is called.
type RackSource interface {
	NextRack() (string, error)
}

// Snapshot is the read-only data a Service ranks words with.
type Snapshot struct {
	Dictionary *lexicon.Dictionary
	Values     *tilemapping.LetterValues
}

// Result is what a single computation produces.
type Result struct {
	WordList  Leaderboard `json:"high_scoring_words" yaml:"high_scoring_words"`
	Rack      string      `json:"starting_letters" yaml:"starting_letters"`
	RackBoard Leaderboard `json:"top_buildable_words" yaml:"top_buildable_words"`
}

type Service struct {
	snapshot atomic.Pointer[Snapshot]
	racks    RackSource

	length        int
	minWordLength int
	rackSize      int
}

type Option func(*Service)

// WithLength sets the maximum number of entries per leaderboard.
func WithLength(n int) Option {
	return func(s *Service) { s.length = n }
}

// WithMinWordLength sets the shortest word accepted from a rack.
func WithMinWordLength(n int) Option {
	return func(s *Service) { s.minWordLength = n }
}

// WithRackSize sets the number of letters every rack must have.
func WithRackSize(n int) Option {
	return func(s *Service) { s.rackSize = n }
}

func NewService(dict *lexicon.Dictionary, values *tilemapping.LetterValues,
	racks RackSource, opts ...Option) *Service {

	s := &Service{
		racks:         racks,
		length:        MaxLeaderboardLength,
		minWordLength: lexicon.MinWordLength,
		rackSize:      tilemapping.InitialLetterCount,
	}
	for _, o := range opts {
		o(s)
	}
	s.snapshot.Store(&Snapshot{Dictionary: dict, Values: values})
	return s
}

// Reload swaps in a new dictionary and letter values. Computations that
// already started finish with the old ones.
func (s *Service) Reload(dict *lexicon.Dictionary, values *tilemapping.LetterValues) {
	s.snapshot.Store(&Snapshot{Dictionary: dict, Values: values})
	log.Info().Str("lexicon", dict.Name()).Int("num-words", dict.NumWords()).Msg("reloaded")
}

func (s *Service) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// WordListLeaderboard ranks every word in the dictionary.
func (s *Service) WordListLeaderboard() (Leaderboard, error) {
	return s.wordListLeaderboard(s.snapshot.Load())
}

func (s *Service) wordListLeaderboard(snap *Snapshot) (Leaderboard, error) {
	scores, err := ScoreWords(snap.Dictionary.Words(), snap.Values)
	if err != nil {
		return nil, err
	}
	return TopK(scores, s.length), nil
}

// RackLeaderboard ranks the dictionary words that can be built from rack.
func (s *Service) RackLeaderboard(rack string) (Leaderboard, error) {
	return s.rackLeaderboard(s.snapshot.Load(), rack)
}

func (s *Service) rackLeaderboard(snap *Snapshot, rack string) (Leaderboard, error) {
	r, err := tilemapping.ParseRack(rack, s.rackSize)
	if err != nil {
		return nil, err
	}
	candidates := snap.Dictionary.Buildable(r, s.minWordLength)
	log.Debug().Str("rack", rack).Int("candidates", len(candidates)).Msg("found buildable words")

	scores, err := ScoreWords(candidates, snap.Values)
	if err != nil {
		return nil, err
	}
	return TopK(scores, s.length), nil
}

// Compute draws a rack and builds both leaderboards.
func (s *Service) Compute() (*Result, error) {
	if s.racks == nil {
		return nil, errors.New("no rack source")
	}
	snap := s.snapshot.Load()
	wordList, err := s.wordListLeaderboard(snap)
	if err != nil {
		return nil, err
	}
	rack, err := s.racks.NextRack()
	if err != nil {
		return nil, err
	}
	rackBoard, err := s.rackLeaderboard(snap, rack)
	if err != nil {
		return nil, err
	}
	return &Result{WordList: wordList, Rack: rack, RackBoard: rackBoard}, nil
}
