package leaderboard

import (
	"container/heap"
	"sort"
)

// MaxLeaderboardLength is the default number of entries on a leaderboard.
const MaxLeaderboardLength = 100

// Entry is a word and its score.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// Leaderboard is ordered by score, highest first, and alphabetically for
// equal scores.
type Leaderboard []Entry

// Words returns just the words of the leaderboard, in order.
func (lb Leaderboard) Words() []string {
	words := make([]string, len(lb))
	for i, e := range lb {
		words[i] = e.Word
	}
	return words
}

// Less reports whether a ranks ahead of b: higher score first, then the
// alphabetically smaller word.
func Less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Word < b.Word
}

// Scorer gives the score of a single word.
type Scorer interface {
	Score(word string) (int, error)
}

// ScoreMap maps words to scores and remembers the order words were first
// added in.
type ScoreMap struct {
	words  []string
	scores map[string]int
}

func NewScoreMap() *ScoreMap {
	return &ScoreMap{scores: make(map[string]int)}
}

// Set stores the score of word. A word that is already present keeps its
// position.
func (m *ScoreMap) Set(word string, score int) {
	if _, ok := m.scores[word]; !ok {
		m.words = append(m.words, word)
	}
	m.scores[word] = score
}

func (m *ScoreMap) Get(word string) (int, bool) {
	s, ok := m.scores[word]
	return s, ok
}

func (m *ScoreMap) Len() int {
	return len(m.words)
}

// Entries returns the contents of the map in insertion order.
func (m *ScoreMap) Entries() []Entry {
	entries := make([]Entry, len(m.words))
	for i, w := range m.words {
		entries[i] = Entry{Word: w, Score: m.scores[w]}
	}
	return entries
}

// ScoreWords scores every word in order. It stops at the first word that
// can't be scored.
func ScoreWords(words []string, scorer Scorer) (*ScoreMap, error) {
	m := &ScoreMap{scores: make(map[string]int, len(words))}
	for _, w := range words {
		s, err := scorer.Score(w)
		if err != nil {
			return nil, err
		}
		m.Set(w, s)
	}
	return m, nil
}

// worstFirst is a heap whose root is the lowest-ranked entry.
type worstFirst []Entry

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return Less(h[j], h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x any)        { *h = append(*h, x.(Entry)) }
func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns the best k entries of scores. The result is the same as
// sorting every entry with Less and keeping the first k.
func TopK(scores *ScoreMap, k int) Leaderboard {
	if k <= 0 || scores == nil || scores.Len() == 0 {
		return Leaderboard{}
	}
	h := make(worstFirst, 0, min(k, scores.Len())+1)
	for _, w := range scores.words {
		e := Entry{Word: w, Score: scores.scores[w]}
		if len(h) < k {
			heap.Push(&h, e)
			continue
		}
		if Less(e, h[0]) {
			h[0] = e
			heap.Fix(&h, 0)
		}
	}
	lb := Leaderboard(h)
	sort.Slice(lb, func(i, j int) bool { return Less(lb[i], lb[j]) })
	return lb
}
