package leaderboard

import (
	"fmt"
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func scoreMapOf(entries ...Entry) *ScoreMap {
	m := NewScoreMap()
	for _, e := range entries {
		m.Set(e.Word, e.Score)
	}
	return m
}

func fullSort(m *ScoreMap, k int) Leaderboard {
	all := m.Entries()
	sort.SliceStable(all, func(i, j int) bool { return Less(all[i], all[j]) })
	if k < 0 {
		k = 0
	}
	if k > len(all) {
		k = len(all)
	}
	return Leaderboard(all[:k])
}

func TestTopKTieBreak(t *testing.T) {
	scores := scoreMapOf(Entry{"cat", 5}, Entry{"act", 5}, Entry{"dog", 7})
	got := TopK(scores, 3)
	assert.Equal(t, Leaderboard{{"dog", 7}, {"act", 5}, {"cat", 5}}, got)
}

func TestTopKTiesAtCutoff(t *testing.T) {
	is := is.New(t)
	scores := scoreMapOf(
		Entry{"zed", 4}, Entry{"yak", 4}, Entry{"top", 9}, Entry{"bee", 4}, Entry{"ant", 4})
	got := TopK(scores, 3)
	is.Equal(got.Words(), []string{"top", "ant", "bee"})
}

func TestTopKFewerThanK(t *testing.T) {
	scores := scoreMapOf(Entry{"b", 1}, Entry{"a", 1}, Entry{"c", 2})
	got := TopK(scores, 100)
	assert.Equal(t, Leaderboard{{"c", 2}, {"a", 1}, {"b", 1}}, got)
}

func TestTopKEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(len(TopK(NewScoreMap(), 10)), 0)
	is.Equal(len(TopK(scoreMapOf(Entry{"a", 1}), 0)), 0)
	is.Equal(len(TopK(scoreMapOf(Entry{"a", 1}), -3)), 0)
	is.Equal(len(TopK(nil, 3)), 0)
}

func TestTopKMatchesFullSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfDistinct(rapid.StringMatching(`[a-d]{1,4}`), func(s string) string { return s }).Draw(t, "words")
		m := NewScoreMap()
		for i, w := range words {
			m.Set(w, rapid.IntRange(0, 6).Draw(t, fmt.Sprintf("score%d", i)))
		}
		k := rapid.IntRange(0, 120).Draw(t, "k")

		got := TopK(m, k)
		want := fullSort(m, k)
		if len(got) != len(want) {
			t.Fatalf("len %d, want %d", len(got), len(want))
		}
		seen := map[string]bool{}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("entry %d: got %v, want %v", i, got[i], want[i])
			}
			if seen[got[i].Word] {
				t.Fatalf("duplicate word %q", got[i].Word)
			}
			seen[got[i].Word] = true
		}
		// determinism
		again := TopK(m, k)
		for i := range got {
			if again[i] != got[i] {
				t.Fatalf("second call differs at %d", i)
			}
		}
	})
}

func TestTopKIndependentOfInsertionOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfDistinct(rapid.StringMatching(`[a-c]{1,3}`), func(s string) string { return s }).Draw(t, "words")
		entries := make([]Entry, len(words))
		for i, w := range words {
			entries[i] = Entry{w, rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("score%d", i))}
		}
		k := rapid.IntRange(1, 10).Draw(t, "k")
		forward := TopK(scoreMapOf(entries...), k)

		reversed := make([]Entry, len(entries))
		for i, e := range entries {
			reversed[len(entries)-1-i] = e
		}
		backward := TopK(scoreMapOf(reversed...), k)
		if len(forward) != len(backward) {
			t.Fatalf("lengths differ")
		}
		for i := range forward {
			if forward[i] != backward[i] {
				t.Fatalf("entry %d: %v vs %v", i, forward[i], backward[i])
			}
		}
	})
}

func TestScoreMapKeepsFirstPosition(t *testing.T) {
	m := NewScoreMap()
	m.Set("cat", 5)
	m.Set("dog", 7)
	m.Set("cat", 5)
	assert.Equal(t, []Entry{{"cat", 5}, {"dog", 7}}, m.Entries())
	s, ok := m.Get("dog")
	assert.True(t, ok)
	assert.Equal(t, 7, s)
}

type mapScorer map[rune]int

func (ms mapScorer) Score(word string) (int, error) {
	total := 0
	for _, r := range word {
		v, ok := ms[r]
		if !ok {
			return 0, fmt.Errorf("no value for %c", r)
		}
		total += v
	}
	return total, nil
}

func TestScoreWords(t *testing.T) {
	is := is.New(t)
	scorer := mapScorer{'c': 3, 'a': 1, 't': 1, 'o': 1, 'd': 2, 'g': 2}
	m, err := ScoreWords([]string{"cat", "act", "dog", "catdog"}, scorer)
	is.NoErr(err)
	assert.Equal(t, []Entry{{"cat", 5}, {"act", 5}, {"dog", 7}, {"catdog", 12}}, m.Entries())

	_, err = ScoreWords([]string{"cat", "cow"}, scorer)
	is.True(err != nil)
}
