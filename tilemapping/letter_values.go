package tilemapping

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// UnknownLetterError is returned when a word contains a letter that has no
// value.
type UnknownLetterError struct {
	Word   string
	Letter rune
}

func (e *UnknownLetterError) Error() string {
	return fmt.Sprintf("letter `%c` in word %q has no value", e.Letter, e.Word)
}

// LetterValues maps each letter to the number of points it is worth. It is
// never modified after it is built, so it can be shared between goroutines.
type LetterValues struct {
	scores map[rune]int
}

// NewLetterValues copies the given map into a new LetterValues.
func NewLetterValues(scores map[rune]int) (*LetterValues, error) {
	lv := &LetterValues{scores: make(map[rune]int, len(scores))}
	for r, s := range scores {
		if s < 0 {
			return nil, fmt.Errorf("letter `%c` has negative value %d", r, s)
		}
		lv.scores[r] = s
	}
	return lv, nil
}

// ScanLetterValues reads letter values, one `letter:score` per line. The
// letter is trimmed and lowercased; blank lines are ignored.
func ScanLetterValues(data io.Reader) (*LetterValues, error) {
	scores := make(map[rune]int)
	scanner := bufio.NewScanner(data)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: expected letter:score, got %q", lineNo, line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("line %d: key %q is not a single letter", lineNo, key)
		}
		score, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		scores[r] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("num-letters", len(scores)).Msg("scanned letter values")
	return NewLetterValues(scores)
}

// Value returns the value of a single letter.
func (lv *LetterValues) Value(r rune) (int, bool) {
	s, ok := lv.scores[r]
	return s, ok
}

// Score returns the sum of the values of every letter in word, counting
// repeated letters each time they appear.
func (lv *LetterValues) Score(word string) (int, error) {
	score := 0
	for _, r := range word {
		s, ok := lv.scores[r]
		if !ok {
			return 0, &UnknownLetterError{Word: word, Letter: r}
		}
		score += s
	}
	return score, nil
}

// Letters returns the letters that have a value, in sorted order.
func (lv *LetterValues) Letters() []rune {
	letters := make([]rune, 0, len(lv.scores))
	for r := range lv.scores {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

func (lv *LetterValues) NumLetters() int {
	return len(lv.scores)
}
