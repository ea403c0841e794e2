package lexicon

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/domino14/hiscore/tilemapping"
)

// MinWordLength is the shortest word that may be built from a rack.
const MinWordLength = 3

// Dictionary is an ordered list of valid words. It is never modified after it
// is built.
type Dictionary struct {
	name  string
	words []string
}

// NewDictionary copies words into a new Dictionary.
func NewDictionary(name string, words []string) *Dictionary {
	w := make([]string, len(words))
	copy(w, words)
	return &Dictionary{name: name, words: w}
}

// ScanDictionary reads a word list with one word per line. Words are trimmed
// and lowercased, blank lines are skipped, and file order is kept.
func ScanDictionary(name string, data io.Reader) (*Dictionary, error) {
	words := []string{}
	scanner := bufio.NewScanner(data)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("lexicon", name).Int("num-words", len(words)).Msg("scanned word list")
	return &Dictionary{name: name, words: words}, nil
}

// ScanLatin1Dictionary is like ScanDictionary but for word lists encoded in
// ISO 8859-1.
func ScanLatin1Dictionary(name string, data io.Reader) (*Dictionary, error) {
	return ScanDictionary(name, transform.NewReader(data, charmap.ISO8859_1.NewDecoder()))
}

func (d *Dictionary) Name() string {
	return d.name
}

// Words returns the words in dictionary order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) NumWords() int {
	return len(d.words)
}

// Buildable returns, in dictionary order, the words that are at least
// minLength letters long and can be spelled with the letters of rack.
func (d *Dictionary) Buildable(rack *tilemapping.Rack, minLength int) []string {
	return lo.Filter(d.words, func(word string, _ int) bool {
		return utf8.RuneCountInString(word) >= minLength && rack.CanBuild(word)
	})
}
