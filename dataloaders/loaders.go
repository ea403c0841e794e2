package dataloaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/hiscore/cache"
	"github.com/domino14/hiscore/config"
	"github.com/domino14/hiscore/lexicon"
	"github.com/domino14/hiscore/tilemapping"
)

const (
	wordListKeyPrefix     = "wordlist:"
	letterValuesKeyPrefix = "lettervalues:"
)

// Loader reads word lists and letter value tables from disk. Parsed objects
// are kept in the loader's own cache.
type Loader struct {
	cache    *cache.Cache
	encoding string
}

func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		cache:    cache.New(),
		encoding: cfg.GetString(config.ConfigWordListEncoding),
	}
}

func (l *Loader) loadWordList(key string) (any, error) {
	path := strings.TrimPrefix(key, wordListKeyPrefix)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var d *lexicon.Dictionary
	if l.encoding == "latin1" {
		d, err = lexicon.ScanLatin1Dictionary(name, f)
	} else {
		d, err = lexicon.ScanDictionary(name, f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return d, nil
}

func (l *Loader) loadLetterValues(key string) (any, error) {
	path := strings.TrimPrefix(key, letterValuesKeyPrefix)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lv, err := tilemapping.ScanLetterValues(f)
	if err != nil {
		return nil, fmt.Errorf("reading letter values %s: %w", path, err)
	}
	return lv, nil
}

// WordList loads the word list at path.
func (l *Loader) WordList(path string) (*lexicon.Dictionary, error) {
	obj, err := l.cache.Get(wordListKeyPrefix+path, l.loadWordList)
	if err != nil {
		return nil, err
	}
	d, ok := obj.(*lexicon.Dictionary)
	if !ok {
		return nil, errors.New("could not read word list from cache")
	}
	log.Debug().Str("path", path).Int("num-words", d.NumWords()).Msg("word list ready")
	return d, nil
}

// LetterValues loads the letter value table at path.
func (l *Loader) LetterValues(path string) (*tilemapping.LetterValues, error) {
	obj, err := l.cache.Get(letterValuesKeyPrefix+path, l.loadLetterValues)
	if err != nil {
		return nil, err
	}
	lv, ok := obj.(*tilemapping.LetterValues)
	if !ok {
		return nil, errors.New("could not read letter values from cache")
	}
	return lv, nil
}

// Refresh forgets whatever was loaded from paths, so the next call re-reads
// those files.
func (l *Loader) Refresh(paths ...string) {
	for _, p := range paths {
		l.cache.Evict(wordListKeyPrefix + p)
		l.cache.Evict(letterValuesKeyPrefix + p)
	}
}
