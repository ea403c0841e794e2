package tilemapping

import (
	"fmt"
)

// InitialLetterCount is the number of letters on a rack.
const InitialLetterCount = 7

// MalformedRackError is returned for racks of the wrong size or with
// characters other than a-z.
type MalformedRackError struct {
	Rack   string
	Size   int
	Reason string
}

func (e *MalformedRackError) Error() string {
	return fmt.Sprintf("malformed rack %q (want %d letters a-z): %s", e.Rack, e.Size, e.Reason)
}

// Rack is a multiset of letters. Only the count of each letter matters.
type Rack struct {
	counts     map[rune]int
	numLetters int
	repr       string
}

// RackFromString creates a Rack from a string, without any validation.
func RackFromString(rack string) *Rack {
	r := &Rack{counts: make(map[rune]int, len(rack)), repr: rack}
	for _, c := range rack {
		r.counts[c]++
		r.numLetters++
	}
	return r
}

// ValidateRack checks that rack has exactly size letters, all a-z.
func ValidateRack(rack string, size int) error {
	n := 0
	for _, c := range rack {
		if c < 'a' || c > 'z' {
			return &MalformedRackError{Rack: rack, Size: size,
				Reason: fmt.Sprintf("invalid character `%c`", c)}
		}
		n++
	}
	if n != size {
		return &MalformedRackError{Rack: rack, Size: size,
			Reason: fmt.Sprintf("has %d letters", n)}
	}
	return nil
}

// ParseRack validates rack and creates a Rack from it.
func ParseRack(rack string, size int) (*Rack, error) {
	if err := ValidateRack(rack, size); err != nil {
		return nil, err
	}
	return RackFromString(rack), nil
}

// String returns the rack as it was given.
func (r *Rack) String() string {
	return r.repr
}

// CountOf returns how many copies of letter are on the rack.
func (r *Rack) CountOf(letter rune) int {
	return r.counts[letter]
}

// NumTiles returns the number of letters on this rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

// CanBuild returns true if every distinct letter of word appears on the rack
// at least as many times as it appears in word.
func (r *Rack) CanBuild(word string) bool {
	need := make(map[rune]int, len(word))
	for _, c := range word {
		need[c]++
	}
	for c, n := range need {
		if r.counts[c] < n {
			return false
		}
	}
	return true
}

// IsBuildable tells whether word can be spelled with the letters of rack.
// Letters are compared case-sensitively.
func IsBuildable(word, rack string) bool {
	return RackFromString(rack).CanBuild(word)
}
