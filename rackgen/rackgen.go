// Package rackgen hands out racks for the rack leaderboard.
package rackgen

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/hiscore/tilemapping"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Random draws every letter of a rack independently and uniformly from a-z,
// so a rack may hold the same letter several times.
type Random struct {
	Size int
}

func NewRandom(size int) *Random {
	return &Random{Size: size}
}

func (r *Random) NextRack() (string, error) {
	size := r.Size
	if size == 0 {
		size = tilemapping.InitialLetterCount
	}
	if size < 0 {
		return "", errors.New("rack size must not be negative")
	}
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(letters[frand.Intn(len(letters))])
	}
	rack := sb.String()
	log.Debug().Str("rack", rack).Msg("drew random rack")
	return rack, nil
}

// Fixed always returns the same rack.
type Fixed string

func (f Fixed) NextRack() (string, error) {
	return string(f), nil
}
