// Package display writes leaderboard results for people or for other
// programs.
package display

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/domino14/hiscore/leaderboard"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write writes results to w in the given format.
func Write(w io.Writer, format string, results []*leaderboard.Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, results []*leaderboard.Result) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "High Scoring Words:\n\n"); err != nil {
			return err
		}
		if err := writeBoard(w, res.WordList); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\nStarting letters: %s\n\nTop Buildable Words:\n\n", res.Rack); err != nil {
			return err
		}
		if err := writeBoard(w, res.RackBoard); err != nil {
			return err
		}
	}
	return nil
}

func writeBoard(w io.Writer, lb leaderboard.Leaderboard) error {
	if len(lb) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}
	width := 0
	for _, e := range lb {
		width = max(width, len(e.Word))
	}
	for i, e := range lb {
		if _, err := fmt.Fprintf(w, "%4d. %-*s %4d\n", i+1, width, e.Word, e.Score); err != nil {
			return err
		}
	}
	return nil
}
