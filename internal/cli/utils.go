// Package cli provides CLI output utilities for Tantei.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/tantei/internal/models"
	"github.com/hyperjump/tantei/pkg/utils"
)

// OutputFormat is the format for CLI result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const noteMaxLen = 60

// WriteCandidates writes a resolve response to w in the given format.
func WriteCandidates(w io.Writer, response *models.ResolveResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}
	writeCandidatesText(w, response)
	return nil
}

func writeCandidatesText(w io.Writer, response *models.ResolveResponse) {
	if response.Superseded {
		fmt.Fprintln(w, "Search superseded by a newer query.")
		return
	}
	if len(response.Candidates) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "Found %d candidates in %dms\n\n", response.Total, response.QueryTime)
	for i, c := range response.Candidates {
		line := fmt.Sprintf("%2d. %s (%s)", i+1, c.Label, c.ID)
		if c.Note != "" {
			line += " — " + utils.Truncate(c.Note, noteMaxLen)
		}
		fmt.Fprintln(w, line)
	}
}

// WritePersonDetail writes a person detail to w in the given format.
func WritePersonDetail(w io.Writer, detail *models.PersonDetail, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}
	fmt.Fprintf(w, "%s (%s)\n", detail.Label, detail.ID)
	fmt.Fprintf(w, "  Born:   %s\n", detail.BirthDate)
	fmt.Fprintf(w, "  Died:   %s\n", detail.DeathDate)
	if detail.AgeAtDeath != "" {
		fmt.Fprintf(w, "  Age:    %s\n", detail.AgeAtDeath)
	}
	fmt.Fprintf(w, "  Gender: %s\n", detail.Gender)
	if detail.ArticleURL != "" {
		fmt.Fprintf(w, "  Article: %s\n", detail.ArticleURL)
	}
	return nil
}
