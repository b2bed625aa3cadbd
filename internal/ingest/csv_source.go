package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Options controls the optional surface syntax of spec §6/§4.3.
type Options struct {
	// NoHeader treats the first row as data rather than a header.
	NoHeader bool
	// Comments enables skipping lines beginning with '#'.
	Comments bool
}

// CSVSource reads Records from an underlying io.Reader using the
// standard library's encoding/csv, with FieldsPerRecord disabled so
// ragged rows (short or overlong) are tolerated per spec §6. The
// particular CSV library is deliberately out of spec scope (spec.md §1);
// encoding/csv is the ambient choice here (see DESIGN.md).
type CSVSource struct {
	reader      *csv.Reader
	opts        Options
	sawHeader   bool
	commentRune rune
}

// NewCSVSource wraps r for record-at-a-time decoding.
func NewCSVSource(r io.Reader, opts Options) *CSVSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if opts.Comments {
		cr.Comment = '#'
	}
	return &CSVSource{reader: cr, opts: opts}
}

// Next returns the next Record, or io.EOF when the stream is exhausted,
// or a parse error otherwise. Blank rows and (when enabled) '#' comment
// lines are skipped without being counted as records.
func (s *CSVSource) Next() (Record, error) {
	for {
		fields, err := s.reader.Read()
		if err != nil {
			return Record{}, err
		}
		if !s.opts.NoHeader && !s.sawHeader {
			s.sawHeader = true
			if looksLikeHeader(fields) {
				continue
			}
		}
		if isBlankRow(fields) {
			continue
		}
		rec, ok := parseRow(fields)
		if !ok {
			return Record{}, fmt.Errorf("malformed row: %q", strings.Join(fields, ","))
		}
		return rec, nil
	}
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// looksLikeHeader reports whether the first column reads as the literal
// "type" header keyword rather than a transaction type keyword. When
// NoHeader is not set, only a first row that passes this check is skipped;
// a file that starts directly with a data row keeps that row as data.
func looksLikeHeader(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(fields[0]), "type")
}
