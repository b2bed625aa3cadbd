// Package ingest reads raw CSV rows, tolerates the flexible surface
// syntax spec'd in spec.md §4.3/§6, and decodes each row into a typed
// txn.Transaction or reports why it could not.
package ingest

import "strings"

// Record is one raw, field-trimmed CSV row before type-specific decoding.
// Amount is the empty string when absent, matching spec §4.3's "missing
// optional columns treated as absent".
type Record struct {
	Type   string
	Client string
	Tx     string
	Amount string
}

// RecordSource yields Records one at a time. Next returns io.EOF (the
// stdlib sentinel) when the stream is exhausted. Implementations may be
// backed by a file, an in-memory slice (tests), or anything else the
// dispatcher's producer loop can block on.
type RecordSource interface {
	Next() (Record, error)
}

// parseRow turns a raw CSV row (already split into fields by the caller)
// into a Record, trimming whitespace and tolerating short or overlong
// rows as long as the required type/client/tx columns are present.
func parseRow(fields []string) (Record, bool) {
	var rec Record
	switch {
	case len(fields) >= 4:
		rec = Record{Type: fields[0], Client: fields[1], Tx: fields[2], Amount: fields[3]}
	case len(fields) == 3:
		rec = Record{Type: fields[0], Client: fields[1], Tx: fields[2]}
	default:
		return Record{}, false
	}
	rec.Type = strings.TrimSpace(rec.Type)
	rec.Client = strings.TrimSpace(rec.Client)
	rec.Tx = strings.TrimSpace(rec.Tx)
	rec.Amount = strings.TrimSpace(rec.Amount)
	if rec.Type == "" || rec.Client == "" || rec.Tx == "" {
		return Record{}, false
	}
	return rec, true
}
