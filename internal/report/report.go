// Package report renders a merged Ledger to the final per-client CSV
// summary of spec §4.6: only the reporter writes to stdout, and only
// after every shard worker has joined.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
)

var header = []string{"client", "available", "held", "total", "locked"}

// Write prints the header row followed by one row per client in l, in
// unspecified order (spec §4.6/§6 leave row order unconstrained). total is
// computed at print time as available+held; locked renders as true/false.
func Write(w io.Writer, l *ledger.Ledger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return err
	}
	for id, acct := range l.Accounts() {
		row := []string{
			strconv.FormatUint(uint64(id), 10),
			acct.Available.String(),
			acct.Held.String(),
			acct.Total().String(),
			strconv.FormatBool(acct.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
