package txn

import "github.com/gwierzchowski/toy-trx-engine/internal/ledger"

// Resolve closes a dispute in the client's favor, restoring balances to
// their pre-dispute values. Structural validation is always Ok.
type Resolve struct {
	Client ledger.ClientID
	Tx     ledger.TxID
}

func (r Resolve) Kind() Kind                { return KindResolve }
func (r Resolve) ClientID() ledger.ClientID { return r.Client }
func (r Resolve) TxID() ledger.TxID         { return r.Tx }
func (r Resolve) Validate() Disposition     { return Ok }

func (r Resolve) Commit(l *ledger.Ledger) error {
	return l.Resolve(r.Client, r.Tx)
}
