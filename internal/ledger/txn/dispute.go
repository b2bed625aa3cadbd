package txn

import "github.com/gwierzchowski/toy-trx-engine/internal/ledger"

// Dispute freezes the funds of a prior transaction into Held. Structural
// validation is always Ok (spec §4.1); all checks (account exists, tx
// exists, not already disputed) are semantic and happen at Commit.
type Dispute struct {
	Client ledger.ClientID
	Tx     ledger.TxID
}

func (d Dispute) Kind() Kind                { return KindDispute }
func (d Dispute) ClientID() ledger.ClientID { return d.Client }
func (d Dispute) TxID() ledger.TxID         { return d.Tx }
func (d Dispute) Validate() Disposition     { return Ok }

func (d Dispute) Commit(l *ledger.Ledger) error {
	return l.Dispute(d.Client, d.Tx)
}
