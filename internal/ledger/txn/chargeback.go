package txn

import "github.com/gwierzchowski/toy-trx-engine/internal/ledger"

// Chargeback closes a dispute against the client, permanently removing the
// disputed amount from Total and locking the account. Structural
// validation is always Ok.
type Chargeback struct {
	Client ledger.ClientID
	Tx     ledger.TxID
}

func (c Chargeback) Kind() Kind                { return KindChargeback }
func (c Chargeback) ClientID() ledger.ClientID { return c.Client }
func (c Chargeback) TxID() ledger.TxID         { return c.Tx }
func (c Chargeback) Validate() Disposition     { return Ok }

func (c Chargeback) Commit(l *ledger.Ledger) error {
	return l.Chargeback(c.Client, c.Tx)
}
