package txn

import (
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
	"github.com/gwierzchowski/toy-trx-engine/internal/money"
)

// Deposit credits Amount to Client's available balance, auto-creating the
// account if Client has not been seen before.
type Deposit struct {
	Client ledger.ClientID
	Tx     ledger.TxID
	Amount money.Money
}

func (d Deposit) Kind() Kind                { return KindDeposit }
func (d Deposit) ClientID() ledger.ClientID { return d.Client }
func (d Deposit) TxID() ledger.TxID         { return d.Tx }

// Validate implements spec §4.1: amount > 0 is Ok, == 0 is Warn (still
// processed), < 0 is Invalid.
func (d Deposit) Validate() Disposition {
	switch {
	case d.Amount.IsPositive():
		return Ok
	case d.Amount.IsZero():
		return Warn("Amount == 0 in Deposit transaction")
	default:
		return Invalid("Amount < 0 in Deposit transaction")
	}
}

func (d Deposit) Commit(l *ledger.Ledger) error {
	return l.Deposit(d.Client, d.Tx, d.Amount)
}
