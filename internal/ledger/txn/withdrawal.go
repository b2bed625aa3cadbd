package txn

import (
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
	"github.com/gwierzchowski/toy-trx-engine/internal/money"
)

// Withdrawal debits Amount from Client's available balance. It never
// creates accounts.
type Withdrawal struct {
	Client ledger.ClientID
	Tx     ledger.TxID
	Amount money.Money
}

func (w Withdrawal) Kind() Kind                { return KindWithdrawal }
func (w Withdrawal) ClientID() ledger.ClientID { return w.Client }
func (w Withdrawal) TxID() ledger.TxID         { return w.Tx }

// Validate mirrors Deposit's rule: amount > 0 is Ok, == 0 is Warn, < 0 is
// Invalid (spec §4.1).
func (w Withdrawal) Validate() Disposition {
	switch {
	case w.Amount.IsPositive():
		return Ok
	case w.Amount.IsZero():
		return Warn("Amount == 0 in Withdrawal transaction")
	default:
		return Invalid("Amount < 0 in Withdrawal transaction")
	}
}

func (w Withdrawal) Commit(l *ledger.Ledger) error {
	return l.Withdrawal(w.Client, w.Tx, w.Amount)
}
