// Package txn holds the five tagged transaction variants (Deposit,
// Withdrawal, Dispute, Resolve, Chargeback) and their structural
// validation and ledger-commit behavior. Each variant is a small value
// type implementing Transaction; there is no class hierarchy, only a
// closed sum dispatched by Kind.
package txn

import (
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
)

// Kind tags one of the five transaction variants.
type Kind int

const (
	KindDeposit Kind = iota
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Severity classifies the outcome of structural Validate.
type Severity int

const (
	// SeverityOk: structurally sound, proceed to commit.
	SeverityOk Severity = iota
	// SeverityWarn: structurally sound but noteworthy; still committed.
	SeverityWarn
	// SeverityInvalid: reject before commit is ever attempted.
	SeverityInvalid
)

// Disposition is the result of structural (pre-commit) validation.
type Disposition struct {
	Severity Severity
	Message  string // empty for SeverityOk
}

// Ok is the zero-message SeverityOk disposition.
var Ok = Disposition{Severity: SeverityOk}

// Warn builds a SeverityWarn disposition with the given message.
func Warn(msg string) Disposition { return Disposition{Severity: SeverityWarn, Message: msg} }

// Invalid builds a SeverityInvalid disposition with the given message.
func Invalid(msg string) Disposition { return Disposition{Severity: SeverityInvalid, Message: msg} }

// Transaction is implemented by all five variants. Validate is pure and
// structural (spec §4.1); Commit performs the ledger mutation and
// semantic checks of spec §4.2, returning nil on success.
type Transaction interface {
	Kind() Kind
	ClientID() ledger.ClientID
	TxID() ledger.TxID
	Validate() Disposition
	Commit(l *ledger.Ledger) error
}
