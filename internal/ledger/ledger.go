// Package ledger is the per-account state machine: balances, dispute
// history, and the five commit operations that mutate them. A ledger is
// pure in-memory state; nothing in this package touches I/O or goroutines.
package ledger

import (
	"errors"
	"fmt"

	"github.com/gwierzchowski/toy-trx-engine/internal/money"
)

// ClientID identifies one account.
type ClientID uint16

// TxID identifies one funds-moving transaction within an account's history.
type TxID uint32

// Sentinel commit errors. Callers match on these with errors.Is; their
// Error() text is logged as the message of the spec §6 diagnostic line.
var (
	ErrAccountLocked    = errors.New("account locked")
	ErrUnknownClient    = errors.New("client unknown")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateTx      = errors.New("duplicated transaction id")
	ErrUnknownTx        = errors.New("unknown transaction")
	ErrNotDisputed      = errors.New("transaction not under dispute")
)

// ErrAlreadyDisputed is not a commit failure: per spec §4.2 a repeated
// dispute on an already-disputed tx is a no-op Success with a warning.
// It is returned by Dispute so callers can distinguish the two successful
// paths (fresh dispute vs. warning) without re-inspecting account state.
var ErrAlreadyDisputed = errors.New("transaction already under dispute")

// LedgerEntry records one historical funds-moving transaction. Once
// inserted its SignedAmount never changes; only UnderDispute toggles.
type LedgerEntry struct {
	SignedAmount money.Money
	UnderDispute bool
}

// Account is one client's ledger: balances plus transaction history.
// Each Account is owned by exactly one shard worker for the life of a run.
type Account struct {
	Available money.Money
	Held      money.Money
	Locked    bool
	History   map[TxID]*LedgerEntry
}

func newAccount() *Account {
	return &Account{History: make(map[TxID]*LedgerEntry)}
}

// Total is the client's full claim on the system: Available + Held.
func (a *Account) Total() money.Money {
	return a.Available.Add(a.Held)
}

// Ledger owns a disjoint set of accounts, keyed by ClientID. It is the
// unit of ownership transferred from a shard worker to the reporter at
// shutdown; nothing outside the owning goroutine may reach into it while
// a run is in progress.
type Ledger struct {
	accounts map[ClientID]*Account
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[ClientID]*Account)}
}

// Account returns the account for id and whether it already existed.
func (l *Ledger) Account(id ClientID) (*Account, bool) {
	acct, ok := l.accounts[id]
	return acct, ok
}

// Accounts exposes the full map for merging (dispatcher/reporter only).
func (l *Ledger) Accounts() map[ClientID]*Account {
	return l.accounts
}

// Len reports the number of distinct clients known to this ledger.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

func (l *Ledger) getOrCreate(id ClientID) *Account {
	acct, ok := l.accounts[id]
	if !ok {
		acct = newAccount()
		l.accounts[id] = acct
	}
	return acct
}

// Deposit credits amount to client's available balance, auto-creating the
// account if this is its first transaction (spec §4.2, §9 open question:
// unknown-client deposit auto-creates).
func (l *Ledger) Deposit(client ClientID, tx TxID, amount money.Money) error {
	acct, existed := l.accounts[client]
	if existed {
		if acct.Locked {
			return ErrAccountLocked
		}
		if _, dup := acct.History[tx]; dup {
			return ErrDuplicateTx
		}
		acct.Available = acct.Available.Add(amount)
		acct.History[tx] = &LedgerEntry{SignedAmount: amount}
		return nil
	}
	acct = l.getOrCreate(client)
	acct.Available = amount
	acct.History[tx] = &LedgerEntry{SignedAmount: amount}
	return nil
}

// Withdrawal debits amount from client's available balance. It never
// creates accounts: an unknown client is rejected.
func (l *Ledger) Withdrawal(client ClientID, tx TxID, amount money.Money) error {
	acct, ok := l.accounts[client]
	if !ok {
		return ErrUnknownClient
	}
	if acct.Locked {
		return ErrAccountLocked
	}
	if acct.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	if _, dup := acct.History[tx]; dup {
		return ErrDuplicateTx
	}
	acct.Available = acct.Available.Sub(amount)
	acct.History[tx] = &LedgerEntry{SignedAmount: amount.Neg()}
	return nil
}

// Dispute freezes the funds of a prior transaction into Held. A repeat
// dispute of an already-disputed tx is reported via ErrAlreadyDisputed,
// which callers must treat as a successful no-op (AdvisoryWarn), not a
// CommitRejected failure.
func (l *Ledger) Dispute(client ClientID, tx TxID) error {
	acct, ok := l.accounts[client]
	if !ok {
		return ErrUnknownClient
	}
	if acct.Locked {
		return ErrAccountLocked
	}
	entry, ok := acct.History[tx]
	if !ok {
		return ErrUnknownTx
	}
	if entry.UnderDispute {
		return ErrAlreadyDisputed
	}
	s := entry.SignedAmount
	acct.Available = acct.Available.Sub(s)
	acct.Held = acct.Held.Add(s)
	entry.UnderDispute = true
	return nil
}

// Resolve closes a dispute in the client's favor, undoing the Dispute's
// balance movement exactly; total and history keys are unchanged.
func (l *Ledger) Resolve(client ClientID, tx TxID) error {
	acct, ok := l.accounts[client]
	if !ok {
		return ErrUnknownClient
	}
	if acct.Locked {
		return ErrAccountLocked
	}
	entry, ok := acct.History[tx]
	if !ok {
		return ErrUnknownTx
	}
	if !entry.UnderDispute {
		return ErrNotDisputed
	}
	s := entry.SignedAmount
	acct.Available = acct.Available.Add(s)
	acct.Held = acct.Held.Sub(s)
	entry.UnderDispute = false
	return nil
}

// Chargeback closes a dispute against the client, permanently removing
// the disputed amount from Total and locking the account.
func (l *Ledger) Chargeback(client ClientID, tx TxID) error {
	acct, ok := l.accounts[client]
	if !ok {
		return ErrUnknownClient
	}
	if acct.Locked {
		return ErrAccountLocked
	}
	entry, ok := acct.History[tx]
	if !ok {
		return ErrUnknownTx
	}
	if !entry.UnderDispute {
		return ErrNotDisputed
	}
	s := entry.SignedAmount
	acct.Held = acct.Held.Sub(s)
	entry.UnderDispute = false
	acct.Locked = true
	return nil
}

// Merge absorbs other's accounts into l. Partition key spaces must be
// disjoint (each client id is bound to exactly one shard by construction);
// a collision indicates a sharding bug and is reported rather than
// silently overwritten.
func (l *Ledger) Merge(other *Ledger) error {
	for id, acct := range other.accounts {
		if _, exists := l.accounts[id]; exists {
			return fmt.Errorf("ledger merge: client %d present in more than one shard partition", id)
		}
		l.accounts[id] = acct
	}
	return nil
}
