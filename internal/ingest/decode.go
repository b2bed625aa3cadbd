package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger/txn"
	"github.com/gwierzchowski/toy-trx-engine/internal/money"
)

// Decode converts one Record into a txn.Transaction (spec §4.3). A
// non-empty error means the row is rejected outright (RecordRejected);
// warning, returned alongside a successfully decoded transaction, flags
// an AdvisoryWarn condition (spec §7) that does not stop decoding — an
// extraneous amount on a dispute/resolve/chargeback row.
func Decode(rec Record) (t txn.Transaction, warning string, err error) {
	client, err := parseClient(rec.Client)
	if err != nil {
		return nil, "", err
	}
	tx, err := parseTx(rec.Tx)
	if err != nil {
		return nil, "", err
	}

	kind := strings.ToLower(rec.Type)
	switch kind {
	case "deposit", "withdrawal":
		if rec.Amount == "" {
			return nil, "", fmt.Errorf("amount not present in %s transaction", kind)
		}
		amount, perr := money.Parse(rec.Amount)
		if perr != nil {
			return nil, "", fmt.Errorf("amount not representable as money in %s transaction: %w", kind, perr)
		}
		if kind == "deposit" {
			return txn.Deposit{Client: client, Tx: tx, Amount: amount}, "", nil
		}
		return txn.Withdrawal{Client: client, Tx: tx, Amount: amount}, "", nil

	case "dispute", "resolve", "chargeback":
		if rec.Amount != "" {
			warning = fmt.Sprintf("Amount is present in %s transaction", titleCase(kind))
		}
		switch kind {
		case "dispute":
			return txn.Dispute{Client: client, Tx: tx}, warning, nil
		case "resolve":
			return txn.Resolve{Client: client, Tx: tx}, warning, nil
		default:
			return txn.Chargeback{Client: client, Tx: tx}, warning, nil
		}

	default:
		return nil, "", fmt.Errorf("unknown transaction type %q", rec.Type)
	}
}

func parseClient(s string) (ledger.ClientID, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid client id %q: %w", s, err)
	}
	return ledger.ClientID(v), nil
}

func parseTx(s string) (ledger.TxID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return ledger.TxID(v), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
