package txn_test

import (
	"testing"

	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger/txn"
	"github.com/gwierzchowski/toy-trx-engine/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s)
	require.NoError(t, err)
	return m
}

func TestDepositValidate(t *testing.T) {
	assert.Equal(t, txn.Ok, txn.Deposit{Amount: mustParse(t, "1.0")}.Validate())
	assert.Equal(t, txn.SeverityWarn, txn.Deposit{Amount: money.Zero}.Validate().Severity)
	assert.Equal(t, txn.SeverityInvalid, txn.Deposit{Amount: mustParse(t, "-1.0")}.Validate().Severity)
}

func TestWithdrawalValidate(t *testing.T) {
	assert.Equal(t, txn.Ok, txn.Withdrawal{Amount: mustParse(t, "1.0")}.Validate())
	assert.Equal(t, txn.SeverityWarn, txn.Withdrawal{Amount: money.Zero}.Validate().Severity)
	assert.Equal(t, txn.SeverityInvalid, txn.Withdrawal{Amount: mustParse(t, "-1.0")}.Validate().Severity)
}

func TestDisputeResolveChargebackAlwaysOk(t *testing.T) {
	assert.Equal(t, txn.Ok, txn.Dispute{}.Validate())
	assert.Equal(t, txn.Ok, txn.Resolve{}.Validate())
	assert.Equal(t, txn.Ok, txn.Chargeback{}.Validate())
}

func TestCommitDispatchesToLedger(t *testing.T) {
	l := ledger.New()
	d := txn.Deposit{Client: 1, Tx: 1, Amount: mustParse(t, "5.0")}
	require.NoError(t, d.Commit(l))

	acct, ok := l.Account(1)
	require.True(t, ok)
	assert.Equal(t, mustParse(t, "5.0"), acct.Available)

	dispute := txn.Dispute{Client: 1, Tx: 1}
	require.NoError(t, dispute.Commit(l))
	assert.Equal(t, mustParse(t, "5.0"), acct.Held)
}

func TestKindStrings(t *testing.T) {
	cases := map[txn.Kind]string{
		txn.KindDeposit:    "deposit",
		txn.KindWithdrawal: "withdrawal",
		txn.KindDispute:    "dispute",
		txn.KindResolve:    "resolve",
		txn.KindChargeback: "chargeback",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}
