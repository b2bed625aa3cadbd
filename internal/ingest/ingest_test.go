package ingest_test

import (
	"io"
	"strings"
	"testing"

	"github.com/gwierzchowski/toy-trx-engine/internal/ingest"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger/txn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSourceSkipsHeaderAndBlankAndComments(t *testing.T) {
	body := "type,client,tx,amount\n" +
		"# a comment\n" +
		"\n" +
		"deposit,1,1,1.0\n" +
		"withdrawal,1,2,0.5\n"
	src := ingest.NewCSVSource(strings.NewReader(body), ingest.Options{Comments: true})

	var got []ingest.Record
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, rec)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "deposit", got[0].Type)
	assert.Equal(t, "withdrawal", got[1].Type)
}

func TestCSVSourceNoHeader(t *testing.T) {
	body := "deposit,1,1,1.0\n"
	src := ingest.NewCSVSource(strings.NewReader(body), ingest.Options{NoHeader: true})
	rec, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", rec.Client)
}

func TestCSVSourceRaggedRows(t *testing.T) {
	body := "dispute,1,1,\n" +
		"dispute,1,1\n"
	src := ingest.NewCSVSource(strings.NewReader(body), ingest.Options{NoHeader: true})
	rec1, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "", rec1.Amount)
	rec2, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "", rec2.Amount)
}

func TestDecodeDeposit(t *testing.T) {
	tr, warn, err := ingest.Decode(ingest.Record{Type: "deposit", Client: "1", Tx: "2", Amount: "5.0"})
	require.NoError(t, err)
	assert.Empty(t, warn)
	dep, ok := tr.(txn.Deposit)
	require.True(t, ok)
	assert.EqualValues(t, 1, dep.Client)
	assert.EqualValues(t, 2, dep.Tx)
}

func TestDecodeUnknownType(t *testing.T) {
	_, _, err := ingest.Decode(ingest.Record{Type: "bogus", Client: "1", Tx: "2"})
	assert.Error(t, err)
}

func TestDecodeMissingAmount(t *testing.T) {
	_, _, err := ingest.Decode(ingest.Record{Type: "deposit", Client: "1", Tx: "2"})
	assert.Error(t, err)
}

func TestDecodeUnparsableAmount(t *testing.T) {
	_, _, err := ingest.Decode(ingest.Record{Type: "withdrawal", Client: "1", Tx: "2", Amount: "abc"})
	assert.Error(t, err)
}

func TestDecodeExtraneousAmountWarns(t *testing.T) {
	tr, warn, err := ingest.Decode(ingest.Record{Type: "dispute", Client: "1", Tx: "2", Amount: "1.0"})
	require.NoError(t, err)
	assert.NotEmpty(t, warn)
	_, ok := tr.(txn.Dispute)
	assert.True(t, ok)
}

func TestDecodeDisputeWithoutAmount(t *testing.T) {
	tr, warn, err := ingest.Decode(ingest.Record{Type: "dispute", Client: "1", Tx: "2"})
	require.NoError(t, err)
	assert.Empty(t, warn)
	_, ok := tr.(txn.Dispute)
	assert.True(t, ok)
}

func TestDecodeBadClientID(t *testing.T) {
	_, _, err := ingest.Decode(ingest.Record{Type: "deposit", Client: "not-a-number", Tx: "1", Amount: "1.0"})
	assert.Error(t, err)
}
