package diagnostics_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gwierzchowski/toy-trx-engine/internal/diagnostics"
	"github.com/stretchr/testify/assert"
)

func TestParsingFailedFormat(t *testing.T) {
	var buf bytes.Buffer
	l := diagnostics.New(&buf, false)
	l.ParsingFailed(3, errors.New("boom"))
	assert.Equal(t, "Record# 3 - parsing failed: boom\n", buf.String())
}

func TestEventFormat(t *testing.T) {
	var buf bytes.Buffer
	l := diagnostics.New(&buf, false)
	l.Event(diagnostics.KindCommitRejected, 7, 42, "insufficient funds")
	assert.Equal(t, "Record# 7, Transaction ID = 42 - rejected: insufficient funds\n", buf.String())
}

func TestDedupSuppressesRepeats(t *testing.T) {
	var buf bytes.Buffer
	l := diagnostics.New(&buf, false)
	for i := 0; i < 5; i++ {
		l.Event(diagnostics.KindCommitRejected, uint64(i), 1, "insufficient funds")
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)

	l.FlushRollup()
	assert.Contains(t, buf.String(), "repeated 4 more time(s)")
}

func TestDebugPrefixesBatchID(t *testing.T) {
	var buf bytes.Buffer
	l := diagnostics.New(&buf, true)
	l.ParsingFailed(1, errors.New("x"))
	assert.True(t, strings.HasPrefix(buf.String(), "["))
}
