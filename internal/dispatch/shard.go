package dispatch

import (
	"errors"

	"github.com/gwierzchowski/toy-trx-engine/internal/diagnostics"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
)

// shard owns a disjoint partition of clients and applies their
// transactions sequentially from its own bounded channel. A shard is
// never touched by any goroutine other than the one running its run
// loop and the dispatcher enqueuing onto its channel.
type shard struct {
	index   int
	inbox   chan message
	ledger  *ledger.Ledger
	success uint64
}

func newShard(index, capacity int) *shard {
	return &shard{
		index:  index,
		inbox:  make(chan message, capacity),
		ledger: ledger.New(),
	}
}

// run drains the shard's inbox until the End sentinel, committing each
// transaction against the shard's private ledger. Per-message commit
// failures are logged and skipped; they never stop the worker. A
// panicking commit is recovered by the caller (see pool.go), not here:
// that recovery drains the dead shard's channel until Shutdown closes it
// and drops the shard's partition from the merged result.
func (s *shard) run(log *diagnostics.Logger) {
	for msg := range s.inbox {
		if msg.End {
			return
		}
		s.apply(log, msg)
	}
}

func (s *shard) apply(log *diagnostics.Logger, msg message) {
	t := msg.Txn

	err := t.Commit(s.ledger)
	switch {
	case err == nil:
		s.success++
	case errors.Is(err, ledger.ErrAlreadyDisputed):
		// Spec §4.2: repeated dispute of an already-disputed tx is a
		// Success-with-warning, not a commit rejection.
		log.Event(diagnostics.KindAdvisoryWarn, msg.RecordNo, t.TxID(), "transaction already under dispute")
		s.success++
	default:
		log.Event(diagnostics.KindCommitRejected, msg.RecordNo, t.TxID(), err.Error())
	}
}
