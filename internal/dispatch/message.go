package dispatch

import "github.com/gwierzchowski/toy-trx-engine/internal/ledger/txn"

// message is what the dispatcher forwards to a shard's bounded channel.
// End carries the shutdown signal on a typed field rather than
// overloading RecordNo == 0 as a sentinel (spec §9's preferred redesign:
// "An implementation free of this overload ... should prefer it").
type message struct {
	RecordNo uint64
	Txn      txn.Transaction
	End      bool
}
