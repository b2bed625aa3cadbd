// Package dispatch is the sharded execution layer: a single dispatcher
// goroutine reads records, validates and decodes them, assigns each
// client to one shard for the life of the run, and forwards messages on
// bounded per-shard channels. Shard workers apply transactions
// sequentially against their own private ledger; there is no shared
// mutable account state anywhere in this package (spec §3 "Ownership",
// §5 "no global mutex").
package dispatch

import (
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/gwierzchowski/toy-trx-engine/internal/diagnostics"
	"github.com/gwierzchowski/toy-trx-engine/internal/ingest"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger/txn"
)

// recordDecoder is the subset of ingest.RecordSource that Run needs,
// defined locally so dispatch's tests can drive it from a gomock-based
// mock (see mock_recordsource_test.go) without importing a concrete
// file-backed source.
type recordDecoder interface {
	Next() (ingest.Record, error)
}

// Config controls shard count and queue depth (spec §5, §6).
type Config struct {
	// Workers is the number of shard workers, W in the spec. Must be >= 1.
	Workers int
	// QueueScale is the bounded-queue capacity multiplier in units of
	// 1000 (spec §5: capacity = QueueScale * 1000). Default 10.
	QueueScale int
}

// DefaultQueueScale matches spec §5's default B = 10.
const DefaultQueueScale = 10

func (c Config) queueCapacity() int {
	scale := c.QueueScale
	if scale <= 0 {
		scale = DefaultQueueScale
	}
	return scale * 1000
}

// Result is what Run returns: the merged ledger and the total number of
// transactions successfully committed across all shards that didn't
// crash.
type Result struct {
	Ledger       *ledger.Ledger
	SuccessCount uint64
}

// Pool is the dispatcher: it owns the client->shard assignment and the
// set of live shard workers for one run.
type Pool struct {
	cfg            Config
	log            *diagnostics.Logger
	shards         []*shard
	clientShard    map[ledger.ClientID]int
	nextRoundRobin int
	group          *errgroup.Group
}

// NewPool constructs an empty pool; shards are spawned lazily as new
// clients are first seen (spec §4.4 step 4).
func NewPool(cfg Config, log *diagnostics.Logger) *Pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Pool{
		cfg:         cfg,
		log:         log,
		clientShard: make(map[ledger.ClientID]int),
		group:       &errgroup.Group{},
	}
}

// shardFor returns the index of the shard that owns client, spawning a
// new shard worker if fewer than Workers exist yet, otherwise binding to
// the round-robin cursor (spec §4.4 step 4).
func (p *Pool) shardFor(client ledger.ClientID) int {
	if idx, ok := p.clientShard[client]; ok {
		return idx
	}

	var idx int
	if len(p.shards) < p.cfg.Workers {
		idx = len(p.shards)
		p.spawn(idx)
	} else {
		idx = p.nextRoundRobin
		p.nextRoundRobin = (p.nextRoundRobin + 1) % p.cfg.Workers
	}
	p.clientShard[client] = idx
	return idx
}

func (p *Pool) spawn(idx int) {
	sh := newShard(idx, p.cfg.queueCapacity())
	p.shards = append(p.shards, sh)
	p.group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				p.log.WorkerCrash(sh.index, r)
				// A crashed shard's partition and count are dropped from the
				// merged result, and its inbox is drained until Shutdown
				// closes it so the dispatcher never blocks on a dead shard.
				sh.ledger = ledger.New()
				sh.success = 0
				for range sh.inbox {
				}
			}
		}()
		sh.run(p.log)
		return nil
	})
}

// Dispatch routes one decoded, already-validated-Ok-or-Warn transaction
// to its client's shard, blocking on backpressure if that shard's queue
// is full (spec §5 "suspension points").
func (p *Pool) Dispatch(recordNo uint64, t txn.Transaction) {
	idx := p.shardFor(t.ClientID())
	p.shards[idx].inbox <- message{RecordNo: recordNo, Txn: t}
}

// Shutdown sends the End sentinel to every spawned shard, waits for all
// of them to return, and merges their partitions into one Ledger. Shard
// key spaces are disjoint by construction (spec §4.4), so merging cannot
// collide in a correct run; Merge still returns an error if it somehow
// does, surfaced to the caller rather than silently dropped.
func (p *Pool) Shutdown() (Result, error) {
	for _, sh := range p.shards {
		sh.inbox <- message{End: true}
		close(sh.inbox)
	}
	_ = p.group.Wait() // shard goroutines never return a non-nil error; panics are recovered in spawn.

	merged := ledger.New()
	var total uint64
	for _, sh := range p.shards {
		if err := merged.Merge(sh.ledger); err != nil {
			return Result{}, err
		}
		total += sh.success
	}
	return Result{Ledger: merged, SuccessCount: total}, nil
}

// FatalOpenError describes an input that cannot be opened at all; it is
// distinct from a first-record parse failure but both map to a non-zero
// exit code (spec §6). Run never returns it, since it reads from an
// already-open source.
type FatalOpenError struct {
	Err error
}

func (e *FatalOpenError) Error() string { return "failed to open input: " + e.Err.Error() }
func (e *FatalOpenError) Unwrap() error { return e.Err }

// FirstRecordError is returned by Run when the very first record in the
// stream fails to decode, which spec §4.4 step 2 makes fatal.
type FirstRecordError struct {
	Err error
}

func (e *FirstRecordError) Error() string { return "first record failed to parse: " + e.Err.Error() }
func (e *FirstRecordError) Unwrap() error { return e.Err }

// Run drives the full ingest->dispatch->shutdown pipeline against src,
// writing diagnostics through log. It returns *FirstRecordError if the
// very first record can't be decoded (fatal, spec §1/§4.4); all other
// per-record failures are logged and skipped.
func Run(cfg Config, src recordDecoder, log *diagnostics.Logger) (Result, error) {
	pool := NewPool(cfg, log)

	var recordNo uint64
	for {
		rec, srcErr := src.Next()
		if srcErr == io.EOF {
			break
		}
		recordNo++

		var t txn.Transaction
		var warning string
		if srcErr == nil {
			t, warning, srcErr = ingest.Decode(rec)
		}
		if srcErr != nil {
			if recordNo == 1 {
				return Result{}, &FirstRecordError{Err: srcErr}
			}
			log.ParsingFailed(recordNo, srcErr)
			continue
		}

		if warning != "" {
			log.Event(diagnostics.KindAdvisoryWarn, recordNo, t.TxID(), warning)
		}

		disposition := t.Validate()
		switch disposition.Severity {
		case txn.SeverityInvalid:
			log.Event(diagnostics.KindRecordRejected, recordNo, t.TxID(), disposition.Message)
			continue
		case txn.SeverityWarn:
			log.Event(diagnostics.KindAdvisoryWarn, recordNo, t.TxID(), disposition.Message)
		}

		pool.Dispatch(recordNo, t)
	}

	return pool.Shutdown()
}
