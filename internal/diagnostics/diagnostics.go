// Package diagnostics formats and emits the per-event diagnostic lines of
// spec §6/§7 to stderr (or any io.Writer), and deduplicates repeats of
// the same (kind, message) pair so a pathological input cannot flood the
// log. Deduplication is purely a logging aid: it never participates in
// any correctness decision.
package diagnostics

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
)

// Kind classifies a diagnostic event per spec §7.
type Kind int

const (
	KindRecordRejected Kind = iota
	KindCommitRejected
	KindAdvisoryWarn
	KindWorkerCrash
)

func (k Kind) label() string {
	switch k {
	case KindRecordRejected:
		return "invalid"
	case KindCommitRejected:
		return "rejected"
	case KindAdvisoryWarn:
		return "warning"
	case KindWorkerCrash:
		return "crashed"
	default:
		return "unknown"
	}
}

// dedupCacheSize bounds the log-dedup LRU; it only affects how much
// repetition is tolerated before the rollup counter starts dropping the
// oldest (kind,message) keys, never correctness.
const dedupCacheSize = 4096

type dedupKey struct {
	kind Kind
	msg  string
}

// Logger writes spec §6's two diagnostic line shapes to an underlying
// writer, one line per first-seen event and a rollup for the rest.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	seen    *lru.Cache[dedupKey, *int]
	batchID uuid.UUID
	debug   bool
}

// New returns a Logger writing to out. debug controls whether the batch
// id is prefixed onto every line (useful when capturing several
// concurrent runs' stderr into one stream).
func New(out io.Writer, debug bool) *Logger {
	cache, err := lru.New[dedupKey, *int](dedupCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which dedupCacheSize never is.
		panic(err)
	}
	return &Logger{out: out, seen: cache, batchID: uuid.New(), debug: debug}
}

func (l *Logger) prefix() string {
	if l.debug {
		return "[" + l.batchID.String() + "] "
	}
	return ""
}

// ParsingFailed logs a decoder failure: "Record# <N> - parsing failed: <message>".
func (l *Logger) ParsingFailed(recordNo uint64, err error) {
	msg := err.Error()
	l.emit(KindRecordRejected, msg, fmt.Sprintf("Record# %d - parsing failed: %s", recordNo, msg))
}

// Event logs a validation or commit event tied to a transaction:
// "Record# <N>, Transaction ID = <T> - <kind>: <message>".
func (l *Logger) Event(kind Kind, recordNo uint64, tx ledger.TxID, message string) {
	line := fmt.Sprintf("Record# %d, Transaction ID = %d - %s: %s", recordNo, tx, kind.label(), message)
	l.emit(kind, message, line)
}

// WorkerCrash logs a shard panic recovered inside that shard's goroutine.
func (l *Logger) WorkerCrash(shard int, recovered any) {
	msg := fmt.Sprintf("%v", recovered)
	l.emit(KindWorkerCrash, msg, fmt.Sprintf("shard %d worker crashed: %v", shard, recovered))
}

// emit writes line the first time (kind,dedupMsg) is seen, and otherwise
// only bumps the suppressed-repeat counter for FlushRollup.
func (l *Logger) emit(kind Kind, dedupMsg, line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := dedupKey{kind: kind, msg: dedupMsg}
	if count, ok := l.seen.Get(key); ok {
		*count++
		return
	}
	n := 0
	l.seen.Add(key, &n)
	fmt.Fprintln(l.out, l.prefix()+line)
}

// FlushRollup writes one summary line per deduplicated (kind,message)
// pair that recurred, reporting how many repeats were suppressed. Call
// once at shutdown.
func (l *Logger) FlushRollup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range l.seen.Keys() {
		countPtr, ok := l.seen.Peek(key)
		if !ok || countPtr == nil || *countPtr == 0 {
			continue
		}
		fmt.Fprintf(l.out, "%s(repeated %d more time(s)): %s\n", l.prefix(), *countPtr, key.msg)
	}
}
