// Package enginetest provides a reusable test environment for exercising
// the real concurrent pipeline end to end: feed a whole CSV body through
// ingest+dispatch and assert the final merged account state, the same way
// a caller would through cmd/txengine.
package enginetest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gwierzchowski/toy-trx-engine/internal/diagnostics"
	"github.com/gwierzchowski/toy-trx-engine/internal/dispatch"
	"github.com/gwierzchowski/toy-trx-engine/internal/ingest"
	"github.com/gwierzchowski/toy-trx-engine/internal/ledger"
)

// Env runs one CSV body through the real dispatcher and captures both the
// resulting ledger and the diagnostics emitted along the way.
type Env struct {
	t      *testing.T
	Result dispatch.Result
	Log    bytes.Buffer
}

// Run builds a CSV source from body (a raw transactions file, header
// included unless opts.NoHeader), drives it through dispatch.Run with cfg,
// and fails the test immediately if the run returns a fatal error.
func Run(t *testing.T, body string, cfg dispatch.Config, opts ingest.Options) *Env {
	t.Helper()

	env := &Env{t: t}
	src := ingest.NewCSVSource(strings.NewReader(body), opts)
	log := diagnostics.New(&env.Log, false)

	result, err := dispatch.Run(cfg, src, log)
	if err != nil {
		t.Fatalf("dispatch.Run returned a fatal error: %v", err)
	}
	log.FlushRollup()
	env.Result = result
	return env
}

// Account returns the account for client, failing the test if it was
// never created.
func (e *Env) Account(client ledger.ClientID) *ledger.Account {
	e.t.Helper()
	acct, ok := e.Result.Ledger.Account(client)
	if !ok {
		e.t.Fatalf("client %d has no account in the final report", client)
	}
	return acct
}

// Diagnostics returns everything written to stderr during the run.
func (e *Env) Diagnostics() string {
	return e.Log.String()
}
