// Command txengine is the CSV batch transaction processor's entrypoint.
package main

import "github.com/gwierzchowski/toy-trx-engine/internal/cli"

func main() {
	cli.Execute()
}
