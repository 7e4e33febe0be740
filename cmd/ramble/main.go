// Command ramble is the CLI entry point wiring reader, learn, cache, and
// orient together per spec §6's external interface.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
