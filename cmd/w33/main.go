// Command w33 builds the symplectic graph of a profile and verifies its
// strongly-regular invariants.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
