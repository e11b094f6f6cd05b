// Command bytepair trains and runs a byte-level BPE tokenizer: train
// learns a merge list and vocabulary from a corpus, encode and decode
// run them against input.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
