// Command graphimpute fills missing node attributes of a graph with one of
// the k-NN, Topo2Vec or Attributed DeepWalk strategies.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphimpute:", err)
		os.Exit(1)
	}
}
