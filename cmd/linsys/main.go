// Command linsys solves n×n linear systems exactly, with a full step trace.
//
// Usage:
//
//	linsys solve --method gauss --A '[[2,1],[1,3]]' --b '[4,7]'
//	linsys solve --file request.json --output json
//	linsys solve --method jacobi --A '[[10,1],[1,10]]' --b '[11,11]' --chart conv.png
//	linsys serve --addr :5000
//	linsys batch problems.yaml --workers 8
//	linsys interactive
//	linsys config > linsys.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
