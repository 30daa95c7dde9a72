// Command mcm reads a matrix chain's dimension vector and prints the
// minimum number of scalar multiplications needed to multiply it.
//
// Input is whitespace separated: the count n followed by n positive
// integers. It is read from stdin unless --input names a file.
//
//	$ echo "5 1 2 3 4 3" | mcm
//	30
package main

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/chainmul/chain"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process boundary, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defer klog.Flush()

	fs := pflag.NewFlagSet("mcm", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.StringP("input", "i", "-", "Input source; '-' means stdin")
	workers := fs.IntP("workers", "w", chain.DefaultWorkers, "Goroutines per DP diagonal; <=1 runs sequentially")

	// klog state is process-global: reset verbosity and route output to
	// stderr on every run so repeated calls start from the same state.
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	_ = klogFlags.Set("v", "0")
	klog.LogToStderr(false)
	klog.SetOutput(stderr)
	fs.AddGoFlagSet(klogFlags)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}
	if *workers < 0 {
		fmt.Fprintf(stderr, "mcm: --workers must be non-negative, got %d\n", *workers)

		return exitUsage
	}

	p, err := readInput(*input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "mcm: %v\n", err)

		return exitError
	}
	klog.V(1).InfoS("Computing chain cost", "matrices", len(p)-1, "workers", *workers)
	klog.V(2).InfoS("Chain", "layout", chain.Describe(p))

	cost, err := chain.MinCost(p, chain.WithWorkers(*workers))
	if err != nil {
		fmt.Fprintf(stderr, "mcm: %v\n", err)

		return exitError
	}
	fmt.Fprintln(stdout, cost)

	return exitOK
}
