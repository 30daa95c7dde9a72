package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/chainmul/chain"
)

// maxPrealloc caps the capacity reserved from the declared count, so a
// huge n in the header cannot force a huge allocation before any
// dimension is read.
const maxPrealloc = 1 << 16

// readInput opens path ("-" is stdin), reads the dimension vector and
// releases the source on every return path.
func readInput(path string, stdin io.Reader) ([]int, error) {
	if path == "-" {
		return readDims(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			klog.ErrorS(cerr, "Closing input", "path", path)
		}
	}()
	klog.V(2).InfoS("Reading input", "path", path)

	return readDims(f)
}

// readDims parses "n d1 d2 … dn" from r. Every token-level failure,
// including a token too long for the scanner buffer, wraps
// chain.ErrInvalidInput; read errors from r are returned as-is.
func readDims(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}

		err := sc.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			return "", false, fmt.Errorf("%w: token too long", chain.ErrInvalidInput)
		}
		if err != nil {
			return "", false, fmt.Errorf("read input: %w", err)
		}

		return "", false, nil
	}

	tok, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing dimension count", chain.ErrInvalidInput)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: dimension count %q is not an integer", chain.ErrInvalidInput, tok)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 dimensions, got %d", chain.ErrInvalidInput, n)
	}

	var d int
	p := make([]int, 0, min(n, maxPrealloc))
	for len(p) < n {
		tok, ok, err = next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: expected %d dimensions, got %d", chain.ErrInvalidInput, n, len(p))
		}
		d, err = strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: dimension %d: %q is not an integer", chain.ErrInvalidInput, len(p)+1, tok)
		}
		p = append(p, d)
	}

	tok, ok, err = next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, fmt.Errorf("%w: unexpected trailing token %q", chain.ErrInvalidInput, tok)
	}

	if err = chain.Validate(p); err != nil {
		return nil, err
	}

	return p, nil
}
