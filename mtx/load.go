// SPDX-License-Identifier: MIT
package mtx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load parses r as Matrix Market coordinate data and returns the
// (0-based) row/column indices and, unless WithIgnoreValues was given,
// the parsed values, alongside the header's declared dimensions. It
// never computes degree statistics and never touches any storage.Bundle.
func Load(r io.Reader, opts ...Option) (rows, cols []uint32, vals []any, nrows, ncols int, err error) {
	cfg := gatherOptions(opts...)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var nnz int
	headerFound := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, nil, nil, 0, 0, ErrMalformedHeader
		}
		nrows, err = strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		ncols, err = strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		nnz, err = strconv.Atoi(fields[2])
		if err != nil {
			return nil, nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		headerFound = true
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, 0, 0, err
	}
	if !headerFound {
		return nil, nil, nil, 0, 0, ErrMalformedHeader
	}

	rows = make([]uint32, 0, nnz)
	cols = make([]uint32, 0, nnz)
	if !cfg.ignoreValues {
		vals = make([]any, 0, nnz)
	}

	linesRead := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		linesRead++
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, nil, 0, 0, ErrMalformedLine
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		if i < 1 || i > nrows || j < 1 || j > ncols {
			return nil, nil, nil, 0, 0, fmt.Errorf("%w: line %d", ErrIndexOutOfRange, linesRead)
		}

		var value float64
		hasValue := len(fields) >= 3
		if hasValue {
			value, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, nil, nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
			}
		}

		if cfg.removeLoops && i == j {
			continue
		}

		ri, ci := uint32(i-1), uint32(j-1)
		rows = append(rows, ri)
		cols = append(cols, ci)
		if !cfg.ignoreValues {
			if hasValue {
				vals = append(vals, value)
			} else {
				vals = append(vals, nil)
			}
		}

		if cfg.undirected && ri != ci {
			rows = append(rows, ci)
			cols = append(cols, ri)
			if !cfg.ignoreValues {
				if hasValue {
					vals = append(vals, value)
				} else {
					vals = append(vals, nil)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, 0, 0, err
	}
	if linesRead != nnz {
		return nil, nil, nil, 0, 0, fmt.Errorf("%w: declared %d, read %d", ErrNNZMismatch, nnz, linesRead)
	}

	return rows, cols, vals, nrows, ncols, nil
}
