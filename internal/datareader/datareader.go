// Package datareader loads point sets for slinkcli from a whitespace- or
// comma-delimited text file: one point per line, dim coordinates per line.
// This is a thin convenience for the command-line tool; the core
// slink/data packages work directly against in-memory buffers and never
// import this package.
package datareader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPoints parses r into a flat row-major buffer of n*dim float64s (no
// SIMD padding — callers needing an aligned/padded layout should pass the
// result through data.NewLinearized with a wider stride). Blank lines are
// skipped; every non-blank line must contain exactly dim fields.
func ReadPoints(r io.Reader, dim int) (buf []float64, n int, err error) {
	if dim <= 0 {
		return nil, 0, fmt.Errorf("datareader: dim must be positive, got %d", dim)
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != dim {
			return nil, 0, fmt.Errorf("datareader: line %d has %d fields, want %d", lineNo, len(fields), dim)
		}
		for _, f := range fields {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return nil, 0, fmt.Errorf("datareader: line %d: %w", lineNo, perr)
			}
			buf = append(buf, v)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("datareader: scan failed: %w", err)
	}
	if n == 0 {
		return nil, 0, fmt.Errorf("datareader: no points read")
	}
	return buf, n, nil
}
