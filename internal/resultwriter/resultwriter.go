// Package resultwriter renders a slink.Result to the two-line results
// text format: line 1 is pi as a comma-separated list, line 2 is lambda
// likewise. CLI scaffolding; the core packages never import it.
package resultwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/slink-go/slink/slink"
)

// WriteResult writes result to w in the two-line pi/lambda format.
func WriteResult(w io.Writer, result slink.Result) error {
	pi := make([]string, len(result.Pi))
	for i, v := range result.Pi {
		pi[i] = strconv.Itoa(v)
	}
	if _, err := fmt.Fprintln(w, strings.Join(pi, ",")); err != nil {
		return fmt.Errorf("resultwriter: write pi line: %w", err)
	}

	lambda := make([]string, len(result.Lambda))
	for i, v := range result.Lambda {
		lambda[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if _, err := fmt.Fprintln(w, strings.Join(lambda, ",")); err != nil {
		return fmt.Errorf("resultwriter: write lambda line: %w", err)
	}
	return nil
}
