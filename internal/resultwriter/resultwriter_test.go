package resultwriter_test

import (
	"bytes"
	"testing"

	"github.com/slink-go/slink/internal/resultwriter"
	"github.com/slink-go/slink/slink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult_TwoLineFormat(t *testing.T) {
	result := slink.Result{
		Pi:     []int{1, 1},
		Lambda: []float64{3.6055512754639896, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, resultwriter.WriteResult(&buf, result))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "1,1", string(lines[0]))
	assert.Equal(t, "3.6055512754639896,0", string(lines[1]))
}
