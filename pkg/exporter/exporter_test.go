package exporter

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnmehta/benchmark-wrapper/pkg/benchmark"
)

func sampleResults() []benchmark.Result {
	return []benchmark.Result{
		{
			Name:   "fio",
			Data:   map[string]interface{}{"iops": 9000},
			Labels: map[string]string{"env": "ci"},
			Tag:    "read",
		},
		{
			Name: "fio",
			Data: map[string]interface{}{"iops": 4500},
			Tag:  "write",
		},
	}
}

func TestExporter_LineDelimited(t *testing.T) {
	var buf bytes.Buffer
	exp := New(&buf, false)

	for _, result := range sampleResults() {
		require.NoError(t, exp.Export(result))
	}
	require.NoError(t, exp.Close())
	assert.Equal(t, 2, exp.Exported())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, gojson.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "fio", first["workload"])
	assert.Equal(t, float64(9000), first["iops"])
	assert.Equal(t, "ci", first["env"])
}

func TestExporter_Compressed(t *testing.T) {
	var buf bytes.Buffer
	exp := New(&buf, true)

	for _, result := range sampleResults() {
		require.NoError(t, exp.Export(result))
	}
	require.NoError(t, exp.Close())

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	defer gz.Close()

	var lines int
	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		var record map[string]interface{}
		require.NoError(t, gojson.Unmarshal(scanner.Bytes(), &record))
		assert.Equal(t, "fio", record["workload"])
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 2, lines)
}

func TestExporter_File(t *testing.T) {
	path := t.TempDir() + "/results.json"
	exp, err := NewFile(path, false)
	require.NoError(t, err)

	require.NoError(t, exp.Export(sampleResults()[0]))
	require.NoError(t, exp.Close())

	assert.FileExists(t, path)
}
