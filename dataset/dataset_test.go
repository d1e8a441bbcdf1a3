package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vidcache/dataset"
	"github.com/katalvlaran/vidcache/model"
)

const sampleInput = `5 2 4 3 100
50 50 80 30 110
1000 3
0 100
2 200
1 300
500 0
3 0 1500
0 1 1000
4 0 500
1 0 1000
`

func TestParse_Sample(t *testing.T) {
	p, err := dataset.Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)

	assert.Equal(t, 3, p.CacheCount)
	assert.Equal(t, 100, p.CacheCapacity)
	assert.Equal(t, []int{50, 50, 80, 30, 110}, p.VideoSizes)
	require.Len(t, p.Endpoints, 2)
	assert.Equal(t, model.Endpoint{
		DataCenterLatency: 1000,
		Connections:       []model.Connection{{CacheID: 0, Latency: 100}, {CacheID: 2, Latency: 200}, {CacheID: 1, Latency: 300}},
	}, p.Endpoints[0])
	assert.Equal(t, 500, p.Endpoints[1].DataCenterLatency)
	assert.Empty(t, p.Endpoints[1].Connections)
	assert.Equal(t, []model.Request{
		{VideoID: 3, EndpointID: 0, Count: 1500},
		{VideoID: 0, EndpointID: 1, Count: 1000},
		{VideoID: 4, EndpointID: 0, Count: 500},
		{VideoID: 1, EndpointID: 0, Count: 1000},
	}, p.Requests)
}

// TestParse_LayoutInsensitive: line breaks carry no meaning.
func TestParse_LayoutInsensitive(t *testing.T) {
	flat := strings.Join(strings.Fields(sampleInput), " ")
	a, err := dataset.Parse(strings.NewReader(flat))
	require.NoError(t, err)
	b, err := dataset.Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", dataset.ErrUnexpectedEOF},
		{"truncated header", "5 2 4", dataset.ErrUnexpectedEOF},
		{"truncated requests", strings.TrimSuffix(sampleInput, "1 0 1000\n"), dataset.ErrUnexpectedEOF},
		{"bad token", strings.Replace(sampleInput, "110", "1x0", 1), dataset.ErrBadToken},
		{"negative header", "-1 0 0 0 0", model.ErrBadDimension},
		{"negative connections", "0 1 0 1 10\n5 -2\n", model.ErrBadDimension},
		{"huge video count", "9223372036854775807 1 1 1 1\n", dataset.ErrUnexpectedEOF},
		{"huge request count", "1 0 9223372036854775807 1 10\n5\n", dataset.ErrUnexpectedEOF},
		{"huge connection count", "1 1 0 1 10\n5\n100 9223372036854775807\n0 10\n", dataset.ErrUnexpectedEOF},
		{"cache out of range", strings.Replace(sampleInput, "2 200", "7 200", 1), model.ErrCacheOutOfRange},
		{"unknown video", strings.Replace(sampleInput, "4 0 500", "9 0 500", 1), model.ErrVideoOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := dataset.Write(&buf, []model.CacheAssignment{
		{CacheID: 0, VideoIDs: []int{2}},
		{CacheID: 1, VideoIDs: []int{3, 1}},
		{CacheID: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "3\n0 2\n1 3 1\n2\n", buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, nil))
	assert.Equal(t, "0\n", buf.String())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.in")
	require.NoError(t, os.WriteFile(in, []byte(sampleInput), 0o644))

	p, err := dataset.ParseFile(in)
	require.NoError(t, err)
	assert.Equal(t, 3, p.CacheCount)

	_, err = dataset.ParseFile(filepath.Join(dir, "missing.in"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	out := filepath.Join(dir, "results.out")
	require.NoError(t, dataset.WriteFile(out, []model.CacheAssignment{{CacheID: 0, VideoIDs: []int{1, 3}}}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n0 1 3\n", string(data))
}
