package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vidcache/model"
)

// sample returns the small instance used throughout the docs:
// 5 videos, 2 endpoints, 3 caches of capacity 100.
func sample() *model.Problem {
	return &model.Problem{
		CacheCount:    3,
		CacheCapacity: 100,
		VideoSizes:    []int{50, 50, 80, 30, 110},
		Endpoints: []model.Endpoint{
			{DataCenterLatency: 1000, Connections: []model.Connection{{CacheID: 0, Latency: 100}, {CacheID: 2, Latency: 200}, {CacheID: 1, Latency: 300}}},
			{DataCenterLatency: 500},
		},
		Requests: []model.Request{
			{VideoID: 3, EndpointID: 0, Count: 1500},
			{VideoID: 0, EndpointID: 1, Count: 1000},
			{VideoID: 4, EndpointID: 0, Count: 500},
			{VideoID: 1, EndpointID: 0, Count: 1000},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	p := sample()
	require.NoError(t, p.Validate())
	assert.Equal(t, 5, p.VideoCount())
	assert.Equal(t, 2, p.EndpointCount())
	assert.Equal(t, int64(4000), p.TotalRequests())
}

func TestValidate_Nil(t *testing.T) {
	var p *model.Problem
	assert.ErrorIs(t, p.Validate(), model.ErrNilProblem)
}

// TestValidate_Violations mutates the sample one field at a time and checks
// the sentinel surfaced by Validate.
func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *model.Problem)
		want   error
	}{
		{"negative cache count", func(p *model.Problem) { p.CacheCount = -1 }, model.ErrBadDimension},
		{"negative capacity", func(p *model.Problem) { p.CacheCapacity = -5 }, model.ErrBadDimension},
		{"negative size", func(p *model.Problem) { p.VideoSizes[2] = -1 }, model.ErrNegativeSize},
		{"negative dc latency", func(p *model.Problem) { p.Endpoints[1].DataCenterLatency = -1 }, model.ErrNegativeLatency},
		{"negative conn latency", func(p *model.Problem) { p.Endpoints[0].Connections[1].Latency = -3 }, model.ErrNegativeLatency},
		{"cache out of range", func(p *model.Problem) { p.Endpoints[0].Connections[0].CacheID = 3 }, model.ErrCacheOutOfRange},
		{"video out of range", func(p *model.Problem) { p.Requests[0].VideoID = 5 }, model.ErrVideoOutOfRange},
		{"endpoint out of range", func(p *model.Problem) { p.Requests[1].EndpointID = -1 }, model.ErrEndpointOutOfRange},
		{"zero count", func(p *model.Problem) { p.Requests[3].Count = 0 }, model.ErrBadRequestCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := sample()
			tc.mutate(p)
			assert.ErrorIs(t, p.Validate(), tc.want)
		})
	}
}

func TestValidate_EmptyProblem(t *testing.T) {
	p := &model.Problem{}
	require.NoError(t, p.Validate(), "an instance with nothing in it is still valid")
	assert.Zero(t, p.TotalRequests())
}
