package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/vidcache/model"
)

// maxToken bounds a single whitespace-separated token.
const maxToken = 64 * 1024

// maxPrealloc caps capacity reserved from header counts; longer sections
// grow as their records are actually read.
const maxPrealloc = 1 << 16

// Parse reads one problem instance from r and validates it.
//
// Complexity: O(input size) time, O(V + E + C + R) memory.
func Parse(r io.Reader) (*model.Problem, error) {
	t := newTokens(r)

	var v, e, req int
	p := &model.Problem{}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"video count", &v},
		{"endpoint count", &e},
		{"request count", &req},
		{"cache count", &p.CacheCount},
		{"cache capacity", &p.CacheCapacity},
	} {
		if err := t.next(f.name, f.dst); err != nil {
			return nil, err
		}
	}
	if v < 0 || e < 0 || req < 0 {
		return nil, fmt.Errorf("%w: header %d %d %d", model.ErrBadDimension, v, e, req)
	}

	// Counts are untrusted: reserve at most maxPrealloc and append.
	p.VideoSizes = make([]int, 0, min(v, maxPrealloc))
	for i := 0; i < v; i++ {
		var size int
		if err := t.next(fmt.Sprintf("video %d size", i), &size); err != nil {
			return nil, err
		}
		p.VideoSizes = append(p.VideoSizes, size)
	}

	p.Endpoints = make([]model.Endpoint, 0, min(e, maxPrealloc))
	for i := 0; i < e; i++ {
		var (
			ep model.Endpoint
			k  int
		)
		if err := t.next(fmt.Sprintf("endpoint %d latency", i), &ep.DataCenterLatency); err != nil {
			return nil, err
		}
		if err := t.next(fmt.Sprintf("endpoint %d connection count", i), &k); err != nil {
			return nil, err
		}
		if k < 0 {
			return nil, fmt.Errorf("%w: endpoint %d connection count %d", model.ErrBadDimension, i, k)
		}
		ep.Connections = make([]model.Connection, 0, min(k, maxPrealloc))
		for j := 0; j < k; j++ {
			var c model.Connection
			if err := t.next(fmt.Sprintf("endpoint %d connection %d cache", i, j), &c.CacheID); err != nil {
				return nil, err
			}
			if err := t.next(fmt.Sprintf("endpoint %d connection %d latency", i, j), &c.Latency); err != nil {
				return nil, err
			}
			ep.Connections = append(ep.Connections, c)
		}
		p.Endpoints = append(p.Endpoints, ep)
	}

	p.Requests = make([]model.Request, 0, min(req, maxPrealloc))
	for i := 0; i < req; i++ {
		var rq model.Request
		if err := t.next(fmt.Sprintf("request %d video", i), &rq.VideoID); err != nil {
			return nil, err
		}
		if err := t.next(fmt.Sprintf("request %d endpoint", i), &rq.EndpointID); err != nil {
			return nil, err
		}
		if err := t.next(fmt.Sprintf("request %d count", i), &rq.Count); err != nil {
			return nil, err
		}
		p.Requests = append(p.Requests, rq)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*model.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return p, nil
}

// tokens yields whitespace-separated words.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxToken)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next reads the next token into dst; name labels errors.
func (t *tokens) next(name string, dst *int) error {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return fmt.Errorf("dataset: reading %s: %w", name, err)
		}
		return fmt.Errorf("%w: reading %s", ErrUnexpectedEOF, name)
	}
	n, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return fmt.Errorf("%w: %s: %q", ErrBadToken, name, t.sc.Text())
	}
	*dst = n

	return nil
}
