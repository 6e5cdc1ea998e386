package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrevClose_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/aggs/ticker/AAPL/prev", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"c":189.5,"o":187.1,"h":190.0,"l":186.9,"v":1000,"t":1602705600000}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	q, err := c.PrevClose(context.Background(), " aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, 189.5, q.Price)
	assert.Equal(t, int64(1602705600000), q.AsOf)
}

func TestPrevClose_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.PrevClose(context.Background(), "ZZZZ")
	assert.Equal(t, ErrNoData, err)
}

func TestPrevClose_MissingResultsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"NOT_FOUND"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.PrevClose(context.Background(), "ZZZZ")
	assert.Equal(t, ErrNoData, err)
}

func TestPrevClose_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.PrevClose(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestPrevClose_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.PrevClose(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestPrevClose_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.PrevClose(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestHistory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v2/aggs/ticker/TSLA/range/1/day/")
		w.Write([]byte(`{"results":[
			{"c":10,"o":9,"h":11,"l":8,"v":100,"t":1000},
			{"c":12,"o":10,"h":13,"l":9,"v":200,"t":2000}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	bars, err := c.History(context.Background(), "tsla", 30)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, int64(1000), bars[0].Date)
	assert.Equal(t, int64(2000), bars[1].Date)
	assert.Equal(t, 10.0, bars[0].Close)
	assert.Equal(t, 200.0, bars[1].Volume)
}

func TestHistory_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.History(context.Background(), "ZZZZ", 30)
	assert.Equal(t, ErrNoData, err)
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeSymbol("  aapl "))
	assert.Equal(t, "", NormalizeSymbol("   "))
}
