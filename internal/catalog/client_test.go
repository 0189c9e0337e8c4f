package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T) (*httptest.Server, *Query) {
	t.Helper()
	var lastQuery Query
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = Query{
			Category: r.URL.Query().Get("category"),
			InStock:  r.URL.Query().Get("inStock") == "true",
			Sort:     r.URL.Query().Get("sort"),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ListResponse{
			Success:   true,
			Data:      []Product{{ID: 1, Title: "AirPods Pro"}},
			Total:     1,
			Timestamp: time.Now().UTC(),
		})
	})
	mux.HandleFunc("/api/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Product{ID: 1, Title: "AirPods Pro"})
	})
	mux.HandleFunc("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastQuery
}

func TestClient_List(t *testing.T) {
	srv, lastQuery := newFakeAPI(t)
	c := NewClient(srv.URL)

	products, err := c.List(context.Background(), Query{Category: "Audio", InStock: true, Sort: SortRating})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, Query{Category: "Audio", InStock: true, Sort: SortRating}, *lastQuery)

	// "all" and empty category are not sent over the wire
	_, err = c.List(context.Background(), Query{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, Query{}, *lastQuery)
}

func TestClient_ListErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"success":false,"error":"Failed to fetch products"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.List(context.Background(), Query{})
	assert.Error(t, err)
}

func TestClient_Get(t *testing.T) {
	srv, _ := newFakeAPI(t)
	c := NewClient(srv.URL)

	p, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "AirPods Pro", p.Title)

	_, err = c.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
