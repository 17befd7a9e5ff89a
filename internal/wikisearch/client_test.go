package wikisearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSearch_parsesHits(t *testing.T) {
	var gotParams map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = map[string]string{
			"action":   r.URL.Query().Get("action"),
			"search":   r.URL.Query().Get("search"),
			"language": r.URL.Query().Get("language"),
			"type":     r.URL.Query().Get("type"),
			"limit":    r.URL.Query().Get("limit"),
		}
		w.Write([]byte(`{"search":[
			{"id":"Q15869","label":"Freddie Mercury","description":"British singer"},
			{"id":"Q2","label":"Band A"}
		]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "en", 5*time.Second, "tantei-test", zap.NewNop())
	hits, err := c.Search(context.Background(), "freddie", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].ID != "Q15869" || hits[0].Description != "British singer" {
		t.Errorf("unexpected first hit: %+v", hits[0])
	}
	if hits[1].Description != "" {
		t.Errorf("missing description should stay empty: %+v", hits[1])
	}
	want := map[string]string{
		"action": "wbsearchentities", "search": "freddie",
		"language": "en", "type": "item", "limit": "10",
	}
	for k, v := range want {
		if gotParams[k] != v {
			t.Errorf("param %s = %q, want %q", k, gotParams[k], v)
		}
	}
}

func TestSearch_errorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "en", 5*time.Second, "tantei-test", zap.NewNop())
	if _, err := c.Search(context.Background(), "freddie", 10); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestSearch_malformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"search": nope`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "en", 5*time.Second, "tantei-test", zap.NewNop())
	if _, err := c.Search(context.Background(), "freddie", 10); err == nil {
		t.Error("expected error for malformed response body")
	}
}
