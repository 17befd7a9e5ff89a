package sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(endpoint string) *Client {
	return NewClient(endpoint, 5*time.Second, 100, "tantei-test", zap.NewNop())
}

func TestSelect_parsesBindings(t *testing.T) {
	var gotQuery, gotFormat, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotFormat = r.URL.Query().Get("format")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"results":{"bindings":[
			{"person":{"type":"uri","value":"http://www.wikidata.org/entity/Q42"}},
			{"person":{"type":"uri","value":"http://www.wikidata.org/entity/Q5"}}
		]}}`))
	}))
	defer ts.Close()

	rows := newTestClient(ts.URL).Select(context.Background(), "person_check", "SELECT ...")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["person"] != "http://www.wikidata.org/entity/Q42" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if gotQuery != "SELECT ..." || gotFormat != "json" {
		t.Errorf("query params not forwarded: query=%q format=%q", gotQuery, gotFormat)
	}
	if gotAccept != "application/sparql-results+json" {
		t.Errorf("unexpected Accept header: %q", gotAccept)
	}
}

func TestSelect_errorStatusDegradesToEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query timeout", http.StatusInternalServerError)
	}))
	defer ts.Close()

	if rows := newTestClient(ts.URL).Select(context.Background(), "detail", "SELECT ..."); rows != nil {
		t.Errorf("error status should yield nil rows, got %v", rows)
	}
}

func TestSelect_malformedJSONDegradesToEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"bindings": not json`))
	}))
	defer ts.Close()

	if rows := newTestClient(ts.URL).Select(context.Background(), "detail", "SELECT ..."); rows != nil {
		t.Errorf("malformed JSON should yield nil rows, got %v", rows)
	}
}

func TestSelect_transportFailureDegradesToEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	if rows := newTestClient(ts.URL).Select(context.Background(), "label", "SELECT ..."); rows != nil {
		t.Errorf("transport failure should yield nil rows, got %v", rows)
	}
}

func TestEntityID(t *testing.T) {
	cases := map[string]string{
		"http://www.wikidata.org/entity/Q42": "Q42",
		"Q42":                                "Q42",
		"":                                   "",
	}
	for in, want := range cases {
		if got := EntityID(in); got != want {
			t.Errorf("EntityID(%q) = %q, want %q", in, got, want)
		}
	}
}
