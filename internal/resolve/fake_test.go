package resolve

import (
	"context"
	"sync"

	"github.com/hyperjump/tantei/internal/sparql"
)

const entityPrefix = "http://www.wikidata.org/entity/"

// fakeQuerier serves canned rows by query kind and records what was asked.
// A kind present in gates blocks until its channel is closed, which lets
// staleness tests start a second run while the first is still in flight.
type fakeQuerier struct {
	mu        sync.Mutex
	responses map[string][]sparql.Binding
	gates     map[string]chan struct{}
	kinds     []string
	queries   map[string]string
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		responses: make(map[string][]sparql.Binding),
		gates:     make(map[string]chan struct{}),
		queries:   make(map[string]string),
	}
}

func (f *fakeQuerier) Select(ctx context.Context, kind, query string) []sparql.Binding {
	f.mu.Lock()
	f.kinds = append(f.kinds, kind)
	f.queries[kind] = query
	gate := f.gates[kind]
	resp := f.responses[kind]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return resp
}

func (f *fakeQuerier) calledKinds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.kinds...)
}

func (f *fakeQuerier) queryFor(kind string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[kind]
}

func personRow(id string) sparql.Binding {
	return sparql.Binding{"person": entityPrefix + id}
}

func memberRow(id, label, groupID, groupLabel string) sparql.Binding {
	return sparql.Binding{
		"member":      entityPrefix + id,
		"memberLabel": label,
		"group":       entityPrefix + groupID,
		"groupLabel":  groupLabel,
	}
}
