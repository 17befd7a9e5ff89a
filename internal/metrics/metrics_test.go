package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersRegisterAndIncrement(t *testing.T) {
	before := testutil.ToFloat64(SPARQLQueries.WithLabelValues("test_kind"))
	SPARQLQueries.WithLabelValues("test_kind").Inc()
	if got := testutil.ToFloat64(SPARQLQueries.WithLabelValues("test_kind")); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(ResolveSuperseded)
	ResolveSuperseded.Inc()
	if got := testutil.ToFloat64(ResolveSuperseded); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}
}
