package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDocument(t *testing.T) {
	before := testutil.ToFloat64(DocumentsRendered.WithLabelValues("test"))

	ObserveDocument("test", map[string]int{"meta": 3, "link": 1})

	if got := testutil.ToFloat64(DocumentsRendered.WithLabelValues("test")); got != before+1 {
		t.Fatalf("got %v, want %v", got, before+1)
	}
	if n := testutil.CollectAndCount(DocumentElements); n < 2 {
		t.Fatalf("got %d element series, want at least 2", n)
	}
}
