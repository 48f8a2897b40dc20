package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDecision(t *testing.T) {
	before := testutil.ToFloat64(WorkflowDecisions.WithLabelValues("article:update", "forbidden"))

	ObserveDecision("article:update", "forbidden")

	after := testutil.ToFloat64(WorkflowDecisions.WithLabelValues("article:update", "forbidden"))
	assert.Equal(t, before+1, after)
}

func TestObserveCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap", "hit"))
	misses := testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap", "miss"))

	ObserveCacheLookup("sitemap", true)
	ObserveCacheLookup("sitemap", false)
	ObserveCacheLookup("sitemap", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap", "hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheLookups.WithLabelValues("sitemap", "miss")))
}
