package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestViewRecorded(t *testing.T) {
	before := testutil.ToFloat64(bulletinViews)
	ViewRecorded()
	ViewRecorded()
	assert.Equal(t, before+2, testutil.ToFloat64(bulletinViews))
}

func TestStarAdded(t *testing.T) {
	before := testutil.ToFloat64(starsAdded.WithLabelValues("comment"))
	StarAdded("comment")
	assert.Equal(t, before+1, testutil.ToFloat64(starsAdded.WithLabelValues("comment")))
}

func TestObserveRanking(t *testing.T) {
	ObserveRanking(0.002)
	assert.Equal(t, 1, testutil.CollectAndCount(rankingDuration))
}
