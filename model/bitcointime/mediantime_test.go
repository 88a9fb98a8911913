package bitcointime

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMedianTimeNoSamples(t *testing.T) {
	medianTime := NewMedianTime()
	assert.Equal(t, time.Duration(0), medianTime.Offset())

	// The adjusted time should equal local time without samples.
	now := time.Now().Unix()
	assert.InDelta(t, now, medianTime.AdjustedTime().Unix(), 2)
}

func TestMedianTimeAppliedAtFiveSamples(t *testing.T) {
	medianTime := NewMedianTime()
	offset := 10 * time.Minute

	for i := 0; i < 4; i++ {
		medianTime.AddTimeSample(fmt.Sprintf("peer%d", i), time.Now().Add(offset))
		assert.Equal(t, time.Duration(0), medianTime.Offset(),
			"the median needs at least five samples")
	}

	medianTime.AddTimeSample("peer4", time.Now().Add(offset))
	assert.InDelta(t, offset.Seconds(), medianTime.Offset().Seconds(), 2)
}

func TestMedianTimeDuplicateSource(t *testing.T) {
	medianTime := NewMedianTime()
	for i := 0; i < 10; i++ {
		// The same peer must only ever be counted once, so the five sample
		// threshold is never reached.
		medianTime.AddTimeSample("peer0", time.Now().Add(10*time.Minute))
	}
	assert.Equal(t, time.Duration(0), medianTime.Offset())
}

func TestMedianTimeOffsetTooLarge(t *testing.T) {
	medianTime := NewMedianTime()
	for i := 0; i < 5; i++ {
		medianTime.AddTimeSample(fmt.Sprintf("peer%d", i), time.Now().Add(2*time.Hour))
	}
	// Medians beyond the allowed offset are discarded.
	assert.Equal(t, time.Duration(0), medianTime.Offset())
}
