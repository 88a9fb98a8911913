package util

import (
	"time"
)

var mockTime int64

// TimeSource supplies the network time offset derived from peer samples.
type TimeSource interface {
	Offset() time.Duration
}

var timeSource TimeSource

func GetTime() int64 {
	if mockTime > 0 {
		return mockTime
	}
	return time.Now().Unix()
}

// SetMockTime pins GetTime to a fixed value. Passing 0 restores wall time.
func SetMockTime(time int64) {
	mockTime = time
}

func SetTimeSource(source TimeSource) {
	timeSource = source
}

// GetAdjustedTime returns the local clock corrected by the median offset of
// the connected peers' clocks.
func GetAdjustedTime() int64 {
	return GetTime() + GetTimeOffset()
}

func GetTimeOffset() int64 {
	if timeSource == nil {
		return 0
	}
	return int64(timeSource.Offset().Seconds())
}
