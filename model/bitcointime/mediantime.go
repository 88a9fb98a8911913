package bitcointime

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/astaxie/beego/logs"
)

const (
	// MaxAllowedOffsetSecs is the largest peer-derived clock offset that will
	// be applied; medians beyond it are ignored.
	MaxAllowedOffsetSecs = 70 * 60
	// SimilarTimeSecs is how close a sample must be to local time to count as
	// agreeing with it.
	SimilarTimeSecs = 5 * 60
)

// MaxMedianTimeEntries is the number of peer samples retained for the median.
var MaxMedianTimeEntries = 200

// MedianTime tracks the median offset between the local clock and the clocks
// reported by peers, providing the network-adjusted time used by the
// future-drift consensus rule.
type MedianTime struct {
	lock               sync.Mutex
	knownIDs           map[string]struct{}
	offsets            []int64
	offsetSecs         int64
	invalidTimeChecked bool
}

// AdjustedTime returns the local time corrected by the current median offset.
func (medianTime *MedianTime) AdjustedTime() time.Time {
	medianTime.lock.Lock()
	defer medianTime.lock.Unlock()
	now := time.Unix(time.Now().Unix(), 0)
	return now.Add(time.Duration(medianTime.offsetSecs) * time.Second)
}

// AddTimeSample records the clock reading of a peer. Each source is only
// counted once; the median is recalculated once at least five samples with an
// odd count are present.
func (medianTime *MedianTime) AddTimeSample(sourceID string, timeVal time.Time) {
	medianTime.lock.Lock()
	defer medianTime.lock.Unlock()
	if _, exists := medianTime.knownIDs[sourceID]; exists {
		return
	}
	medianTime.knownIDs[sourceID] = struct{}{}

	now := time.Unix(time.Now().Unix(), 0)
	offsetSecs := int64(timeVal.Sub(now).Seconds())
	numOffsets := len(medianTime.offsets)
	if numOffsets == MaxMedianTimeEntries && MaxMedianTimeEntries > 0 {
		medianTime.offsets = medianTime.offsets[1:]
		numOffsets--
	}
	medianTime.offsets = append(medianTime.offsets, offsetSecs)
	numOffsets++
	sortedOffsets := make([]int64, numOffsets)
	copy(sortedOffsets, medianTime.offsets)
	sort.Slice(sortedOffsets, func(i, j int) bool {
		return sortedOffsets[i] < sortedOffsets[j]
	})
	offsetDuration := time.Duration(offsetSecs) * time.Second
	logs.Debug("added time sample of %v (total:%v)", offsetDuration, numOffsets)

	if numOffsets < 5 || numOffsets&0x01 != 1 {
		return
	}
	median := sortedOffsets[numOffsets/2]
	if math.Abs(float64(median)) < MaxAllowedOffsetSecs {
		medianTime.offsetSecs = median
	} else {
		medianTime.offsetSecs = 0
		if !medianTime.invalidTimeChecked {
			medianTime.invalidTimeChecked = true
			var hasCloseTime bool
			for _, offset := range sortedOffsets {
				if math.Abs(float64(offset)) < SimilarTimeSecs {
					hasCloseTime = true
					break
				}
			}
			if !hasCloseTime {
				logs.Warn("Please check your date and time are correct!")
			}
		}
	}
}

// Offset returns the currently applied median clock offset.
func (medianTime *MedianTime) Offset() time.Duration {
	medianTime.lock.Lock()
	defer medianTime.lock.Unlock()
	return time.Duration(medianTime.offsetSecs) * time.Second
}

func NewMedianTime() *MedianTime {
	medianTime := MedianTime{
		knownIDs: make(map[string]struct{}),
		offsets:  make([]int64, 0, MaxMedianTimeEntries),
	}
	return &medianTime
}
