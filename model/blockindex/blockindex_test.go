package blockindex

import (
	"math/rand"
	"testing"

	"github.com/senasgr-eth/junkcoin-core/model/block"
)

const skipListLength = 30000

func TestBlockIndexGetAncestor(t *testing.T) {
	vIndex := make([]BlockIndex, skipListLength)

	for i := 0; i < skipListLength; i++ {
		vIndex[i].Height = int32(i)
		if i == 0 {
			vIndex[i].Prev = nil
		} else {
			vIndex[i].Prev = &vIndex[i-1]
		}
		vIndex[i].BuildSkip()
	}

	for i := 1; i < skipListLength; i++ {
		if vIndex[i].Skip != &vIndex[vIndex[i].Skip.Height] {
			t.Errorf("the two element addr should be equal, expect %p, but get value : %p",
				vIndex[i].Skip, &vIndex[vIndex[i].Skip.Height])
			return
		}
		if vIndex[i].Skip.Height >= int32(i) {
			t.Errorf("the skip height : %d should be less the index : %d",
				vIndex[i].Skip.Height, i)
			return
		}
	}

	tmpRand := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		from := tmpRand.Int31n(skipListLength - 1)
		to := tmpRand.Int31n(from + 1)

		if vIndex[skipListLength-1].GetAncestor(from) != &vIndex[from] {
			t.Errorf("the two element should be equal, left value : %p, right value : %p",
				vIndex[skipListLength-1].GetAncestor(from), &vIndex[from])
			return
		}
		if vIndex[from].GetAncestor(to) != &vIndex[to] {
			t.Errorf("the two element should be equal, left value : %p, right value : %p",
				vIndex[from].GetAncestor(to), &vIndex[to])
			return
		}
		if vIndex[from].GetAncestor(0) != &vIndex[0] {
			t.Errorf("the two element should be equal, left value : %p, right value : %p",
				vIndex[from].GetAncestor(0), &vIndex[0])
			return
		}
	}

	if vIndex[100].GetAncestor(101) != nil {
		t.Errorf("an ancestor above the block's own height should be nil")
	}
	if vIndex[100].GetAncestor(-1) != nil {
		t.Errorf("a negative ancestor height should be nil")
	}
}

func TestGetMedianTimePast(t *testing.T) {
	blocksMain := make([]BlockIndex, medianTimeSpan)
	times := [medianTimeSpan]uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	for i := 0; i < medianTimeSpan; i++ {
		blocksMain[i].Header.Time = times[i]
		if i > 0 {
			blocksMain[i].Prev = &blocksMain[i-1]
		} else {
			blocksMain[i].Prev = nil
		}
	}
	ret := blocksMain[medianTimeSpan-1].GetMedianTimePast()
	want := int64(4)
	if ret != want {
		t.Errorf("GetMedianTimePast is wrong, got %d, want %d", ret, want)
	}
	ret = blocksMain[medianTimeSpan-4].GetMedianTimePast()
	want = int64(4)
	if ret != want {
		t.Errorf("GetMedianTimePast is wrong, got %d, want %d", ret, want)
	}
	// A single block is its own median.
	if ret := blocksMain[0].GetMedianTimePast(); ret != 3 {
		t.Errorf("GetMedianTimePast is wrong, got %d, want 3", ret)
	}
}

func TestGetBlockTimeMax(t *testing.T) {
	var bIndex BlockIndex
	testValue := uint32(1324)
	bIndex.TimeMax = testValue
	if bIndex.GetBlockTimeMax() != testValue {
		t.Errorf("GetBlockTimeMax is wrong")
	}
}

func TestGetBlockHeader(t *testing.T) {
	var bIndex BlockIndex
	if bIndex.GetBlockHeader() != &bIndex.Header {
		t.Errorf("GetBlockHeader is wrong")
	}
}

func TestNewBlockIndex(t *testing.T) {
	var bHeader block.BlockHeader
	bHeader.Time = 1390000000
	bHeader.Bits = 0x1e0fffff
	bIndex := NewBlockIndex(&bHeader)
	if bIndex.Header != bHeader || bIndex.GetBlockTimeMax() != 0 ||
		bIndex.Prev != nil || bIndex.Height != 0 {
		t.Errorf("NewBlockIndex is wrong")
	}
	if bIndex.GetBlockTime() != bHeader.Time {
		t.Errorf("GetBlockTime is wrong, got %d, want %d", bIndex.GetBlockTime(), bHeader.Time)
	}
}
