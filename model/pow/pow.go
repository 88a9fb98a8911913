package pow

import (
	"math/big"

	"github.com/senasgr-eth/junkcoin-core/log"
	"github.com/senasgr-eth/junkcoin-core/model/block"
	"github.com/senasgr-eth/junkcoin-core/model/blockindex"
	"github.com/senasgr-eth/junkcoin-core/model/chainparams"
	"github.com/senasgr-eth/junkcoin-core/util"
)

type Pow struct{}

// MinDifficultyPolicy decides whether a candidate block may be mined at the
// proof of work limit instead of the regular required difficulty.
type MinDifficultyPolicy func(indexPrev *blockindex.BlockIndex, blHeader *block.BlockHeader,
	params *chainparams.JunkcoinParams) bool

// DigishieldMinDifficultyPolicy gates the digishield variant of the minimum
// difficulty exception. It shares the contract of AllowMinDifficultyForBlock
// and defaults to it; swap it out when the digishield rule diverges.
var DigishieldMinDifficultyPolicy MinDifficultyPolicy = AllowMinDifficultyForBlock

// ValidateBlockTime checks a candidate timestamp against the median time of
// its ancestors and against network-adjusted time, to prevent time
// manipulation. A query without a candidate header passes trivially.
func ValidateBlockTime(indexPrev *blockindex.BlockIndex, blHeader *block.BlockHeader) bool {
	if blHeader == nil {
		return true
	}

	// Too old compared to the previous block's median time.
	if blHeader.GetBlockTime() <= indexPrev.GetMedianTimePast() {
		return false
	}

	// Too far in the future (max 2 hours past network-adjusted time).
	if blHeader.GetBlockTime() > util.GetAdjustedTime()+2*60*60 {
		return false
	}

	return true
}

// AllowMinDifficultyForBlock determines whether the minimum difficulty
// setting applies to the given candidate block.
func AllowMinDifficultyForBlock(indexPrev *blockindex.BlockIndex, blHeader *block.BlockHeader,
	params *chainparams.JunkcoinParams) bool {
	if !params.FPowAllowMinDifficultyBlocks {
		return false
	}

	if blHeader == nil {
		return false
	}

	// The exception only applies from the reset protocol switch on.
	if indexPrev.Height < params.MinDifficultyEffectiveHeight {
		return false
	}

	// Only allow min difficulty when block production has stalled well past
	// the target spacing; 6x instead of the usual 2x.
	return blHeader.GetBlockTime() > int64(indexPrev.GetBlockTime())+params.TargetTimePerBlock*6
}

// GetTransitionFactor returns how far the new difficulty limits have phased
// in at the given height: 0 below the activation height, 1 at and above
// activation plus the transition window, linear in between.
func GetTransitionFactor(height int32, params *chainparams.JunkcoinParams) float64 {
	if height < params.NewRulesActivationHeight {
		return 0
	}
	if height >= params.NewRulesActivationHeight+params.TransitionWindow {
		return 1
	}
	return float64(height-params.NewRulesActivationHeight) / float64(params.TransitionWindow)
}

// GetDifficultyLimits derives the clamp bounds for the actual timespan of one
// adjustment interval. Before the new rules activate the legacy bounds of a
// quarter and four times the target timespan apply; afterwards a tighter
// minimum phases in by the transition factor, relaxing again in steps of 5000
// blocks until it converges back to the legacy bounds.
func GetDifficultyLimits(height int32, factor float64, targetTimespan int64,
	params *chainparams.JunkcoinParams) (minTimespan, maxTimespan int64) {
	baselineMin := targetTimespan / 4
	baselineMax := targetTimespan * 4

	if height < params.NewRulesActivationHeight {
		return baselineMin, baselineMax
	}

	var targetMin, targetMax int64
	switch {
	case height > params.NewRulesActivationHeight+10000:
		targetMin, targetMax = targetTimespan/4, targetTimespan*4
	case height > params.NewRulesActivationHeight+5000:
		targetMin, targetMax = targetTimespan/8, targetTimespan*4
	default:
		targetMin, targetMax = targetTimespan/16, targetTimespan*4
	}

	minTimespan = baselineMin + int64(float64(targetMin-baselineMin)*factor)
	maxTimespan = baselineMax + int64(float64(targetMax-baselineMax)*factor)
	return
}

// GetNextWorkRequired returns the required nBits for the candidate block
// following indexPrev.
func (pow *Pow) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, blHeader *block.BlockHeader,
	params *chainparams.JunkcoinParams) uint32 {
	proofOfWorkLimit := BigToCompact(params.PowLimit)

	// Genesis block.
	if indexPrev == nil {
		return proofOfWorkLimit
	}

	// Force the maximum difficulty when timestamps look manipulated.
	if !ValidateBlockTime(indexPrev, blHeader) {
		return proofOfWorkLimit
	}

	// Special rules for minimum difficulty blocks with digishield.
	if DigishieldMinDifficultyPolicy(indexPrev, blHeader, params) {
		return proofOfWorkLimit
	}

	// Only change once per difficulty adjustment interval. The interval
	// shortens from 12 timespans worth of blocks to one at the protocol fork.
	height := indexPrev.Height + 1
	difficultyAdjustmentInterval := params.DifficultyAdjustmentInterval(height)

	if int64(height)%difficultyAdjustmentInterval != 0 {
		if params.FPowAllowMinDifficultyBlocks {
			// Special difficulty rule for testnet: if the new block's
			// timestamp is more than 6x target spacing then allow mining of a
			// min-difficulty block.
			if blHeader != nil &&
				blHeader.GetBlockTime() > int64(indexPrev.GetBlockTime())+params.TargetTimePerBlock*6 {
				return proofOfWorkLimit
			}
			// Return the last non-special-min-difficulty-rules-block. The
			// interval is recomputed for every block walked, so a walk that
			// crosses the protocol fork uses each era's own interval.
			index := indexPrev
			for index.Prev != nil &&
				int64(index.Height)%params.DifficultyAdjustmentInterval(index.Height) != 0 &&
				index.Header.Bits == proofOfWorkLimit {
				index = index.Prev
			}
			return index.Header.Bits
		}
		return indexPrev.Header.Bits
	}

	// Go back by what we want to be one timespan worth of blocks.
	blocksToGoBack := difficultyAdjustmentInterval - 1
	if int64(height) != difficultyAdjustmentInterval {
		blocksToGoBack = difficultyAdjustmentInterval
	}

	heightFirst := indexPrev.Height - int32(blocksToGoBack)
	if heightFirst < 0 {
		panic("the first block height of the adjustment interval should not be negative")
	}
	indexFirst := indexPrev.GetAncestor(heightFirst)
	if indexFirst == nil {
		panic("the blockIndex should not equal nil")
	}

	next := pow.CalculateNextWorkRequired(indexPrev, int64(indexFirst.GetBlockTime()), params)

	// Never propagate a jump outside the permitted envelope.
	if !PermittedDifficultyTransition(params, height, indexPrev.Header.Bits, next) {
		log.Warn("difficulty transition %08x -> %08x at height %d rejected", indexPrev.Header.Bits, next, height)
		return indexPrev.Header.Bits
	}
	return next
}

// CalculateNextWorkRequired computes the retargeted nBits for the candidate
// block following indexLast, given the timestamp of the first block of the
// adjustment interval.
func (pow *Pow) CalculateNextWorkRequired(indexLast *blockindex.BlockIndex, firstBlockTime int64,
	params *chainparams.JunkcoinParams) uint32 {
	height := indexLast.Height + 1
	targetTimespan := params.TargetTimespanForHeight(height)
	minTimespan, maxTimespan := GetDifficultyLimits(height, GetTransitionFactor(height, params),
		targetTimespan, params)

	return pow.calculateNextWorkRequired(indexLast, firstBlockTime, targetTimespan,
		minTimespan, maxTimespan, params)
}

func (pow *Pow) calculateNextWorkRequired(indexLast *blockindex.BlockIndex, firstBlockTime int64,
	targetTimespan, minTimespan, maxTimespan int64, params *chainparams.JunkcoinParams) uint32 {
	// Special rule for regTest: we never retarget.
	if params.FPowNoRetargeting {
		return indexLast.Header.Bits
	}

	// Limit adjustment step.
	actualTimespan := int64(indexLast.GetBlockTime()) - firstBlockTime
	if actualTimespan < minTimespan {
		actualTimespan = minTimespan
	}
	if actualTimespan > maxTimespan {
		actualTimespan = maxTimespan
	}

	// Retarget, multiplying before dividing so the intermediate keeps full
	// precision; slower block production raises the target.
	bnNew := CompactToBig(indexLast.Header.Bits)
	bnNew.Mul(bnNew, big.NewInt(actualTimespan))
	bnNew.Div(bnNew, big.NewInt(targetTimespan))

	// Make sure we do not exceed the proof of work limit.
	if bnNew.Cmp(params.PowLimit) > 0 {
		bnNew = params.PowLimit
	}

	return BigToCompact(bnNew)
}

// PermittedDifficultyTransition independently re-validates that the observed
// difficulty change between two consecutive blocks stays inside the
// adjustment envelope the retarget could have produced. Off adjustment
// boundaries the difficulty must not change at all.
func PermittedDifficultyTransition(params *chainparams.JunkcoinParams, height int32,
	oldBits, newBits uint32) bool {
	// Chains that accept minimum difficulty blocks see arbitrary swings.
	if params.FPowAllowMinDifficultyBlocks {
		return true
	}

	targetTimespan := params.TargetTimespanForHeight(height)
	interval := targetTimespan / params.TargetTimePerBlock
	if int64(height)%interval != 0 {
		return oldBits == newBits
	}

	observed, negative, overflow := CompactToBigWithFlags(newBits)
	if negative || overflow || observed.Sign() == 0 {
		return false
	}

	minTimespan, maxTimespan := GetDifficultyLimits(height, GetTransitionFactor(height, params),
		targetTimespan, params)

	// Both bounds are round-tripped through the compact encoding so they
	// carry the same precision loss the retarget itself exhibits; comparing
	// an exact bound against a rounded candidate would falsely reject.
	largest := CompactToBig(oldBits)
	largest.Mul(largest, big.NewInt(maxTimespan))
	largest.Div(largest, big.NewInt(targetTimespan))
	if largest.Cmp(params.PowLimit) > 0 {
		largest = new(big.Int).Set(params.PowLimit)
	}
	largest = CompactToBig(BigToCompact(largest))

	smallest := CompactToBig(oldBits)
	smallest.Mul(smallest, big.NewInt(minTimespan))
	smallest.Div(smallest, big.NewInt(targetTimespan))
	if smallest.Cmp(params.PowLimit) > 0 {
		smallest = new(big.Int).Set(params.PowLimit)
	}
	smallest = CompactToBig(BigToCompact(smallest))

	return observed.Cmp(smallest) >= 0 && observed.Cmp(largest) <= 0
}

// CheckProofOfWork checks whether a block hash satisfies the proof of work
// requirement specified by nBits.
func (pow *Pow) CheckProofOfWork(hash *util.Hash, bits uint32, params *chainparams.JunkcoinParams) bool {
	target, negative, overflow := CompactToBigWithFlags(bits)

	// Check range.
	if negative || target.Sign() == 0 || overflow || target.Cmp(params.PowLimit) > 0 {
		return false
	}

	// Check proof of work matches claimed amount.
	if HashToBig(hash).Cmp(target) > 0 {
		log.Warn("check proof of work failed: %s > %064x", hash.ToString(), target)
		return false
	}

	return true
}
