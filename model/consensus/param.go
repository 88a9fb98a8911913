package consensus

import (
	"math/big"

	"github.com/senasgr-eth/junkcoin-core/util"
)

type Param struct {
	GenesisHash *util.Hash

	SubsidyHalvingInterval int32

	// Proof of work parameters
	PowLimit                     *big.Int
	FPowAllowMinDifficultyBlocks bool
	FPowNoRetargeting            bool
	// Target spacing and timespan in seconds.
	TargetTimePerBlock int64
	TargetTimespan     int64

	// Height from which the minimum difficulty exception may apply on chains
	// that allow it (the reset protocol switch).
	MinDifficultyEffectiveHeight int32

	// Height at which the adjustment interval drops from 12 timespans worth
	// of blocks to a single timespan worth.
	DifficultyProtocolForkHeight int32

	// Height at which the interpolated difficulty limits activate and the
	// length of the window over which they phase in.
	NewRulesActivationHeight int32
	TransitionWindow         int32

	// The best chain should have at least this much work.
	MinimumChainWork util.Hash
}

// DifficultyAdjustmentInterval returns the number of blocks between
// retargets for the block at the given height. Before the protocol fork the
// chain retargets once per 12 timespans worth of blocks.
func (pm *Param) DifficultyAdjustmentInterval(height int32) int64 {
	return pm.TargetTimespanForHeight(height) / pm.TargetTimePerBlock
}

// TargetTimespanForHeight returns the timespan one adjustment interval is
// expected to cover for the block at the given height.
func (pm *Param) TargetTimespanForHeight(height int32) int64 {
	if height >= pm.DifficultyProtocolForkHeight {
		return pm.TargetTimespan
	}
	return pm.TargetTimespan * 12
}
