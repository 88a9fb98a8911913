package chainparams

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/senasgr-eth/junkcoin-core/model/consensus"
	"github.com/senasgr-eth/junkcoin-core/util"
)

var ActiveNetParams = &MainNetParams

var (
	bigOne = big.NewInt(1)
	// 2^236 -1, the scrypt-range proof of work limit
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
	// 2^255 -1
	regressingPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	testNetPowLimit    = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

type JunkcoinParams struct {
	consensus.Param
	Name             string
	DefaultPort      string
	DNSSeeds         []DNSSeed
	PowLimitBits     uint32
	CoinbaseMaturity uint16

	RequireStandard bool
	RelayNonStdTxs  bool
}

var MainNetParams = JunkcoinParams{
	Param: consensus.Param{
		GenesisHash:            &MainNetGenesisHash,
		SubsidyHalvingInterval: 518400,

		PowLimit:                     mainPowLimit,
		TargetTimespan:               60 * 60 * 4,
		TargetTimePerBlock:           60,
		FPowAllowMinDifficultyBlocks: false,
		FPowNoRetargeting:            false,

		MinDifficultyEffectiveHeight: 0,
		DifficultyProtocolForkHeight: 69360,
		NewRulesActivationHeight:     175000,
		TransitionWindow:             2000,

		// The best chain should have at least this much work.
		MinimumChainWork: *util.HashFromString("0000000000000000000000000000000000000000000000000000004a4b6ae4c2"),
	},

	Name:        "main",
	DefaultPort: "9771",
	DNSSeeds: []DNSSeed{
		{Host: "dnsseed.junkcoin.info", HasFiltering: true},
		{Host: "seed.junk-coin.com", HasFiltering: false},
	},

	PowLimitBits:     0x1e0fffff,
	CoinbaseMaturity: 70,

	RequireStandard: true,
	RelayNonStdTxs:  false,
}

var TestNetParams = JunkcoinParams{
	Param: consensus.Param{
		GenesisHash:            &TestNetGenesisHash,
		SubsidyHalvingInterval: 518400,

		PowLimit:                     testNetPowLimit,
		TargetTimespan:               60 * 60 * 4,
		TargetTimePerBlock:           60,
		FPowAllowMinDifficultyBlocks: true,
		FPowNoRetargeting:            false,

		// The reset protocol switch; minimum difficulty blocks only apply
		// from here on.
		MinDifficultyEffectiveHeight: 69360,
		DifficultyProtocolForkHeight: 69360,
		NewRulesActivationHeight:     175000,
		TransitionWindow:             2000,

		MinimumChainWork: *util.HashFromString("0000000000000000000000000000000000000000000000000000000000100010"),
	},

	Name:        "test",
	DefaultPort: "19771",
	DNSSeeds: []DNSSeed{
		{Host: "testnet-dnsseed.junkcoin.info", HasFiltering: true},
	},

	PowLimitBits:     0x1e0fffff,
	CoinbaseMaturity: 70,

	RequireStandard: false,
	RelayNonStdTxs:  true,
}

var RegressionNetParams = JunkcoinParams{
	Param: consensus.Param{
		GenesisHash:            &RegTestGenesisHash,
		SubsidyHalvingInterval: 150,

		PowLimit:                     regressingPowLimit,
		TargetTimespan:               60 * 60 * 4,
		TargetTimePerBlock:           60,
		FPowAllowMinDifficultyBlocks: true,
		FPowNoRetargeting:            true,

		MinDifficultyEffectiveHeight: 0,
		DifficultyProtocolForkHeight: 69360,
		NewRulesActivationHeight:     175000,
		TransitionWindow:             2000,

		MinimumChainWork: *util.HashFromString("00"),
	},

	Name:        "regtest",
	DefaultPort: "19444",
	DNSSeeds:    []DNSSeed{},

	PowLimitBits:     0x207fffff,
	CoinbaseMaturity: 70,

	RequireStandard: false,
	RelayNonStdTxs:  true,
}

var RegisteredNets = make(map[string]struct{})

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}

func Register(params *JunkcoinParams) error {
	if _, ok := RegisteredNets[params.Name]; ok {
		return errors.Errorf("duplicate junkcoin network: %s", params.Name)
	}
	RegisteredNets[params.Name] = struct{}{}
	return nil
}

func mustRegister(params *JunkcoinParams) {
	if err := Register(params); err != nil {
		panic(errors.Wrap(err, "failed to register network"))
	}
}
