package chainparams

import (
	"github.com/senasgr-eth/junkcoin-core/util"
)

// Hashes of the genesis blocks for the supported networks. The genesis block
// itself carries no predecessor; difficulty queries against it always yield
// the proof of work limit.
var (
	MainNetGenesisHash = *util.HashFromString("00000d154c0e4e6f2e5f3b1c6e30c9d734b69c1f76b9c2f5b6b1d14a2f2cf6a3")

	TestNetGenesisHash = *util.HashFromString("00000a2c3e1fb25b2f45a87e9e2c6e0dfb5b4e9d1c350c6b9a7f4d2e8a1b3c4d")

	RegTestGenesisHash = *util.HashFromString("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")
)
