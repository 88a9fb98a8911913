package pow

import (
	"math/big"

	"github.com/senasgr-eth/junkcoin-core/model/blockindex"
	"github.com/senasgr-eth/junkcoin-core/util"
)

var oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)

// CompactToBig converts a compact representation (nBits) to a big.Int.
//
// The representation is similar to IEEE754 floating point: the most
// significant byte is a base 256 exponent, bit 23 is the sign bit, and the
// remaining 23 bits form the mantissa. Since a difficulty target is never
// negative in practice the sign bit only exists to stay compatible with the
// original encoding.
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Exponents of 3 or less pack the value entirely within the mantissa,
	// larger exponents shift it left by (exponent-3) bytes.
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// CompactToBigWithFlags converts a compact representation to the magnitude it
// encodes and additionally reports the sign bit and whether the encoding
// overflows 256 bits. Either flag set, or a zero magnitude, makes the value
// unusable as a consensus target.
func CompactToBigWithFlags(compact uint32) (bn *big.Int, negative bool, overflow bool) {
	mantissa := compact & 0x007fffff
	exponent := uint(compact >> 24)

	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	negative = compact&0x00800000 != 0 && mantissa != 0
	overflow = mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32))
	return
}

// BigToCompact converts a big.Int to a compact representation, rounding the
// mantissa down when the value needs more than 23 bits. Re-encoding a decoded
// compact value always reproduces the same bits.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	// Shift the value right until it fits in the mantissa, or left when it is
	// small enough to be expressed exactly.
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original.
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// The mantissa is signed; avoid setting its sign bit by shifting one more
	// byte into the exponent.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// HashToBig converts a block hash into a big.Int that can be compared against
// a target. The hash bytes are stored in little endian order so they must be
// reversed first.
func HashToBig(hash *util.Hash) *big.Int {
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// GetBlockProof returns the amount of work the block represents, i.e. the
// expected number of hashes required to meet its target: 2^256 / (target+1).
func GetBlockProof(bIndex *blockindex.BlockIndex) *big.Int {
	target, negative, overflow := CompactToBigWithFlags(bIndex.Header.Bits)
	if negative || overflow || target.Sign() == 0 {
		return big.NewInt(0)
	}

	denominator := new(big.Int).Add(target, big.NewInt(1))
	return new(big.Int).Div(oneLsh256, denominator)
}
