package util

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleSha256Hash(t *testing.T) {
	// sha256(sha256("")) is a fixed vector.
	hash := DoubleSha256Hash(nil)
	assert.Equal(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		hex.EncodeToString(hash[:]))
}

func TestHashStringRoundTrip(t *testing.T) {
	str := "0000000000000000000740e6d6defb455a045d87a4b05a77f84df382a0e6e16b"
	hash, err := GetHashFromStr(str)
	assert.NoError(t, err)
	assert.Equal(t, str, hash.ToString())

	// Short strings are zero padded on the left of the display form.
	hash, err = GetHashFromStr("12")
	assert.NoError(t, err)
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000012",
		hash.ToString())
	assert.Equal(t, byte(0x12), hash[0])

	_, err = GetHashFromStr("0000000000000000000740e6d6defb455a045d87a4b05a77f84df382a0e6e16b00")
	assert.Error(t, err)

	_, err = GetHashFromStr("not a hash")
	assert.Error(t, err)
}

func TestHashSerialize(t *testing.T) {
	hash := HashFromString("0000000000000000000740e6d6defb455a045d87a4b05a77f84df382a0e6e16b")
	buf := bytes.NewBuffer(nil)
	n, err := hash.Serialize(buf)
	assert.NoError(t, err)
	assert.Equal(t, Hash256Size, n)

	var decoded Hash
	n, err = decoded.Unserialize(buf)
	assert.NoError(t, err)
	assert.Equal(t, Hash256Size, n)
	assert.True(t, hash.IsEqual(&decoded))
}

func TestHashCompare(t *testing.T) {
	small := HashFromString("01")
	large := HashFromString("02")

	assert.Equal(t, -1, small.Cmp(large))
	assert.Equal(t, 1, large.Cmp(small))
	assert.Equal(t, 0, small.Cmp(small))

	var nilHash *Hash
	assert.Equal(t, 0, nilHash.Cmp(nil))
	assert.Equal(t, -1, nilHash.Cmp(small))
	assert.Equal(t, 1, small.Cmp(nil))

	assert.True(t, nilHash.IsEqual(nil))
	assert.False(t, nilHash.IsEqual(small))
	assert.False(t, small.IsEqual(nil))
}

func TestHashIsNull(t *testing.T) {
	var hash Hash
	assert.True(t, hash.IsNull())
	hash[13] = 1
	assert.False(t, hash.IsNull())
}

func TestHashSetBytes(t *testing.T) {
	var hash Hash
	assert.Error(t, hash.SetBytes([]byte{1, 2, 3}))
	assert.NoError(t, hash.SetBytes(make([]byte, Hash256Size)))
}
