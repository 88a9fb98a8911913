package block

import (
	"bytes"
	"testing"

	"github.com/senasgr-eth/junkcoin-core/util"
)

func TestBlockHeaderSerializeRoundTrip(t *testing.T) {
	header := NewBlockHeader()
	header.Version = 1
	header.HashPrevBlock = *util.HashFromString("0000000000000000000740e6d6defb455a045d87a4b05a77f84df382a0e6e16b")
	header.MerkleRoot = *util.HashFromString("4d5ea64cd05acab9f518cae4e8ad9ba964ab86340764f0f17c09a2cbeef5d4e6")
	header.Time = 1390000000
	header.Bits = 0x1e0fffff
	header.Nonce = 99621

	buf := bytes.NewBuffer(nil)
	if err := header.Serialize(buf); err != nil {
		t.Error(err)
	}
	if buf.Len() != blockHeaderLength {
		t.Errorf("serialized header should be %d bytes, got %d", blockHeaderLength, buf.Len())
	}

	var decoded BlockHeader
	if err := decoded.Unserialize(buf); err != nil {
		t.Error(err)
	}
	if decoded != *header {
		t.Errorf("Unserialize after Serialize returns differently, header=%v, decoded=%v",
			header, &decoded)
	}
}

func TestBlockHeaderGetHash(t *testing.T) {
	header := NewBlockHeader()
	header.Version = 1
	header.Time = 1390000000
	header.Bits = 0x1e0fffff
	header.Nonce = 99621

	hash1 := header.GetHash()
	hash2 := header.GetHash()
	if !hash1.IsEqual(&hash2) {
		t.Errorf("the hash of an unchanged header must be stable")
	}

	header.Nonce++
	hash3 := header.GetHash()
	if hash1.IsEqual(&hash3) {
		t.Errorf("a different nonce must change the hash")
	}
}

func TestBlockHeaderIsNull(t *testing.T) {
	header := NewBlockHeader()
	if !header.IsNull() {
		t.Errorf("a fresh header should be null")
	}
	header.Bits = 0x1e0fffff
	if header.IsNull() {
		t.Errorf("a header with bits set should not be null")
	}
	header.SetNull()
	if !header.IsNull() {
		t.Errorf("SetNull should reset the header")
	}
}
