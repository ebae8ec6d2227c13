package hashes

import (
	"math/big"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
)

// ToBig interprets hash as a big-endian unsigned integer the way the
// Bitcoin-lineage codec does: the little-endian byte array is reversed
// before being handed to big.Int.
func ToBig(hash *externalapi.DomainHash) *big.Int {
	buf := *hash.ByteArray()
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// FromBig converts a big-endian big.Int back into a little-endian
// DomainHash, truncating to the low DomainHashSize bytes.
func FromBig(n *big.Int) *externalapi.DomainHash {
	b := n.Bytes()
	var arr [externalapi.DomainHashSize]byte
	// b is big-endian and may be shorter than DomainHashSize; right-align
	// it into arr, then reverse to little-endian.
	offset := externalapi.DomainHashSize - len(b)
	if offset < 0 {
		b = b[-offset:]
		offset = 0
	}
	copy(arr[offset:], b)
	for i := 0; i < externalapi.DomainHashSize/2; i++ {
		arr[i], arr[externalapi.DomainHashSize-1-i] = arr[externalapi.DomainHashSize-1-i], arr[i]
	}
	return externalapi.NewDomainHashFromByteArray(&arr)
}

// XOR returns the bytewise XOR of a and b.
func XOR(a, b *externalapi.DomainHash) *externalapi.DomainHash {
	aBytes, bBytes := a.ByteArray(), b.ByteArray()
	var out [externalapi.DomainHashSize]byte
	for i := range out {
		out[i] = aBytes[i] ^ bBytes[i]
	}
	return externalapi.NewDomainHashFromByteArray(&out)
}
