package hashes

import "github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"

// cmp compares two hashes and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
func cmp(a, b *externalapi.DomainHash) int {
	aBytes, bBytes := a.ByteArray(), b.ByteArray()
	// Compared backwards because the hash is stored little-endian.
	for i := externalapi.DomainHashSize - 1; i >= 0; i-- {
		switch {
		case aBytes[i] < bBytes[i]:
			return -1
		case aBytes[i] > bBytes[i]:
			return 1
		}
	}
	return 0
}

// Less returns true iff hash a is less than hash b.
func Less(a, b *externalapi.DomainHash) bool {
	return cmp(a, b) < 0
}

// LessOrEqual returns true iff hash a is less than or equal to hash b.
func LessOrEqual(a, b *externalapi.DomainHash) bool {
	return cmp(a, b) <= 0
}
