package hashes

import (
	"crypto/sha256"
	"hash"

	"github.com/pkg/errors"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
)

// HashWriter is used to incrementally hash data without concatenating all
// of the data into a single buffer. It exposes an io.Writer API and a
// Finalize function to get the resulting hash. The underlying hash
// function is SHA-256, this chain's single hashing primitive.
type HashWriter struct {
	hash.Hash
}

// NewHashWriter returns a HashWriter over a fresh SHA-256 state.
func NewHashWriter() HashWriter {
	return HashWriter{Hash: sha256.New()}
}

// InfallibleWrite is just like Write but doesn't return anything.
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error; it's part of the hash.Hash
	// interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash.
func (h HashWriter) Finalize() *externalapi.DomainHash {
	var sum [externalapi.DomainHashSize]byte
	copy(sum[:], h.Sum(sum[:0]))
	return externalapi.NewDomainHashFromByteArray(&sum)
}

// Sha256 is a one-shot convenience wrapper around HashWriter for callers
// that don't need incremental writes.
func Sha256(data []byte) *externalapi.DomainHash {
	w := NewHashWriter()
	w.InfallibleWrite(data)
	return w.Finalize()
}
