// Package consensushashing computes the two header digests specified for
// this chain: the cycle hash (the canonical block identifier) and the body
// hash (the graph seed), per spec.md §4.2.
package consensushashing

import (
	"io"

	"github.com/pkg/errors"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hashes"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/serialization"
)

// HeaderHash returns sha256(serialize(header.Cycle)) — the canonical block
// identifier for this chain. Unlike body hashes, it only ever covers the
// cycle array itself.
func HeaderHash(header *externalapi.BlockHeader) *externalapi.DomainHash {
	return CycleHash(&header.Cycle)
}

// CycleHash returns sha256(serialize(cycle)), the value §4.5's variant V1
// check computes directly from the candidate cycle rather than taking it
// as a precomputed block hash parameter. It is numerically identical to
// HeaderHash for the header the cycle was taken from.
func CycleHash(cycle *externalapi.Cycle) *externalapi.DomainHash {
	writer := hashes.NewHashWriter()
	if err := serialization.WriteElement(writer, *cycle); err != nil {
		panic(errors.Wrap(err, "this should never happen. SHA256's digest should never return an error"))
	}
	return writer.Finalize()
}

// BodyHash returns sha256(serialize(header)) with Cycle replaced by the
// all-sentinel array and, for historical headers, RandomXMix zeroed. This
// is the value used to seed the graph, deliberately excluding the cycle so
// the graph a miner must solve against doesn't depend on the solution
// being searched for.
func BodyHash(header *externalapi.BlockHeader) *externalapi.DomainHash {
	writer := hashes.NewHashWriter()
	if err := serializeBody(writer, header.WithoutCycleAndMix()); err != nil {
		panic(errors.Wrap(err, "this should never happen. SHA256's digest should never return an error"))
	}
	return writer.Finalize()
}

func serializeBody(w io.Writer, header *externalapi.BlockHeader) error {
	if err := serialization.WriteElements(w,
		header.Version, header.PrevHash, header.MerkleRoot, header.Time, header.Bits, header.Nonce,
	); err != nil {
		return err
	}
	if header.RandomXMix != nil {
		if err := serialization.WriteElement(w, header.RandomXMix); err != nil {
			return err
		}
	}
	return serialization.WriteElement(w, header.Cycle)
}
