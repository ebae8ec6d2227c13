package minerservice

import (
	"math/big"
	"math/rand"
	"time"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/model/pow"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/consensushashing"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/graph"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hamiltonian"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hashes"
)

// solveDeadline and templateTimeout implement spec.md §4.7 step 5/6's
// per-variant time budgets: 3s/1s per cycle-solver attempt, 60s/15s per
// template before it is abandoned regardless of staleness.
func solveDeadline(variant pow.Variant) time.Duration {
	if variant == pow.VariantV3 {
		return 1 * time.Second
	}
	return 3 * time.Second
}

func templateTimeout(variant pow.Variant) time.Duration {
	if variant == pow.VariantV1 {
		return 60 * time.Second
	}
	return 15 * time.Second
}

// runWorker is one scan-loop thread: spec.md §4.7 steps 1-7, looping
// until the service's should_mine flag is cleared.
func runWorker(s *Service, workerID int, minerAddress string) {
	for s.IsMining() {
		if s.chain.NodeCount() == 0 || s.chain.IsIBD() {
			time.Sleep(1 * time.Second)
			continue
		}

		tip, err := s.chain.Tip()
		if err != nil || tip == nil {
			log.Errorf("worker %d: failed to read chain tip: %v", workerID, err)
			return
		}

		template, err := s.assembler.CreateNewBlock(minerAddress)
		if err != nil || template == nil {
			log.Warnf("worker %d: no block template available, stopping", workerID)
			return
		}

		mineTemplate(s, workerID, tip, template)
	}
}

// mineTemplate runs the scan loop (step 5) against one template until
// it succeeds, goes stale, or times out (step 6), submitting on success
// (step 7).
func mineTemplate(s *Service, workerID int, tip *TipInfo, template *BlockTemplate) {
	header := template.Header
	variant := pow.VariantForTime(header.Time)
	deadline := solveDeadline(variant)
	timeout := templateTimeout(variant)

	nonce := rand.Uint32()
	startedAt := time.Now()

	for s.IsMining() {
		current, err := s.chain.Tip()
		if err != nil || current == nil || !header.PrevHash.Equal(current.Hash) || time.Since(startedAt) > timeout {
			return
		}

		nonce++
		header.Nonce = nonce

		cycle, ok := attemptCycle(header, variant, deadline)
		s.totalHashes.Add(1)
		if !ok {
			continue
		}

		header.Cycle = cycle
		if !verifyFinal(header, s.params.PowLimit) {
			continue
		}

		submitBlock(s, workerID, header, tip)
		return
	}
}

// attemptCycle builds the current-variant graph for header and tries to
// solve a Hamiltonian cycle within deadline.
func attemptCycle(header *externalapi.BlockHeader, variant pow.Variant, deadline time.Duration) (externalapi.Cycle, bool) {
	bodyHash := consensushashing.BodyHash(header)

	var seed *externalapi.DomainHash
	var n uint16
	var g *graph.Graph

	switch variant {
	case pow.VariantV1:
		seed = hashes.XOR(bodyHash, hashes.Sha256(bodyHash.ByteSlice()))
		n = graph.GridSizeV1(seed)
		g = graph.BuildV1(seed, n)
	case pow.VariantV2:
		seed = bodyHash
		n = graph.GridSizeV1(seed)
		g = graph.BuildV1(seed, n)
	default:
		seed = bodyHash
		n = graph.GridSizeV2(seed)
		g = graph.BuildV2(seed, n)
	}

	return hamiltonian.Solve(g, deadline)
}

// verifyFinal re-runs the consensus PoW check against the fully
// assembled header before submission, the same way the original CPU
// miner double-checks its own solution rather than trusting the search.
func verifyFinal(header *externalapi.BlockHeader, powLimit *big.Int) bool {
	bodyHash := consensushashing.BodyHash(header)
	blockHash := consensushashing.HeaderHash(header)

	params := pow.CheckParams{
		Time:      header.Time,
		BodyHash:  bodyHash,
		BlockHash: blockHash,
		Bits:      header.Bits,
		Cycle:     &header.Cycle,
	}
	return pow.CheckProofOfWork(params, powLimit)
}

func submitBlock(s *Service, workerID int, header *externalapi.BlockHeader, tip *TipInfo) {
	blockHash := consensushashing.HeaderHash(header)
	log.Infof("worker %d: found block %s", workerID, blockHash)

	freshTip, err := s.chain.Tip()
	if err != nil || freshTip == nil || !freshTip.Hash.Equal(tip.Hash) {
		log.Debugf("worker %d: tip advanced before submission, discarding", workerID)
		return
	}

	if err := s.chain.UpdateUncommittedBlockStructures(header, tip); err != nil {
		log.Errorf("worker %d: failed to update block structures: %v", workerID, err)
		return
	}

	accepted, err := s.chain.ProcessNewBlock(header)
	if err != nil {
		log.Warnf("worker %d: block %s rejected: %v", workerID, blockHash, err)
		return
	}
	if !accepted {
		log.Warnf("worker %d: block %s not accepted", workerID, blockHash)
	}
}
