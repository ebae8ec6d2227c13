package main

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/model/pow"
	"github.com/shaicoin/shaicoin/domain/consensus/processes/difficultymanager"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/consensushashing"
	"github.com/shaicoin/shaicoin/domain/dagconfig"
	"github.com/shaicoin/shaicoin/domain/miningmanager/minerservice"
)

// node is one accepted block, linked back to its parent. Standing in for
// the real block DAG store (transaction validation, UTXO set, the actual
// multi-parent DAG) which is out of scope per spec.md §1 -- this process
// only needs a single best chain to hand the miner a tip and a target.
type node struct {
	hash   *externalapi.DomainHash
	header *externalapi.BlockHeader
	height uint64
	parent *node
}

func (n *node) Height() uint64 { return n.height }
func (n *node) Time() uint32   { return n.header.Time }
func (n *node) Bits() uint32   { return n.header.Bits }
func (n *node) Parent() difficultymanager.BlockInfo {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// localChain is a single-chain, in-process stand-in for the node's real
// chain manager: genesis plus whatever blocks this process itself accepts
// from its own miner. It implements minerservice.Chain.
type localChain struct {
	mu     sync.Mutex
	params *dagconfig.Params
	tip    *node
}

func newLocalChain(params *dagconfig.Params) *localChain {
	genesisHash := consensushashing.HeaderHash(params.GenesisHeader)
	genesis := &node{
		hash:   genesisHash,
		header: params.GenesisHeader,
		height: 0,
	}
	return &localChain{params: params, tip: genesis}
}

func (c *localChain) Tip() (*minerservice.TipInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &minerservice.TipInfo{Hash: c.tip.hash, Header: c.tip.header, Height: c.tip.height}, nil
}

func (c *localChain) NodeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.tip.height) + 1
}

// IsIBD always reports false: this chain has no peers to sync from, so
// there is no initial-block-download state to wait out.
func (c *localChain) IsIBD() bool { return false }

func (c *localChain) UpdateUncommittedBlockStructures(header *externalapi.BlockHeader, prevTip *minerservice.TipInfo) error {
	return nil
}

func (c *localChain) ProcessNewBlock(header *externalapi.BlockHeader) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !header.PrevHash.Equal(c.tip.hash) {
		return false, errors.New("submitted block does not extend the current tip")
	}

	blockHash := consensushashing.HeaderHash(header)
	bodyHash := consensushashing.BodyHash(header)
	checkParams := pow.CheckParams{
		Time:      header.Time,
		BodyHash:  bodyHash,
		BlockHash: blockHash,
		Bits:      header.Bits,
		Cycle:     &header.Cycle,
	}
	if !pow.CheckProofOfWork(checkParams, c.params.PowLimit) {
		return false, errors.New("submitted block fails proof of work")
	}

	newNode := &node{hash: blockHash, header: header, height: c.tip.height + 1, parent: c.tip}
	c.tip = newNode
	return true, nil
}

// localAssembler builds a minimal one-field block template: a header
// extending the current tip with the retargeted bits due at that height.
// Real transaction selection, the merkle root and coinbase payout to
// minerAddress are all out of scope per spec.md §1; MerkleRoot is left
// zeroed, matching an otherwise-empty body.
type localAssembler struct {
	chain  *localChain
	params *dagconfig.Params
}

func newLocalAssembler(chain *localChain, params *dagconfig.Params) *localAssembler {
	return &localAssembler{chain: chain, params: params}
}

func (a *localAssembler) CreateNewBlock(minerAddress string) (*minerservice.BlockTemplate, error) {
	a.chain.mu.Lock()
	tip := a.chain.tip
	a.chain.mu.Unlock()

	now := uint32(time.Now().Unix())
	bits := difficultymanager.NextBits(tip, now, difficultymanager.Params{
		TargetSpacing:   a.params.TargetSpacing,
		PowLimitCompact: a.params.PowLimitCompact,
		PowLimit:        a.params.PowLimit,
		NoRetargeting:   a.params.NoRetargeting,
	})

	header := &externalapi.BlockHeader{
		Version:  1,
		PrevHash: *tip.hash,
		Time:     now,
		Bits:     bits,
	}
	return &minerservice.BlockTemplate{Header: header}, nil
}
