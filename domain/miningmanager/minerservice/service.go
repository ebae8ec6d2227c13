// Package minerservice implements the miner (C7): a pool of worker
// goroutines each running the scan loop from spec.md §4.7, reporting
// combined hash rate through a telemetry goroutine, cooperatively
// cancelled via a single atomic flag.
package minerservice

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/dagconfig"
	"github.com/shaicoin/shaicoin/infrastructure/logger"
)

var log = logger.RegisterSubSystem("MINR")

// TipInfo is the subset of chain-tip state the miner needs: enough to
// build on top of it and to detect when it has moved.
type TipInfo struct {
	Hash   *externalapi.DomainHash
	Header *externalapi.BlockHeader
	Height uint64
}

// BlockTemplate is a candidate block header ready for the scan loop to
// mutate (nonce, cycle) and attempt to solve.
type BlockTemplate struct {
	Header *externalapi.BlockHeader
}

// Chain is the external chain manager the miner reads tip state from
// and submits solved blocks to, per spec.md §6's consumer interfaces.
// Implementations internally serialize concurrent access.
type Chain interface {
	Tip() (*TipInfo, error)
	NodeCount() int
	IsIBD() bool
	UpdateUncommittedBlockStructures(header *externalapi.BlockHeader, prevTip *TipInfo) error
	ProcessNewBlock(header *externalapi.BlockHeader) (accepted bool, err error)
}

// TemplateAssembler is the external block-template assembler, per
// spec.md §6.
type TemplateAssembler interface {
	CreateNewBlock(minerAddress string) (*BlockTemplate, error)
}

// Service owns the worker pool and telemetry goroutine for one mining
// session. A zero Service is not usable; construct with New.
type Service struct {
	chain      Chain
	assembler  TemplateAssembler
	params     *dagconfig.Params
	numWorkers int

	shouldMine  atomic.Bool
	totalHashes atomic.Uint64

	wg    sync.WaitGroup
	runID string
}

// New constructs a Service that will mine on top of chain using
// assembler for templates, under the given network parameters, with
// one worker per numWorkers (callers typically pass runtime.NumCPU()).
func New(chain Chain, assembler TemplateAssembler, params *dagconfig.Params, numWorkers int) *Service {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Service{
		chain:      chain,
		assembler:  assembler,
		params:     params,
		numWorkers: numWorkers,
	}
}

// Start spawns numWorkers scan-loop goroutines plus one telemetry
// goroutine, all mining toward minerAddress. Calling Start while already
// running is a no-op; restarting takes a Stop followed by a Start.
func (s *Service) Start(minerAddress string) {
	if !s.shouldMine.CompareAndSwap(false, true) {
		return
	}
	s.runID = uuid.New().String()
	s.totalHashes.Store(0)

	log.Infof("Starting %d mining workers (run %s)", s.numWorkers, s.runID)

	s.wg.Add(s.numWorkers)
	for i := 0; i < s.numWorkers; i++ {
		workerID := i
		go func() {
			defer s.wg.Done()
			runWorker(s, workerID, minerAddress)
		}()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		runTelemetry(s)
	}()
}

// Stop clears the should_mine flag and blocks until every worker and
// the telemetry goroutine have exited their current loop boundary.
func (s *Service) Stop() {
	if !s.shouldMine.CompareAndSwap(true, false) {
		return
	}
	s.wg.Wait()
	log.Infof("Stopped mining (run %s)", s.runID)
}

// IsMining reports whether the should_mine flag is currently set.
func (s *Service) IsMining() bool {
	return s.shouldMine.Load()
}

// TotalHashes returns the accepted-attempt counter accumulated since
// the current run started, matching spec.md §4.7's total_hashes.
func (s *Service) TotalHashes() uint64 {
	return s.totalHashes.Load()
}
