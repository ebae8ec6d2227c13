package minerservice_test

import (
	"testing"
	"time"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/dagconfig"
	"github.com/shaicoin/shaicoin/domain/miningmanager/minerservice"
)

// ibdChain reports itself as perpetually in initial block download, so
// workers sleep-loop without ever calling CreateNewBlock -- enough to
// exercise Start/Stop lifecycle without depending on how long a real
// cycle search takes.
type ibdChain struct{}

func (ibdChain) Tip() (*minerservice.TipInfo, error) {
	return &minerservice.TipInfo{Hash: &externalapi.DomainHash{}, Header: &externalapi.BlockHeader{}}, nil
}
func (ibdChain) NodeCount() int { return 1 }
func (ibdChain) IsIBD() bool    { return true }
func (ibdChain) UpdateUncommittedBlockStructures(*externalapi.BlockHeader, *minerservice.TipInfo) error {
	return nil
}
func (ibdChain) ProcessNewBlock(*externalapi.BlockHeader) (bool, error) { return false, nil }

type unusedAssembler struct{}

func (unusedAssembler) CreateNewBlock(string) (*minerservice.BlockTemplate, error) {
	return nil, nil
}

func TestStartStopLifecycle(t *testing.T) {
	service := minerservice.New(ibdChain{}, unusedAssembler{}, &dagconfig.MainnetParams, 2)

	if service.IsMining() {
		t.Fatal("a freshly constructed service should not be mining")
	}

	service.Start("sh1testaddress")
	if !service.IsMining() {
		t.Fatal("Start should set IsMining")
	}

	// Starting again while already running must be a no-op, not a second
	// set of workers.
	service.Start("sh1testaddress")

	time.Sleep(50 * time.Millisecond)

	// Stop blocks until the telemetry goroutine notices should_mine
	// cleared, which happens on its next 5s tick at the latest.
	service.Stop()
	if service.IsMining() {
		t.Fatal("Stop should clear IsMining")
	}

	// Stop again should also be a no-op rather than blocking forever.
	done := make(chan struct{})
	go func() {
		service.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Stop call did not return")
	}
}
