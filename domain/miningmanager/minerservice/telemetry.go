package minerservice

import "time"

const telemetryInterval = 5 * time.Second

// runTelemetry prints accepted-hash throughput every 5s, per spec.md
// §4.7/§5, until the service's should_mine flag is cleared.
func runTelemetry(s *Service) {
	lastCheck := time.Now()
	var lastTotal uint64

	ticker := time.NewTicker(telemetryInterval)
	defer ticker.Stop()

	for s.IsMining() {
		<-ticker.C
		now := time.Now()
		total := s.totalHashes.Load()

		elapsed := now.Sub(lastCheck).Seconds()
		rate := float64(total-lastTotal) / elapsed

		log.Infof("run %s: %.2f H/s (%d total)", s.runID, rate, total)

		lastCheck = now
		lastTotal = total
	}
}
