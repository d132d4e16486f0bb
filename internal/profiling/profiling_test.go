package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()

	stop := Track("test.op")
	time.Sleep(time.Millisecond)
	stop()

	ss := Snapshot()
	if ss["test.op"] <= 0 {
		t.Fatalf("tracked duration %v, want > 0", ss["test.op"])
	}

	// A second track under the same name adds to the total
	before := ss["test.op"]
	stop = Track("test.op")
	time.Sleep(time.Millisecond)
	stop()
	if after := Snapshot()["test.op"]; after <= before {
		t.Fatalf("duration did not accumulate: %v -> %v", before, after)
	}
}

func TestResetFrameClears(t *testing.T) {
	Track("test.op")()
	ResetFrame()
	if ss := Snapshot(); len(ss) != 0 {
		t.Fatalf("totals not cleared: %v", ss)
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	mu.Lock()
	frameTotals["renderer.backgroundCapture"] = 2 * time.Millisecond
	frameTotals["renderer.distortionPass"] = 3 * time.Millisecond
	frameTotals["sim.Tick"] = 10 * time.Millisecond
	mu.Unlock()

	if got := SumWithPrefix("renderer."); got != 5*time.Millisecond {
		t.Fatalf("renderer prefix sum %v, want 5ms", got)
	}
	if got := SumWithPrefix("hud."); got != 0 {
		t.Fatalf("missing prefix sum %v, want 0", got)
	}
}

func TestTopNOrdersDescending(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	mu.Lock()
	frameTotals["small"] = time.Millisecond
	frameTotals["big"] = 9 * time.Millisecond
	frameTotals["mid"] = 4 * time.Millisecond
	mu.Unlock()

	out := TopN(2)
	if !strings.HasPrefix(out, "big:") {
		t.Fatalf("largest entry not first: %q", out)
	}
	if strings.Contains(out, "small") {
		t.Fatalf("TopN(2) included the third entry: %q", out)
	}
	if !strings.Contains(out, "mid:4.0ms") {
		t.Fatalf("unexpected formatting: %q", out)
	}
}
