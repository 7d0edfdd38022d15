package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	Track("a")()
	Track("a")()
	if got := Count("a"); got != 2 {
		t.Errorf("Count(a)=%d, want 2", got)
	}
	if _, ok := Snapshot()["a"]; !ok {
		t.Error("Snapshot missing a")
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	Reset()
	defer Reset()

	mu.Lock()
	totals["fast"] = 100 * time.Microsecond
	totals["slow"] = 2500 * time.Microsecond
	totals["mid"] = time.Millisecond
	mu.Unlock()

	got := TopN(2)
	if got != "slow:2.5ms, mid:1.0ms" {
		t.Errorf("TopN(2)=%q", got)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("TopN(10)=%q, want three entries", all)
	}
}

func TestResetClears(t *testing.T) {
	Track("x")()
	Reset()
	if len(Snapshot()) != 0 || Count("x") != 0 {
		t.Error("Reset left entries behind")
	}
}
