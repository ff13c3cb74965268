package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	stopParse := tm.Begin("parse")
	time.Sleep(time.Millisecond)
	stopParse("")
	stopResolve := tm.Begin("resolve")
	stopResolve("3 diagnostics")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "parse" || report.Phases[1].Name != "resolve" {
		t.Errorf("phase names: %+v", report.Phases)
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Error("parse phase should have a positive duration")
	}
	if report.Phases[1].Note != "3 diagnostics" {
		t.Errorf("note = %q", report.Phases[1].Note)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Error("total should cover all phases")
	}
}

func TestEmptyTimerReport(t *testing.T) {
	report := NewTimer().Report()
	if len(report.Phases) != 0 || report.TotalMS != 0 {
		t.Errorf("empty timer produced %+v", report)
	}
}

func TestSummaryLayout(t *testing.T) {
	tm := NewTimer()
	tm.Begin("parse")("")
	s := tm.Report().Summary()
	if !strings.HasPrefix(s, "timings:\n") || !strings.Contains(s, "parse") || !strings.Contains(s, "total") {
		t.Errorf("summary layout:\n%s", s)
	}
}
