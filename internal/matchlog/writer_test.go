package matchlog

import (
	"os"
	"testing"

	"matchsim/internal/match"
	"matchsim/internal/world"
)

func TestTickWriterFlushesToFile(t *testing.T) {
	path := t.TempDir() + "/ticks.bin"

	w := NewTickWriter()
	if err := w.Start(path); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if !w.Emit(match.Tick{TickNumber: world.TickNumber(i)}) {
			t.Fatalf("Emit rejected tick %d", i)
		}
	}
	w.Stop()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty output file after flush")
	}

	total, dropped := w.Stats()
	if total != 5 {
		t.Fatalf("expected 5 ticks recorded, got %d", total)
	}
	if dropped != 0 {
		t.Fatalf("expected no drops under normal load, got %d", dropped)
	}
}

func TestTickWriterStopIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/ticks.bin"

	w := NewTickWriter()
	if err := w.Start(path); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	w.Stop()
	w.Stop() // must not panic or block
}
