package entities

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seqFixture(dates ...string) []Order {
	out := make([]Order, len(dates))
	for i, d := range dates {
		out[i] = Order{ID: "op-" + string(rune('a'+i)), Posicao: i, DataEntrega: day(d)}
	}
	return out
}

func TestMoveOrder(t *testing.T) {
	seq := seqFixture("2024-01-05", "2024-01-06", "2024-01-07")

	moved := MoveOrder(seq, 0, 2)
	if moved[0].ID != "op-b" || moved[1].ID != "op-c" || moved[2].ID != "op-a" {
		t.Fatalf("unexpected ordering: %+v", moved)
	}
	for i, o := range moved {
		if o.Posicao != i {
			t.Fatalf("expected posicao %d, got %d", i, o.Posicao)
		}
	}

	// Source list must be untouched.
	if seq[0].ID != "op-a" || seq[0].Posicao != 0 {
		t.Fatalf("source sequence mutated: %+v", seq)
	}
}

func TestMoveOrder_OutOfRangeIsNoop(t *testing.T) {
	seq := seqFixture("2024-01-05", "2024-01-06")
	moved := MoveOrder(seq, 0, 5)
	if moved[0].ID != "op-a" || moved[1].ID != "op-b" {
		t.Fatalf("expected unchanged ordering: %+v", moved)
	}
}

func TestDetectUrgencyViolation(t *testing.T) {
	t.Run("downward move past later delivery violates", func(t *testing.T) {
		seq := seqFixture("2024-01-05", "2024-01-10")
		v := DetectUrgencyViolation(seq, 0, 1)
		if v == nil {
			t.Fatalf("expected violation")
		}
		if v.OrdemID != "op-a" || v.DeIndice != 0 || v.ParaIndice != 1 {
			t.Fatalf("unexpected violation payload: %+v", v)
		}
	})

	t.Run("equal delivery dates never violate", func(t *testing.T) {
		seq := seqFixture("2024-01-05", "2024-01-05")
		if v := DetectUrgencyViolation(seq, 0, 1); v != nil {
			t.Fatalf("expected no violation, got %+v", v)
		}
	})

	t.Run("upward move never violates", func(t *testing.T) {
		seq := seqFixture("2024-01-05", "2024-01-10")
		if v := DetectUrgencyViolation(seq, 1, 0); v != nil {
			t.Fatalf("expected no violation, got %+v", v)
		}
	})

	t.Run("downward past earlier deliveries only does not violate", func(t *testing.T) {
		seq := seqFixture("2024-01-10", "2024-01-05", "2024-01-06")
		if v := DetectUrgencyViolation(seq, 0, 2); v != nil {
			t.Fatalf("expected no violation, got %+v", v)
		}
	})

	t.Run("multi-position move flags crossed range", func(t *testing.T) {
		seq := seqFixture("2024-01-05", "2024-01-04", "2024-01-09")
		v := DetectUrgencyViolation(seq, 0, 2)
		if v == nil {
			t.Fatalf("expected violation against crossed later-date order")
		}
	})
}
