package trace

import "testing"

func TestRecordAndReplay(t *testing.T) {
	j, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	if err := j.Record("worker-1", 0, "push-literal", ""); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Record("worker-1", 1, "return", ""); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Record("worker-2", 0, "push-literal", ""); err != nil {
		t.Fatalf("Record: %v", err)
	}

	steps, err := j.StepsFor("worker-1")
	if err != nil {
		t.Fatalf("StepsFor: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps for worker-1, got %d", len(steps))
	}
	if steps[0].Opcode != "push-literal" || steps[1].Opcode != "return" {
		t.Fatalf("steps out of order: %+v", steps)
	}
	if steps[0].Seq >= steps[1].Seq {
		t.Fatalf("expected increasing sequence numbers, got %d then %d", steps[0].Seq, steps[1].Seq)
	}
}

func TestClearRemovesAllSteps(t *testing.T) {
	j, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	if err := j.Record("worker-1", 0, "push-literal", ""); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	steps, err := j.StepsFor("worker-1")
	if err != nil {
		t.Fatalf("StepsFor: %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no steps after Clear, got %d", len(steps))
	}
}
