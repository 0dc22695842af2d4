package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"option-sim/internal/model"
)

func TestLedgerActions(t *testing.T) {
	res := Run(model.Defaults())
	rows := res.Ledger()

	if len(rows) != 3 {
		t.Fatalf("expected 3 ledger rows, got %d", len(rows))
	}
	want := []model.Action{model.ActionOpen, model.ActionPush, model.ActionRevert}
	for i, row := range rows {
		if row.Action != want[i] {
			t.Errorf("row %d: want action %s, got %s", i, want[i], row.Action)
		}
		if row.Index != i {
			t.Errorf("row %d: want index %d, got %d", i, i, row.Index)
		}
	}
}

func TestLedgerHoldActions(t *testing.T) {
	in := model.Defaults()
	in.HumanLimitPrice = 15
	rows := Run(in).Ledger()

	if rows[0].Action != model.ActionOpen {
		t.Errorf("row 0: want OPEN, got %s", rows[0].Action)
	}
	for _, row := range rows[1:] {
		if row.Action != model.ActionHold {
			t.Errorf("row %d: want HOLD, got %s", row.Index, row.Action)
		}
	}
}

func TestBuildSummaryFilled(t *testing.T) {
	in := model.Defaults()
	res := Run(in)
	s := BuildSummary(in, res)

	if !s.Filled {
		t.Fatal("expected filled summary")
	}
	if s.TargetPrice != 48 {
		t.Errorf("target: want 48, got %g", s.TargetPrice)
	}
	if s.FillPrice == nil || *s.FillPrice != 48 {
		t.Fatalf("fill price: want 48, got %v", s.FillPrice)
	}
	// Reverted mid is (20+100)/2 = 60; human marks +12 against it.
	if s.PNL == nil || *s.PNL != 12 {
		t.Fatalf("pnl: want 12, got %v", s.PNL)
	}
}

func TestBuildSummaryUnfilled(t *testing.T) {
	in := model.Defaults()
	in.HumanLimitPrice = 15
	s := BuildSummary(in, Run(in))

	if s.Filled {
		t.Fatal("expected unfilled summary")
	}
	if s.FillPrice != nil || s.PNL != nil {
		t.Errorf("fill price and pnl must be absent, got %v / %v", s.FillPrice, s.PNL)
	}
}

func TestWriteLedgerCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	rows := Run(model.Defaults()).Ledger()

	if err := WriteLedgerCSV(path, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != len(rows)+1 {
		t.Fatalf("expected header + %d rows, got %d lines", len(rows), len(lines))
	}
	if !strings.HasPrefix(lines[0], "index,time,best_bid") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "REVERT") {
		t.Errorf("last row should be the revert, got: %s", lines[len(lines)-1])
	}
}
