package diag_test

import (
	"testing"

	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/source"
)

func mkDiag(code diag.Code, sev diag.Severity, start, end uint32) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "m",
		Primary:  source.Span{Start: start, End: end},
	}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 0, 1)) {
		t.Error("first add must succeed")
	}
	if !bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 1, 2)) {
		t.Error("second add must succeed")
	}
	if bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 2, 3)) {
		t.Error("add beyond the limit must be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("len: got %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(mkDiag(diag.ExpReservedSuffix, diag.SevWarning, 0, 1))
	if bag.HasErrors() {
		t.Error("warning alone must not count as error")
	}
	if !bag.HasWarnings() {
		t.Error("warning not seen")
	}
	bag.Add(mkDiag(diag.ExpReservedSuffix, diag.SevError, 0, 1))
	if !bag.HasErrors() {
		t.Error("error not seen")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(mkDiag(diag.ExpIntOverflow, diag.SevError, 10, 12))
	bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 0, 2))
	bag.Add(mkDiag(diag.ExpReservedSuffix, diag.SevError, 5, 7))
	bag.Sort()

	items := bag.Items()
	starts := []uint32{0, 5, 10}
	for i, want := range starts {
		if items[i].Primary.Start != want {
			t.Errorf("item %d: start %d, want %d", i, items[i].Primary.Start, want)
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(4)
	d := mkDiag(diag.ExpReservedSuffix, diag.SevError, 3, 7)
	bag.Add(d)
	bag.Add(d)
	bag.Add(mkDiag(diag.ExpReservedSuffix, diag.SevError, 8, 9))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("dedup: got %d items, want 2", bag.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(mkDiag(diag.LexBadNumber, diag.SevError, 0, 1))
	b := diag.NewBag(1)
	b.Add(mkDiag(diag.LexBadEscape, diag.SevError, 1, 2))
	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("merge: got %d items, want 2", a.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.LexBadEscape, "LEX1006"},
		{diag.SynUnclosedDelimiter, "SYN2001"},
		{diag.ExpUsage, "EXP3001"},
		{diag.ExpReservedSuffix, "EXP3002"},
		{diag.ExpCStringUnsupported, "EXP3003"},
		{diag.ExpIntOverflow, "EXP3004"},
		{diag.IOLoadFileError, "IO4001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("code %d: ID %q, want %q", tt.code, got, tt.id)
		}
	}
}
