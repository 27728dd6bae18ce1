package draft

import (
	"testing"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

func TestNewHasInitialSlots(t *testing.T) {
	d := New()

	if len(d.Signatories) != 1 {
		t.Fatalf("expected 1 signatory slot, got %d", len(d.Signatories))
	}
	if len(d.Activities) != 1 || d.Activities[0].No != 1 {
		t.Fatalf("expected 1 activity slot numbered 1, got %+v", d.Activities)
	}
	if d.Letter.LetterType != models.LetterGeneral {
		t.Fatalf("expected default letter type general, got %q", d.Letter.LetterType)
	}
}

func TestRemoveActivityAtRenumbers(t *testing.T) {
	d := New()
	for i := 0; i < 4; i++ {
		d = d.AddActivity()
	}
	for i := range d.Activities {
		d = d.SetActivityAt(i, models.Activity{Kegiatan: string(rune('A' + i))})
	}

	d = d.RemoveActivityAt(2)

	if len(d.Activities) != 4 {
		t.Fatalf("expected 4 activities after removal, got %d", len(d.Activities))
	}
	wantNames := []string{"A", "B", "D", "E"}
	for i, a := range d.Activities {
		if a.No != i+1 {
			t.Fatalf("activity %d: expected no %d, got %d", i, i+1, a.No)
		}
		if a.Kegiatan != wantNames[i] {
			t.Fatalf("activity %d: expected kegiatan %q, got %q", i, wantNames[i], a.Kegiatan)
		}
	}
}

func TestRemoveActivityAtKeepsLastSlot(t *testing.T) {
	d := New()
	if got := d.RemoveActivityAt(0); len(got.Activities) != 1 {
		t.Fatalf("expected last activity slot to survive, got %d slots", len(got.Activities))
	}
}

func TestRemoveSignatoryAtDoesNotMutateOriginal(t *testing.T) {
	d := New().AddSignatory().AddSignatory()
	d = d.SetSignatoryAt(0, models.Signatory{Name: "Andi", Position: "Direktur"})
	d = d.SetSignatoryAt(1, models.Signatory{Name: "Budi", Position: "Manager"})

	after := d.RemoveSignatoryAt(0)

	if len(d.Signatories) != 3 {
		t.Fatalf("original draft mutated: expected 3 signatories, got %d", len(d.Signatories))
	}
	if len(after.Signatories) != 2 || after.Signatories[0].Name != "Budi" {
		t.Fatalf("unexpected signatories after removal: %+v", after.Signatories)
	}
}

func TestFilterSignatoriesDropsIncomplete(t *testing.T) {
	in := []models.Signatory{
		{Name: "Andi", Position: "Direktur"},
		{Name: "", Position: "Manager"},
		{Name: "Citra", Position: ""},
		{Name: "  ", Position: "  "},
		{Name: "Dewi", Position: "Sekretaris"},
	}

	out := FilterSignatories(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 valid signatories, got %d", len(out))
	}
	if out[0].Name != "Andi" || out[1].Name != "Dewi" {
		t.Fatalf("unexpected order: %+v", out)
	}
	if out[0].SortOrder != 0 || out[1].SortOrder != 1 {
		t.Fatalf("expected sort order 0,1 got %d,%d", out[0].SortOrder, out[1].SortOrder)
	}
}

func TestFilterActivitiesDropsEmptyAndRenumbers(t *testing.T) {
	in := []models.Activity{
		{No: 1, Kegiatan: "Survey"},
		{No: 2, Kegiatan: "   "},
		{No: 3, Kegiatan: "Instalasi"},
	}

	out := FilterActivities(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(out))
	}
	if out[0].No != 1 || out[1].No != 2 {
		t.Fatalf("expected renumbered 1,2 got %d,%d", out[0].No, out[1].No)
	}
	if out[1].Kegiatan != "Instalasi" {
		t.Fatalf("unexpected activity: %+v", out[1])
	}
}

func TestCoerceAttachments(t *testing.T) {
	if got := CoerceAttachments(-3); got != 0 {
		t.Fatalf("expected negative count coerced to 0, got %d", got)
	}
	if got := CoerceAttachments(5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	d := New()

	errs := d.Validate()

	for _, field := range []string{"letter_number", "company_id", "subject", "recipient_name", "content", "signatories"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected validation error for %s, got %v", field, errs)
		}
	}
}

func TestValidateCompleteDraft(t *testing.T) {
	d := Draft{
		Letter: models.Letter{
			LetterNumber:  "001/GRD/08/2026",
			CompanyID:     "c0ffee00-0000-0000-0000-000000000001",
			Subject:       "Penawaran Kerjasama",
			RecipientName: "Bapak Direktur",
			Content:       "Dengan ini kami sampaikan penawaran.",
		},
		Signatories: []models.Signatory{{Name: "Andi", Position: "Direktur"}},
	}

	if errs := d.Validate(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}
