package letters

import (
	"encoding/json"
	"testing"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

func TestAttachmentCountAcceptsNumberAndString(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`{"attachments_count": 3}`, 3},
		{`{"attachments_count": "7"}`, 7},
		{`{"attachments_count": "abc"}`, 0},
		{`{"attachments_count": ""}`, 0},
		{`{"attachments_count": null}`, 0},
		// hanya awalan numerik yang dibaca
		{`{"attachments_count": 3.5}`, 3},
		{`{"attachments_count": "3abc"}`, 3},
		{`{"attachments_count": "-2x"}`, -2},
	}

	for _, tc := range cases {
		var req CreateLetterRequest
		if err := json.Unmarshal([]byte(tc.in), &req); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if int(req.AttachmentsCount) != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.in, tc.want, req.AttachmentsCount)
		}
	}
}

func validRequest() CreateLetterRequest {
	return CreateLetterRequest{
		LetterNumber:  "001/GRD/08/2026",
		CompanyID:     "c0ffee00-0000-0000-0000-000000000001",
		Date:          "2026-08-29",
		Subject:       "Penawaran Kerjasama",
		LetterType:    models.LetterCooperation,
		RecipientName: "Bapak Hendra",
		Content:       "Isi surat.",
		Signatories: []SignatoryRequest{
			{Name: "Andi", Position: "Direktur"},
		},
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	var req CreateLetterRequest

	errs := req.Validate()
	if len(errs) == 0 {
		t.Fatal("expected validation errors for empty request")
	}
	if _, ok := errs["signatories"]; !ok {
		t.Fatalf("expected signatories error, got %v", errs)
	}
}

func TestValidateRejectsOnlyInvalidSignatories(t *testing.T) {
	req := validRequest()
	req.Signatories = []SignatoryRequest{
		{Name: "Andi", Position: ""},
		{Name: "", Position: "Manager"},
	}

	errs := req.Validate()
	if _, ok := errs["signatories"]; !ok {
		t.Fatalf("expected signatories error, got %v", errs)
	}
}

func TestValidateAcceptsUnknownLetterType(t *testing.T) {
	req := validRequest()
	req.LetterType = "memo"

	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unknown letter type must not be rejected, got %v", errs)
	}
}

func TestToModelFiltersAndRenumbers(t *testing.T) {
	img := "signatures/a.png"
	req := validRequest()
	req.AttachmentsCount = -2
	req.Signatories = []SignatoryRequest{
		{Name: "Andi", Position: "Direktur", SignatureImage: &img},
		{Name: "", Position: "Manager"},
		{Name: "Budi", Position: "Sekretaris"},
	}
	req.Activities = []ActivityRequest{
		{No: 1, Kegiatan: "Survey"},
		{No: 2, Kegiatan: ""},
		{No: 3, Kegiatan: "Instalasi"},
	}

	letter := req.ToModel()

	if letter.AttachmentsCount != 0 {
		t.Fatalf("expected negative attachments coerced to 0, got %d", letter.AttachmentsCount)
	}
	if len(letter.Signatories) != 2 {
		t.Fatalf("expected invalid signatory dropped, got %d", len(letter.Signatories))
	}
	if letter.Signatories[0].SignatureImage == nil || *letter.Signatories[0].SignatureImage != img {
		t.Fatalf("expected signature reference preserved, got %+v", letter.Signatories[0])
	}
	if letter.Signatories[1].SortOrder != 1 {
		t.Fatalf("expected sort order reassigned, got %d", letter.Signatories[1].SortOrder)
	}
	if len(letter.Activities) != 2 || letter.Activities[1].No != 2 {
		t.Fatalf("expected activities filtered and renumbered, got %+v", letter.Activities)
	}
}

func TestToModelDefaultsLetterType(t *testing.T) {
	req := validRequest()
	req.LetterType = ""

	if letter := req.ToModel(); letter.LetterType != models.LetterGeneral {
		t.Fatalf("expected default letter type general, got %q", letter.LetterType)
	}
}
