package letterdoc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

func sampleViewModel() ViewModel {
	sig := "signatures/abc.png"
	return Assemble(models.Letter{
		LetterNumber:      "001/GRD/08/2026",
		Date:              "2026-08-29",
		Subject:           "Penawaran Kerjasama",
		LetterType:        models.LetterCooperation,
		RecipientName:     "Bapak Hendra",
		RecipientPosition: "Direktur Utama",
		RecipientAddress:  "Jl. Sudirman No. 1\nJakarta Selatan",
		Content:           "Paragraf pembuka.\n\nParagraf kedua.",
		AttachmentsCount:  3,
		CCList:            "Manager A\n\nManager B",
		Signatories: []models.Signatory{
			{Name: "Andi", Position: "Direktur", SignatureImage: &sig},
			{Name: "Budi", Position: "Manager"},
		},
	}, func(string) (*models.Company, error) {
		return &models.Company{
			Name:    "PT Garuda Digital",
			Address: "Jl. Gatot Subroto No. 10, Jakarta",
			Phone:   "+62-21-5550123",
			Email:   "info@garuda.co.id",
			Motto:   "Terbang Lebih Tinggi",
			Website: "https://garuda.co.id",
		}, nil
	})
}

func TestRenderIsDeterministic(t *testing.T) {
	vm := sampleViewModel()

	first := Render(vm)
	second := Render(vm)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected render to be a pure function of the view model")
	}
}

func TestRenderHeaderAndMeta(t *testing.T) {
	doc := Render(sampleViewModel())

	if doc.Header.Contact != "Tel: +62-21-5550123 | Email: info@garuda.co.id" {
		t.Fatalf("unexpected contact line: %q", doc.Header.Contact)
	}
	if doc.Meta.Attachments != "3 berkas" {
		t.Fatalf("expected attachments line '3 berkas', got %q", doc.Meta.Attachments)
	}
	if doc.Meta.Number != "001/GRD/08/2026" || doc.Meta.Date != "2026-08-29" {
		t.Fatalf("unexpected meta: %+v", doc.Meta)
	}
}

func TestRenderNoAttachmentsLineWhenZero(t *testing.T) {
	vm := sampleViewModel()
	vm.Letter.AttachmentsCount = 0

	if doc := Render(vm); doc.Meta.Attachments != "" {
		t.Fatalf("expected empty attachments line, got %q", doc.Meta.Attachments)
	}
}

func TestRenderSalutation(t *testing.T) {
	doc := Render(sampleViewModel())

	if doc.Salutation.Greeting != "Kepada Yth," {
		t.Fatalf("unexpected greeting %q", doc.Salutation.Greeting)
	}
	if doc.Opening != "Dengan hormat," {
		t.Fatalf("unexpected opening %q", doc.Opening)
	}
	wantAddress := []string{"Jl. Sudirman No. 1", "Jakarta Selatan"}
	if !reflect.DeepEqual(doc.Salutation.Address, wantAddress) {
		t.Fatalf("expected address lines preserved, got %v", doc.Salutation.Address)
	}
}

func TestRenderClosingByLetterType(t *testing.T) {
	cases := []struct {
		letterType models.LetterType
		prefix     string
	}{
		{models.LetterGeneral, "Demikian surat ini"},
		{models.LetterCooperation, "Demikian surat penawaran kerjasama"},
		{models.LetterRequest, "Demikian permohonan ini"},
	}

	vm := sampleViewModel()
	for _, tc := range cases {
		vm.Letter.LetterType = tc.letterType
		doc := Render(vm)
		if !strings.HasPrefix(doc.Closing, tc.prefix) {
			t.Fatalf("%s: expected closing starting with %q, got %q", tc.letterType, tc.prefix, doc.Closing)
		}
	}
}

func TestRenderUnknownTypeOmitsClosing(t *testing.T) {
	vm := sampleViewModel()
	vm.Letter.LetterType = "memo"

	if doc := Render(vm); doc.Closing != "" {
		t.Fatalf("expected no closing for unknown letter type, got %q", doc.Closing)
	}
}

func TestRenderSignatureColumns(t *testing.T) {
	doc := Render(sampleViewModel())

	if len(doc.Signatures) != 2 {
		t.Fatalf("expected 2 signature columns, got %d", len(doc.Signatures))
	}
	if doc.Signatures[0].Image == "" {
		t.Fatal("expected first column to carry its signature reference")
	}
	// kolom tanpa gambar tetap ada, penulis menyisakan ruang kosong
	if doc.Signatures[1].Image != "" || doc.Signatures[1].Name != "Budi" {
		t.Fatalf("unexpected second column: %+v", doc.Signatures[1])
	}
}

func TestRenderCCListDropsBlankLines(t *testing.T) {
	doc := Render(sampleViewModel())

	want := []string{"Manager A", "Manager B"}
	if !reflect.DeepEqual(doc.CC, want) {
		t.Fatalf("expected %v, got %v", want, doc.CC)
	}
}

func TestLetterTypeLabelFallback(t *testing.T) {
	if got := models.LetterType("memo").Label(); got != "memo" {
		t.Fatalf("expected unknown type echoed verbatim, got %q", got)
	}
	if got := models.LetterGeneral.Label(); got != "Surat Umum" {
		t.Fatalf("unexpected label %q", got)
	}
}
