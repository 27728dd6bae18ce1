package letterdoc

import (
	"bytes"
	"strings"
	"testing"
)

func renderHTML(t *testing.T, doc *Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteHTML(doc, &buf); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	return buf.String()
}

func TestWriteHTMLContainsFixedSections(t *testing.T) {
	html := renderHTML(t, Render(sampleViewModel()))

	for _, want := range []string{
		"PT Garuda Digital",
		"Kepada Yth,",
		"Dengan hormat,",
		"Lampiran:",
		"3 berkas",
		"Tembusan:",
		"- Manager A",
		"- Manager B",
		"Website: https://garuda.co.id",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected preview to contain %q", want)
		}
	}
}

func TestWriteHTMLOmitsEmptyOptionalSections(t *testing.T) {
	vm := sampleViewModel()
	vm.Letter.AttachmentsCount = 0
	vm.Letter.CCList = ""
	vm.Letter.LetterType = "memo"
	vm.Company.Website = ""
	vm.CCLines = SplitLines(vm.Letter.CCList)

	html := renderHTML(t, Render(vm))

	for _, unwanted := range []string{"Lampiran:", "Tembusan:", "Website:", "Demikian"} {
		if strings.Contains(html, unwanted) {
			t.Fatalf("expected preview without %q", unwanted)
		}
	}
}

func TestWriteHTMLKeepsBlankSignatureSpace(t *testing.T) {
	html := renderHTML(t, Render(sampleViewModel()))

	// dua kolom tanda tangan, hanya satu yang punya gambar
	if got := strings.Count(html, `class="gambar"`); got != 2 {
		t.Fatalf("expected 2 signature image areas, got %d", got)
	}
	if got := strings.Count(html, `alt="Tanda tangan"`); got != 1 {
		t.Fatalf("expected 1 signature image, got %d", got)
	}
}

func TestWriteHTMLKeepsDataURILogo(t *testing.T) {
	logo := "data:image/png;base64,iVBORw0KGgo="
	vm := sampleViewModel()
	vm.Company.Logo = logo

	html := renderHTML(t, Render(vm))

	if !strings.Contains(html, `src="`+logo+`"`) {
		t.Fatal("expected data URI logo in preview")
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Fatal("expected logo to survive template sanitization")
	}
}

func TestWriteHTMLDropsUnknownLogoScheme(t *testing.T) {
	vm := sampleViewModel()
	vm.Company.Logo = "javascript:alert(1)"

	html := renderHTML(t, Render(vm))

	if strings.Contains(html, "javascript:alert(1)") {
		t.Fatal("expected unknown logo scheme to be dropped")
	}
}

func TestWriteHTMLEscapesContent(t *testing.T) {
	vm := sampleViewModel()
	vm.Letter.Content = "<script>alert(1)</script>"
	vm.Paragraphs = SplitLines(vm.Letter.Content)

	html := renderHTML(t, Render(vm))

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("expected letter content to be escaped")
	}
}
