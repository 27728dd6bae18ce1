package letterdoc

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ImageLoader mengambil byte gambar dari sebuah referensi (key objek S3
// atau URL). Loader nil berarti semua gambar dilewati, kolom tanda tangan
// tetap menyisakan ruang kosong dengan tinggi yang sama.
type ImageLoader func(ref string) ([]byte, error)

const (
	pdfMarginLeft  = 20.0
	pdfMarginTop   = 15.0
	pdfMarginRight = 20.0

	lineHeight = 5.0
	// Tinggi area gambar tanda tangan, terisi maupun kosong
	signatureImageHeight = 16.0
	logoSize             = 16.0
)

// WritePDF menata Document ke halaman A4 dan menulis hasilnya ke w.
// Urutan seksi sama persis dengan template preview HTML.
func WritePDF(doc *Document, images ImageLoader, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	usable := pageW - pdfMarginLeft - pdfMarginRight

	writeHeader(pdf, tr, doc, images, usable)
	writeMeta(pdf, tr, doc)
	writeSalutation(pdf, tr, doc)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, lineHeight, tr(doc.Opening), "", "L", false)
	pdf.Ln(3)

	for _, para := range doc.Paragraphs {
		pdf.MultiCell(0, lineHeight, tr(para), "", "J", false)
		pdf.Ln(2)
	}

	if doc.Closing != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, lineHeight, tr(doc.Closing), "", "J", false)
	}

	if len(doc.Signatures) > 0 {
		writeSignatures(pdf, tr, doc, images, usable)
	}

	if len(doc.CC) > 0 {
		writeCC(pdf, tr, doc, usable)
	}

	return pdf.Output(w)
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, images ImageLoader, usable float64) {
	if img, ok := loadImage(pdf, images, doc.Header.Logo); ok {
		pdf.ImageOptions(doc.Header.Logo, pdfMarginLeft, pdf.GetY(), logoSize, logoSize, false,
			fpdf.ImageOptions{ImageType: img, ReadDpi: true}, 0, "")
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, tr(doc.Header.Name), "", 1, "C", false, 0, "")

	if doc.Header.Motto != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 5, tr(doc.Header.Motto), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "", 10)
	if doc.Header.Address != "" {
		pdf.CellFormat(0, 5, tr(doc.Header.Address), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 5, tr(doc.Header.Contact), "", 1, "C", false, 0, "")
	if doc.Header.Website != "" {
		pdf.CellFormat(0, 5, tr("Website: "+doc.Header.Website), "", 1, "C", false, 0, "")
	}

	y := pdf.GetY() + 2
	pdf.SetLineWidth(0.6)
	pdf.Line(pdfMarginLeft, y, pdfMarginLeft+usable, y)
	pdf.SetLineWidth(0.2)
	pdf.SetY(y + 6)
}

func writeMeta(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	labelValue(pdf, tr, "Nomor:", doc.Meta.Number, false)
	labelValue(pdf, tr, "Tanggal:", doc.Meta.Date, false)
	if doc.Meta.Attachments != "" {
		labelValue(pdf, tr, "Lampiran:", doc.Meta.Attachments, false)
	}
	labelValue(pdf, tr, "Perihal:", doc.Meta.Subject, true)
	pdf.Ln(4)
}

func labelValue(pdf *fpdf.Fpdf, tr func(string) string, label, value string, boldValue bool) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Write(lineHeight, tr(label)+" ")
	if boldValue {
		pdf.SetFont("Arial", "B", 11)
	} else {
		pdf.SetFont("Arial", "", 11)
	}
	pdf.Write(lineHeight, tr(value))
	pdf.Ln(lineHeight)
}

func writeSalutation(pdf *fpdf.Fpdf, tr func(string) string, doc *Document) {
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, lineHeight, tr(doc.Salutation.Greeting), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, lineHeight, tr(doc.Salutation.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	if doc.Salutation.Position != "" {
		pdf.CellFormat(0, lineHeight, tr(doc.Salutation.Position), "", 1, "L", false, 0, "")
	}
	for _, line := range doc.Salutation.Address {
		pdf.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeSignatures(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, images ImageLoader, usable float64) {
	colW := usable / float64(len(doc.Signatures))
	startY := pdf.GetY() + 8

	for i, sig := range doc.Signatures {
		x := pdfMarginLeft + colW*float64(i)

		pdf.SetXY(x, startY)
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(colW, lineHeight, tr(sig.Position), "", 0, "C", false, 0, "")

		// Area gambar dengan tinggi tetap, terlepas ada tanda tangan atau tidak
		imgY := startY + lineHeight + 2
		if img, ok := loadImage(pdf, images, sig.Image); ok {
			imgW := signatureImageHeight * 2
			if imgW > colW-4 {
				imgW = colW - 4
			}
			pdf.ImageOptions(sig.Image, x+(colW-imgW)/2, imgY, imgW, signatureImageHeight, false,
				fpdf.ImageOptions{ImageType: img, ReadDpi: true}, 0, "")
		}

		ruleY := imgY + signatureImageHeight + 2
		pdf.Line(x+colW*0.1, ruleY, x+colW*0.9, ruleY)

		pdf.SetXY(x, ruleY+2)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(colW, lineHeight, tr(sig.Name), "", 0, "C", false, 0, "")
	}

	pdf.SetXY(pdfMarginLeft, startY+lineHeight+2+signatureImageHeight+2+2+lineHeight+6)
}

func writeCC(pdf *fpdf.Fpdf, tr func(string) string, doc *Document, usable float64) {
	y := pdf.GetY() + 2
	pdf.Line(pdfMarginLeft, y, pdfMarginLeft+usable, y)
	pdf.SetY(y + 4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, lineHeight, tr(CCHeaderText), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range doc.CC {
		pdf.CellFormat(0, lineHeight, tr("- "+line), "", 1, "L", false, 0, "")
	}
}

// loadImage mengambil dan meregistrasi gambar ke dokumen. Data URI
// didekode langsung, referensi lain diambil lewat loader. Referensi
// kosong, loader nil, gagal unduh, atau format tak dikenal semuanya
// berarti gambar dilewati tanpa menggagalkan PDF.
func loadImage(pdf *fpdf.Fpdf, images ImageLoader, ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if info := pdf.GetImageInfo(ref); info != nil {
		// sudah terdaftar pada dokumen ini
		return "", true
	}

	var data []byte
	if decoded, ok := decodeDataURI(ref); ok {
		data = decoded
	} else if images != nil {
		fetched, err := images(ref)
		if err != nil || len(fetched) == 0 {
			return "", false
		}
		data = fetched
	} else {
		return "", false
	}

	typ := imageType(data)
	if typ == "" {
		return "", false
	}
	pdf.RegisterImageOptionsReader(ref, fpdf.ImageOptions{ImageType: typ, ReadDpi: true}, bytes.NewReader(data))
	if !pdf.Ok() {
		return "", false
	}
	return typ, true
}

// decodeDataURI membongkar payload base64 dari referensi berbentuk
// data URI ("data:image/png;base64,..."). Bentuk lain bukan data URI.
func decodeDataURI(ref string) ([]byte, bool) {
	if !strings.HasPrefix(ref, "data:") {
		return nil, false
	}
	comma := strings.Index(ref, ",")
	if comma < 0 || !strings.HasSuffix(ref[:comma], ";base64") {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(ref[comma+1:])
	if err != nil {
		return nil, false
	}
	return data, true
}

func imageType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "PNG"
	case bytes.HasPrefix(data, []byte("\xff\xd8")):
		return "JPG"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "GIF"
	default:
		return ""
	}
}

// PDFFileName membangun nama file unduhan dari nomor surat, karakter "/"
// diganti "_" agar aman dipakai sebagai nama file.
func PDFFileName(letterNumber string) string {
	return fmt.Sprintf("letter_%s.pdf", strings.ReplaceAll(letterNumber, "/", "_"))
}
