package letterdoc

import (
	"fmt"
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// Teks tetap pada template surat. Harus sama persis dengan layout yang
// dipakai backend lama agar PDF hasil migrasi identik.
const (
	GreetingText = "Kepada Yth,"
	OpeningText  = "Dengan hormat,"
	CCHeaderText = "Tembusan:"

	closingGeneral     = "Demikian surat ini kami sampaikan. Atas perhatian dan kerjasamanya, kami ucapkan terima kasih."
	closingCooperation = "Demikian surat penawaran kerjasama ini kami sampaikan. Besar harapan kami dapat menjalin kerjasama yang baik dengan perusahaan Bapak/Ibu."
	closingRequest     = "Demikian permohonan ini kami sampaikan, atas perhatian dan perkenannya kami ucapkan terima kasih."
)

// Document adalah hasil render yang sudah final secara struktur: urutan
// seksi tetap, semua teks sudah jadi. Penulis HTML dan PDF tinggal
// menatanya tanpa mengambil keputusan konten lagi.
type Document struct {
	Header     Header
	Meta       Meta
	Salutation Salutation
	Opening    string
	Paragraphs []string
	// Kosong bila jenis surat tidak dikenal: seksi penutup dihilangkan
	Closing    string
	Signatures []SignatureColumn
	CC         []string
}

// Header adalah kop surat.
type Header struct {
	// Referensi gambar logo, kosong bila perusahaan tidak punya logo
	Logo    string
	Name    string
	Motto   string
	Address string
	Contact string
	// Kosong bila perusahaan tidak mengisi website
	Website string
}

// Meta adalah blok nomor/tanggal/lampiran/perihal.
type Meta struct {
	Number string
	Date   string
	// "N berkas", kosong bila lampiran nol sehingga barisnya tidak dirender
	Attachments string
	Subject     string
}

// Salutation adalah blok penerima surat.
type Salutation struct {
	Greeting string
	Name     string
	// Kosong bila jabatan tidak diisi
	Position string
	// Alamat per baris, line break internal dipertahankan
	Address []string
}

// SignatureColumn adalah satu kolom pada blok tanda tangan. Image kosong
// tetap menghasilkan ruang kosong setinggi gambar agar layout tidak geser.
type SignatureColumn struct {
	Position string
	Image    string
	Name     string
}

// Render mengubah ViewModel menjadi Document. Fungsi murni: hasil hanya
// bergantung pada isi vm, render dua kali menghasilkan nilai yang sama.
func Render(vm ViewModel) *Document {
	doc := &Document{
		Header: Header{
			Logo:    vm.Company.Logo,
			Name:    vm.Company.Name,
			Motto:   vm.Company.Motto,
			Address: vm.Company.Address,
			Contact: fmt.Sprintf("Tel: %s | Email: %s", vm.Company.Phone, vm.Company.Email),
			Website: vm.Company.Website,
		},
		Meta: Meta{
			Number:  vm.Letter.LetterNumber,
			Date:    vm.Letter.Date,
			Subject: vm.Letter.Subject,
		},
		Salutation: Salutation{
			Greeting: GreetingText,
			Name:     vm.Letter.RecipientName,
			Position: vm.Letter.RecipientPosition,
		},
		Opening:    OpeningText,
		Paragraphs: vm.Paragraphs,
		Closing:    closingFor(vm.Letter.LetterType),
		CC:         vm.CCLines,
	}

	if vm.Letter.AttachmentsCount > 0 {
		doc.Meta.Attachments = fmt.Sprintf("%d berkas", vm.Letter.AttachmentsCount)
	}

	if addr := strings.TrimSpace(vm.Letter.RecipientAddress); addr != "" {
		doc.Salutation.Address = strings.Split(addr, "\n")
	}

	for _, sig := range vm.Letter.Signatories {
		col := SignatureColumn{Position: sig.Position, Name: sig.Name}
		if sig.SignatureImage != nil {
			col.Image = *sig.SignatureImage
		}
		doc.Signatures = append(doc.Signatures, col)
	}

	return doc
}

func closingFor(t models.LetterType) string {
	switch t {
	case models.LetterGeneral:
		return closingGeneral
	case models.LetterCooperation:
		return closingCooperation
	case models.LetterRequest:
		return closingRequest
	default:
		// jenis tak dikenal: tanpa kalimat penutup
		return ""
	}
}
