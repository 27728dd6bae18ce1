// Package letterdoc menyusun view model surat dan merendernya menjadi
// struktur dokumen yang sama untuk preview HTML maupun ekspor PDF.
package letterdoc

import (
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// FallbackCompanyName dipakai saat data perusahaan tidak bisa diambil.
// Preview tetap jalan, hanya kop surat yang memakai placeholder ini.
const FallbackCompanyName = "Company Information Not Available"

// CompanyLookup mengambil perusahaan berdasarkan id.
type CompanyLookup func(companyID string) (*models.Company, error)

// ViewModel adalah agregasi surat + perusahaan yang siap dirender.
// Tidak pernah disimpan, dibuat ulang setiap permintaan preview/PDF.
type ViewModel struct {
	Letter     models.Letter
	Company    models.Company
	Paragraphs []string
	CCLines    []string
}

// Assemble membangun ViewModel dari surat yang sudah diambil. Kegagalan
// lookup perusahaan tidak menggagalkan preview: kop diganti placeholder.
// Error pengambilan surat sendiri ditangani pemanggil sebelum sampai sini.
func Assemble(letter models.Letter, lookup CompanyLookup) ViewModel {
	company := models.Company{Name: FallbackCompanyName}
	if lookup != nil {
		if co, err := lookup(letter.CompanyID); err == nil && co != nil {
			company = *co
		}
	}

	return ViewModel{
		Letter:     letter,
		Company:    company,
		Paragraphs: SplitLines(letter.Content),
		CCLines:    SplitLines(letter.CCList),
	}
}

// SplitLines memecah teks per baris, mem-trim tiap baris, dan membuang
// baris kosong. Dipakai untuk paragraf isi surat dan daftar tembusan.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
