// Package draft menyimpan state surat yang sedang disusun sebelum
// disimpan. Semua operasi mengembalikan nilai baru, state lama tidak
// pernah dimutasi, sehingga penomoran ulang kegiatan dan penyaringan
// penandatangan menjadi fungsi murni yang mudah diuji.
package draft

import (
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// Draft adalah state form surat: field surat plus daftar penandatangan
// dan kegiatan yang masih bisa diubah.
type Draft struct {
	Letter      models.Letter
	Signatories []models.Signatory
	Activities  []models.Activity
}

// New membuat draft kosong dengan satu slot penandatangan dan satu slot
// kegiatan bernomor 1, sama seperti form pembuatan surat.
func New() Draft {
	return Draft{
		Letter:      models.Letter{LetterType: models.LetterGeneral},
		Signatories: []models.Signatory{{}},
		Activities:  []models.Activity{{No: 1}},
	}
}

// AddSignatory menambah slot penandatangan kosong di akhir daftar.
func (d Draft) AddSignatory() Draft {
	d.Signatories = append(cloneSignatories(d.Signatories), models.Signatory{})
	return d
}

// SetSignatoryAt mengganti penandatangan pada indeks i. Indeks di luar
// jangkauan diabaikan.
func (d Draft) SetSignatoryAt(i int, s models.Signatory) Draft {
	if i < 0 || i >= len(d.Signatories) {
		return d
	}
	out := cloneSignatories(d.Signatories)
	out[i] = s
	d.Signatories = out
	return d
}

// RemoveSignatoryAt menghapus penandatangan pada indeks i. Slot terakhir
// tidak pernah dihapus, form selalu menampilkan minimal satu.
func (d Draft) RemoveSignatoryAt(i int) Draft {
	if i < 0 || i >= len(d.Signatories) || len(d.Signatories) <= 1 {
		return d
	}
	out := make([]models.Signatory, 0, len(d.Signatories)-1)
	out = append(out, d.Signatories[:i]...)
	out = append(out, d.Signatories[i+1:]...)
	d.Signatories = out
	return d
}

// AddActivity menambah baris kegiatan kosong bernomor N+1.
func (d Draft) AddActivity() Draft {
	out := cloneActivities(d.Activities)
	out = append(out, models.Activity{No: len(out) + 1})
	d.Activities = out
	return d
}

// SetActivityAt mengganti kegiatan pada indeks i tanpa mengubah nomornya.
func (d Draft) SetActivityAt(i int, a models.Activity) Draft {
	if i < 0 || i >= len(d.Activities) {
		return d
	}
	out := cloneActivities(d.Activities)
	a.No = out[i].No
	out[i] = a
	d.Activities = out
	return d
}

// RemoveActivityAt menghapus kegiatan pada indeks i lalu menomori ulang
// sisanya menjadi 1..N-1. Baris terakhir tidak pernah dihapus.
func (d Draft) RemoveActivityAt(i int) Draft {
	if i < 0 || i >= len(d.Activities) || len(d.Activities) <= 1 {
		return d
	}
	out := make([]models.Activity, 0, len(d.Activities)-1)
	out = append(out, d.Activities[:i]...)
	out = append(out, d.Activities[i+1:]...)
	d.Activities = Renumber(out)
	return d
}

// Renumber menetapkan ulang nomor kegiatan menjadi 1..N sesuai urutan.
func Renumber(activities []models.Activity) []models.Activity {
	out := cloneActivities(activities)
	for i := range out {
		out[i].No = i + 1
	}
	return out
}

// FilterSignatories membuang penandatangan tanpa nama atau jabatan dan
// menetapkan SortOrder sesuai urutan yang tersisa. Dipanggil sebelum
// surat disimpan.
func FilterSignatories(signatories []models.Signatory) []models.Signatory {
	out := make([]models.Signatory, 0, len(signatories))
	for _, s := range signatories {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Position) == "" {
			continue
		}
		s.SortOrder = len(out)
		out = append(out, s)
	}
	return out
}

// FilterActivities membuang baris dengan kegiatan kosong lalu menomori
// ulang sisanya.
func FilterActivities(activities []models.Activity) []models.Activity {
	out := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if strings.TrimSpace(a.Kegiatan) == "" {
			continue
		}
		out = append(out, a)
	}
	return Renumber(out)
}

// CoerceAttachments memaksa jumlah lampiran menjadi bilangan non-negatif.
func CoerceAttachments(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Validate memeriksa field wajib sebelum surat boleh disimpan.
func (d Draft) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(d.Letter.LetterNumber) == "" {
		errors["letter_number"] = "letter_number is required"
	}
	if strings.TrimSpace(d.Letter.CompanyID) == "" {
		errors["company_id"] = "company_id is required"
	}
	if strings.TrimSpace(d.Letter.Subject) == "" {
		errors["subject"] = "subject is required"
	}
	if strings.TrimSpace(d.Letter.RecipientName) == "" {
		errors["recipient_name"] = "recipient_name is required"
	}
	if strings.TrimSpace(d.Letter.Content) == "" {
		errors["content"] = "content is required"
	}
	if len(FilterSignatories(d.Signatories)) == 0 {
		errors["signatories"] = "at least one signatory with name and position is required"
	}

	return errors
}

func cloneSignatories(in []models.Signatory) []models.Signatory {
	out := make([]models.Signatory, len(in))
	copy(out, in)
	return out
}

func cloneActivities(in []models.Activity) []models.Activity {
	out := make([]models.Activity, len(in))
	copy(out, in)
	return out
}
