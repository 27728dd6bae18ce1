package letters

import (
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/draft"
	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// ToModel memetakan request menjadi model siap simpan. Penandatangan
// tanpa nama/jabatan dan kegiatan tanpa nama dibuang di sini, nomor
// kegiatan dinomori ulang menjadi 1..N.
func (r *CreateLetterRequest) ToModel() models.Letter {
	letter := models.Letter{
		LetterNumber:      strings.TrimSpace(r.LetterNumber),
		CompanyID:         strings.TrimSpace(r.CompanyID),
		Date:              strings.TrimSpace(r.Date),
		Subject:           strings.TrimSpace(r.Subject),
		LetterType:        r.LetterType,
		RecipientName:     strings.TrimSpace(r.RecipientName),
		RecipientPosition: strings.TrimSpace(r.RecipientPosition),
		RecipientAddress:  r.RecipientAddress,
		Content:           r.Content,
		AttachmentsCount:  draft.CoerceAttachments(int(r.AttachmentsCount)),
		CCList:            r.CCList,
	}

	if letter.LetterType == "" {
		letter.LetterType = models.LetterGeneral
	}

	letter.Signatories = draft.FilterSignatories(r.modelSignatories())
	letter.Activities = draft.FilterActivities(r.modelActivities())

	return letter
}

func (r *CreateLetterRequest) modelSignatories() []models.Signatory {
	out := make([]models.Signatory, 0, len(r.Signatories))
	for i, s := range r.Signatories {
		sig := models.Signatory{
			SortOrder: i,
			Name:      strings.TrimSpace(s.Name),
			Position:  strings.TrimSpace(s.Position),
		}
		if s.SignatureImage != nil && strings.TrimSpace(*s.SignatureImage) != "" {
			ref := strings.TrimSpace(*s.SignatureImage)
			sig.SignatureImage = &ref
		}
		out = append(out, sig)
	}
	return out
}

func (r *CreateLetterRequest) modelActivities() []models.Activity {
	out := make([]models.Activity, 0, len(r.Activities))
	for _, a := range r.Activities {
		out = append(out, models.Activity{
			No:         a.No,
			Kegiatan:   strings.TrimSpace(a.Kegiatan),
			Jumlah:     strings.TrimSpace(a.Jumlah),
			Satuan:     strings.TrimSpace(a.Satuan),
			Hasil:      strings.TrimSpace(a.Hasil),
			Keterangan: strings.TrimSpace(a.Keterangan),
		})
	}
	return out
}
