package letters

import (
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/draft"
	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// AttachmentCount menerima angka maupun string dari klien. Hanya awalan
// numerik yang dibaca ("3abc" dan 3.5 sama-sama menjadi 3), input tanpa
// awalan angka jatuh ke 0. Nilai negatif dinormalkan saat mapping.
type AttachmentCount int

func (n *AttachmentCount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	*n = AttachmentCount(leadingInt(s))
	return nil
}

func leadingInt(s string) int {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	v := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0
	}
	if neg {
		return -v
	}
	return v
}

type SignatoryRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	// Key objek hasil POST /upload-signature, boleh kosong
	SignatureImage *string `json:"signature_image"`
}

type ActivityRequest struct {
	No         int    `json:"no"`
	Kegiatan   string `json:"kegiatan"`
	Jumlah     string `json:"jumlah"`
	Satuan     string `json:"satuan"`
	Hasil      string `json:"hasil"`
	Keterangan string `json:"keterangan"`
}

type CreateLetterRequest struct {
	LetterNumber      string            `json:"letter_number"`
	CompanyID         string            `json:"company_id"`
	Date              string            `json:"date"`
	Subject           string            `json:"subject"`
	LetterType        models.LetterType `json:"letter_type"`
	RecipientName     string            `json:"recipient_name"`
	RecipientPosition string            `json:"recipient_position"`
	RecipientAddress  string            `json:"recipient_address"`
	Content           string            `json:"content"`
	AttachmentsCount  AttachmentCount   `json:"attachments_count"`
	CCList            string            `json:"cc_list"`

	Signatories []SignatoryRequest `json:"signatories"`
	Activities  []ActivityRequest  `json:"activities"`
}

// UpdateLetterRequest memakai bentuk yang sama dengan create: PUT adalah
// full replace, bukan partial patch.
type UpdateLetterRequest = CreateLetterRequest

// Validate memeriksa field wajib lewat aturan draft. Jenis surat yang
// tidak dikenal sengaja tidak ditolak, label tampilan memakai nilai
// mentahnya.
func (r *CreateLetterRequest) Validate() map[string]string {
	d := draft.Draft{
		Letter: models.Letter{
			LetterNumber:  r.LetterNumber,
			CompanyID:     r.CompanyID,
			Subject:       r.Subject,
			RecipientName: r.RecipientName,
			Content:       r.Content,
		},
		Signatories: r.modelSignatories(),
	}
	return d.Validate()
}
