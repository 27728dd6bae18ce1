package letters

import (
	"time"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// SignatoryResponse memisahkan key objek (signature_image, stabil dan
// aman digemakan kembali lewat PUT) dari presigned URL sementara
// (signature_url, hanya untuk ditampilkan).
type SignatoryResponse struct {
	Name           string  `json:"name"`
	Position       string  `json:"position"`
	SignatureImage *string `json:"signature_image"`
	SignatureURL   *string `json:"signature_url,omitempty"`
}

type ActivityResponse struct {
	No         int    `json:"no"`
	Kegiatan   string `json:"kegiatan"`
	Jumlah     string `json:"jumlah"`
	Satuan     string `json:"satuan"`
	Hasil      string `json:"hasil"`
	Keterangan string `json:"keterangan"`
}

type LetterResponse struct {
	ID                string            `json:"id"`
	LetterNumber      string            `json:"letter_number"`
	CompanyID         string            `json:"company_id"`
	Date              string            `json:"date"`
	Subject           string            `json:"subject"`
	LetterType        models.LetterType `json:"letter_type"`
	LetterTypeLabel   string            `json:"letter_type_label"`
	RecipientName     string            `json:"recipient_name"`
	RecipientPosition string            `json:"recipient_position"`
	RecipientAddress  string            `json:"recipient_address"`
	Content           string            `json:"content"`
	AttachmentsCount  int               `json:"attachments_count"`
	CCList            string            `json:"cc_list"`

	Signatories []SignatoryResponse `json:"signatories"`
	Activities  []ActivityResponse  `json:"activities"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLetterResponse(letter *models.Letter) LetterResponse {
	if letter == nil {
		return LetterResponse{}
	}

	resp := LetterResponse{
		ID:                letter.ID,
		LetterNumber:      letter.LetterNumber,
		CompanyID:         letter.CompanyID,
		Date:              letter.Date,
		Subject:           letter.Subject,
		LetterType:        letter.LetterType,
		LetterTypeLabel:   letter.LetterType.Label(),
		RecipientName:     letter.RecipientName,
		RecipientPosition: letter.RecipientPosition,
		RecipientAddress:  letter.RecipientAddress,
		Content:           letter.Content,
		AttachmentsCount:  letter.AttachmentsCount,
		CCList:            letter.CCList,
		Signatories:       make([]SignatoryResponse, 0, len(letter.Signatories)),
		Activities:        make([]ActivityResponse, 0, len(letter.Activities)),
		CreatedAt:         letter.CreatedAt,
		UpdatedAt:         letter.UpdatedAt,
	}

	for _, s := range letter.Signatories {
		resp.Signatories = append(resp.Signatories, SignatoryResponse{
			Name:           s.Name,
			Position:       s.Position,
			SignatureImage: s.SignatureImage,
		})
	}
	for _, a := range letter.Activities {
		resp.Activities = append(resp.Activities, ActivityResponse{
			No:         a.No,
			Kegiatan:   a.Kegiatan,
			Jumlah:     a.Jumlah,
			Satuan:     a.Satuan,
			Hasil:      a.Hasil,
			Keterangan: a.Keterangan,
		})
	}

	return resp
}
