package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LetterType string

const (
	LetterGeneral     LetterType = "general"
	LetterCooperation LetterType = "cooperation"
	LetterRequest     LetterType = "request"
)

// Label mengembalikan nama jenis surat untuk tampilan.
// Nilai yang tidak dikenal dikembalikan apa adanya, tidak ditolak.
func (t LetterType) Label() string {
	switch t {
	case LetterGeneral:
		return "Surat Umum"
	case LetterCooperation:
		return "Surat Penawaran Kerja Sama"
	case LetterRequest:
		return "Surat Permohonan"
	default:
		return string(t)
	}
}

type Letter struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	LetterNumber string `gorm:"type:varchar(100);index"`
	CompanyID    string `gorm:"type:char(36);not null;index"`

	// Tanggal disimpan sebagai string YYYY-MM-DD dan dirender apa adanya
	Date string `gorm:"type:varchar(20)"`

	Subject    string     `gorm:"type:varchar(255);not null"`
	LetterType LetterType `gorm:"type:varchar(30);default:'general';index"`

	RecipientName     string `gorm:"type:varchar(200);not null"`
	RecipientPosition string `gorm:"type:varchar(150)"`
	RecipientAddress  string `gorm:"type:text"`

	// Isi surat, paragraf dipisah newline
	Content          string `gorm:"type:longtext"`
	AttachmentsCount int    `gorm:"not null;default:0"`
	// Daftar tembusan, satu penerima per baris
	CCList string `gorm:"type:text"`

	//relation
	Signatories []Signatory `gorm:"foreignKey:LetterID;references:ID;constraint:OnDelete:CASCADE"`
	Activities  []Activity  `gorm:"foreignKey:LetterID;references:ID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Letter) TableName() string {
	return "surat"
}

func (l *Letter) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Signatory adalah penandatangan surat. SortOrder menentukan urutan
// kolom tanda tangan (kiri ke kanan) pada blok penutup.
type Signatory struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	LetterID  string `gorm:"type:char(36);not null;index"`
	SortOrder int    `gorm:"not null;default:0;index"`
	Name      string `gorm:"type:varchar(200);not null"`
	Position  string `gorm:"type:varchar(150);not null"`
	// Key objek S3, nil jika belum ada tanda tangan yang diunggah
	SignatureImage *string `gorm:"type:varchar(255)"`
}

func (Signatory) TableName() string {
	return "penandatangan"
}

// Activity adalah baris kegiatan untuk surat bergaya laporan.
// No selalu berurutan 1..N dan dinomori ulang setiap ada penghapusan.
type Activity struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	LetterID   string `gorm:"type:char(36);not null;index"`
	No         int    `gorm:"not null"`
	Kegiatan   string `gorm:"type:varchar(255);not null"`
	Jumlah     string `gorm:"type:varchar(50)"`
	Satuan     string `gorm:"type:varchar(50)"`
	Hasil      string `gorm:"type:varchar(255)"`
	Keterangan string `gorm:"type:text"`
}

func (Activity) TableName() string {
	return "kegiatan"
}
