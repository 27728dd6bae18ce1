package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company adalah identitas perusahaan pengirim yang dipakai pada kop surat.
// Dikelola lewat endpoint companies, dari sisi penyusunan surat hanya dibaca.
type Company struct {
	ID      string `gorm:"type:char(36);primaryKey"`
	Name    string `gorm:"type:varchar(200);not null;index"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(50)"`
	Email   string `gorm:"type:varchar(150)"`
	Motto   string `gorm:"type:varchar(255)"`
	Website string `gorm:"type:varchar(255)"`
	// Referensi gambar logo (URL atau data URI)
	Logo string `gorm:"type:longtext"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Company) TableName() string {
	return "perusahaan"
}

func (co *Company) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.NewString()
	}
	return nil
}
