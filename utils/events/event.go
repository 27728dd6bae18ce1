package events

import (
	"log"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

// LetterEventType mendefinisikan jenis event terkait siklus hidup surat
type LetterEventType string

const (
	// LetterCreated dipublikasikan saat surat baru berhasil dibuat
	LetterCreated LetterEventType = "LetterCreated"

	// LetterReplaced dipublikasikan saat surat ditimpa penuh lewat PUT
	LetterReplaced LetterEventType = "LetterReplaced"

	// LetterDeleted dipublikasikan saat surat dihapus
	LetterDeleted LetterEventType = "LetterDeleted"
)

// LetterEvent adalah payload untuk event surat
type LetterEvent struct {
	Type   LetterEventType
	Letter models.Letter
}

// LetterEventBus adalah channel untuk menangani event surat.
// Channel ini di-buffer untuk mencegah blocking pada handler API
// saat mempublikasikan event.
var LetterEventBus = make(chan LetterEvent, 100)

// StartAuditLog menjalankan consumer yang mencatat setiap event surat
// ke log aplikasi sebagai jejak audit sederhana.
func StartAuditLog() {
	go func() {
		for ev := range LetterEventBus {
			log.Printf("audit: %s surat=%s nomor=%q", ev.Type, ev.Letter.ID, ev.Letter.LetterNumber)
		}
	}()
}
