package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/garudaofficial24/BillMaster-Garuda/config"
	"github.com/garudaofficial24/BillMaster-Garuda/letterdoc"
	"github.com/garudaofficial24/BillMaster-Garuda/models"
	"github.com/garudaofficial24/BillMaster-Garuda/utils"
	"github.com/garudaofficial24/BillMaster-Garuda/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Batas waktu pengambilan satu gambar dari S3 saat menyusun PDF
const imageFetchTimeout = 15 * time.Second

// lookupCompany memenuhi letterdoc.CompanyLookup. Error dikembalikan ke
// assembler yang akan jatuh ke perusahaan placeholder, preview tidak
// pernah gagal hanya karena perusahaan hilang.
func lookupCompany(companyID string) (*models.Company, error) {
	var company models.Company
	if err := config.DB.First(&company, "id = ?", companyID).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// GET /api/letters/:id/preview
func PreviewLetter(c *fiber.Ctx) error {
	id := c.Params("id")

	letter, err := fetchLetterWithRelations(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	// Key objek dipresign dulu supaya <img> di halaman preview bisa
	// memuat tanda tangan langsung dari S3
	presignForPreview(letter)

	vm := letterdoc.Assemble(*letter, lookupCompany)
	doc := letterdoc.Render(vm)

	var buf bytes.Buffer
	if err := letterdoc.WriteHTML(doc, &buf); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to render preview", err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// GET /api/letters/:id/pdf
func DownloadLetterPDF(c *fiber.Ctx) error {
	id := c.Params("id")

	letter, err := fetchLetterWithRelations(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	vm := letterdoc.Assemble(*letter, lookupCompany)
	doc := letterdoc.Render(vm)

	var buf bytes.Buffer
	if err := letterdoc.WritePDF(doc, loadSignatureImage, &buf); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate PDF", err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", letterdoc.PDFFileName(letter.LetterNumber)))
	return c.Send(buf.Bytes())
}

// presignForPreview mengganti key objek pada salinan surat yang hanya
// dipakai untuk render dengan presigned URL. Salinan ini tidak pernah
// disimpan kembali, key di database tetap utuh.
func presignForPreview(letter *models.Letter) {
	for i := range letter.Signatories {
		sig := &letter.Signatories[i]
		if sig.SignatureImage == nil || *sig.SignatureImage == "" {
			continue
		}
		url, err := storage.GetPresignedURL(*sig.SignatureImage)
		if err != nil {
			log.Printf("Failed to presign URL for key %s: %v", *sig.SignatureImage, err)
			continue
		}
		sig.SignatureImage = &url
	}
}

// loadSignatureImage mengambil byte gambar dari S3 untuk disematkan ke
// PDF. Gagal unduh hanya mengosongkan gambar itu, PDF tetap dibuat.
func loadSignatureImage(ref string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), imageFetchTimeout)
	defer cancel()
	return storage.DownloadFile(ctx, ref)
}
