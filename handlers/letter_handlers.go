package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/garudaofficial24/BillMaster-Garuda/config"
	letterdto "github.com/garudaofficial24/BillMaster-Garuda/dto/letters"
	"github.com/garudaofficial24/BillMaster-Garuda/models"
	"github.com/garudaofficial24/BillMaster-Garuda/utils"
	"github.com/garudaofficial24/BillMaster-Garuda/utils/events"
	"github.com/garudaofficial24/BillMaster-Garuda/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/letters
func CreateLetter(c *fiber.Ctx) error {
	var req letterdto.CreateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	letter := req.ToModel()

	if err := config.DB.Create(&letter).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create letter", err.Error())
	}

	events.LetterEventBus <- events.LetterEvent{
		Type:   events.LetterCreated,
		Letter: letter,
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "letter created successfully", letterdto.NewLetterResponse(&letter))
}

// GET /api/letters/:id
func GetLetterByID(c *fiber.Ctx) error {
	id := c.Params("id")

	letter, err := fetchLetterWithRelations(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	resp := letterdto.NewLetterResponse(letter)
	attachSignatureURLs(&resp)
	return utils.SuccessResponse(c, fiber.StatusOK, "letter retrieved successfully", resp)
}

// GET /api/letters?page=&limit=
func ListLetters(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.Letter{}).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count letters", err.Error())
	}

	var letters []models.Letter
	err := config.DB.
		Preload("Signatories", orderBySortOrder).
		Preload("Activities", orderByNo).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&letters).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letters", err.Error())
	}

	responses := make([]letterdto.LetterResponse, 0, len(letters))
	for i := range letters {
		resp := letterdto.NewLetterResponse(&letters[i])
		attachSignatureURLs(&resp)
		responses = append(responses, resp)
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.PaginatedResponse(c, fiber.StatusOK, "letters retrieved successfully", responses, meta)
}

// PUT /api/letters/:id
//
// Full replace: isi surat plus daftar penandatangan/kegiatan diganti
// seluruhnya. Tidak ada pengecekan versi, penulis terakhir menang.
func UpdateLetter(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Letter
	if err := config.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	var req letterdto.UpdateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	replacement := req.ToModel()
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("letter_id = ?", existing.ID).Delete(&models.Signatory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("letter_id = ?", existing.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Save(&replacement).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update letter", err.Error())
	}

	events.LetterEventBus <- events.LetterEvent{
		Type:   events.LetterReplaced,
		Letter: replacement,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "letter updated successfully", letterdto.NewLetterResponse(&replacement))
}

// DELETE /api/letters/:id
func DeleteLetter(c *fiber.Ctx) error {
	id := c.Params("id")

	letter, err := fetchLetterWithRelations(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter for deletion", err.Error())
	}

	result := config.DB.Select("Signatories", "Activities").Delete(&models.Letter{ID: letter.ID})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete letter", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
	}

	// Objek tanda tangan di S3 dibersihkan di belakang
	for _, sig := range letter.Signatories {
		if sig.SignatureImage == nil || *sig.SignatureImage == "" {
			continue
		}
		go func(key string) {
			if err := storage.DeleteFile(context.Background(), key); err != nil {
				log.Printf("Failed to delete S3 object %s during letter deletion: %v", key, err)
			}
		}(*sig.SignatureImage)
	}

	events.LetterEventBus <- events.LetterEvent{
		Type:   events.LetterDeleted,
		Letter: *letter,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "letter deleted successfully", nil)
}

func fetchLetterWithRelations(id string) (*models.Letter, error) {
	var letter models.Letter
	err := config.DB.
		Preload("Signatories", orderBySortOrder).
		Preload("Activities", orderByNo).
		First(&letter, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func orderBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func orderByNo(db *gorm.DB) *gorm.DB {
	return db.Order("no ASC")
}

// attachSignatureURLs melengkapi response dengan presigned URL per
// tanda tangan. signature_image tetap berisi key objek mentah supaya
// klien yang menggemakan payload GET ke PUT menyimpan key, bukan URL
// presigned yang kedaluwarsa.
func attachSignatureURLs(resp *letterdto.LetterResponse) {
	for i := range resp.Signatories {
		sig := &resp.Signatories[i]
		if sig.SignatureImage == nil || *sig.SignatureImage == "" {
			continue
		}
		url, err := storage.GetPresignedURL(*sig.SignatureImage)
		if err != nil {
			log.Printf("Failed to presign URL for key %s: %v", *sig.SignatureImage, err)
			continue
		}
		sig.SignatureURL = &url
	}
}
