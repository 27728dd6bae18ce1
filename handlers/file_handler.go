package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/garudaofficial24/BillMaster-Garuda/utils"
	"github.com/garudaofficial24/BillMaster-Garuda/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Batas ukuran gambar tanda tangan
const maxSignatureSize = 2 * 1024 * 1024

const uploadTimeout = 30 * time.Second

// UploadSignature - POST /api/upload-signature
// Menerima satu gambar tanda tangan (form field "file"), menolak file
// non-gambar atau lebih dari 2MB sebelum menyentuh storage.
func UploadSignature(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "form field 'file' (image upload) is required", nil)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "only image files are allowed", nil)
	}

	if fileHeader.Size > maxSignatureSize {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "file size must be less than 2MB", nil)
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("signatures/%s%s", uuid.NewString(), ext)

	ctx, cancel := context.WithTimeout(c.Context(), uploadTimeout)
	defer cancel()

	if _, err := storage.UploadFile(ctx, fileHeader, key); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to upload signature", err.Error())
	}

	return c.JSON(fiber.Map{"signature": key})
}
