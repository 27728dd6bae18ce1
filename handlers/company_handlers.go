package handlers

import (
	"strconv"
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/config"
	companydto "github.com/garudaofficial24/BillMaster-Garuda/dto/companies"
	"github.com/garudaofficial24/BillMaster-Garuda/models"
	"github.com/garudaofficial24/BillMaster-Garuda/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/companies
func CreateCompany(c *fiber.Ctx) error {
	var req companydto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	company := req.ToModel()
	if err := config.DB.Create(&company).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create company", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "company created successfully", companydto.NewCompanyResponse(company))
}

// GET /api/companies/:id
func GetCompanyByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var company models.Company
	if err := config.DB.First(&company, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "company not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve company", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "company retrieved successfully", companydto.NewCompanyResponse(company))
}

// GET /api/companies?page=&limit=&q=
func ListCompanies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	q := strings.TrimSpace(c.Query("q", ""))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	tx := config.DB.Model(&models.Company{})
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count companies", err.Error())
	}

	var companies []models.Company
	if err := tx.Order("name ASC").Limit(limit).Offset(offset).Find(&companies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve companies", err.Error())
	}

	responses := make([]companydto.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, companydto.NewCompanyResponse(companies[i]))
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.PaginatedResponse(c, fiber.StatusOK, "companies retrieved successfully", responses, meta)
}

// PUT /api/companies/:id
func UpdateCompany(c *fiber.Ctx) error {
	id := c.Params("id")

	var company models.Company
	if err := config.DB.First(&company, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "company not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve company", err.Error())
	}

	var req companydto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	companydto.ApplyUpdate(&company, &req)

	if err := config.DB.Save(&company).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update company", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "company updated successfully", companydto.NewCompanyResponse(company))
}

// DELETE /api/companies/:id
func DeleteCompany(c *fiber.Ctx) error {
	id := c.Params("id")

	result := config.DB.Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete company", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "company not found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "company deleted successfully", nil)
}
