package companies

import (
	"strings"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Motto   string `json:"motto"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Motto   *string `json:"motto"`
	Website *string `json:"website"`
	Logo    *string `json:"logo"`
}

func (r *CreateCompanyRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(r.Address) == "" {
		errors["address"] = "address is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errors["phone"] = "phone is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	}

	return errors
}

func (r *UpdateCompanyRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	return errors
}

func (r *CreateCompanyRequest) ToModel() models.Company {
	return models.Company{
		Name:    strings.TrimSpace(r.Name),
		Address: strings.TrimSpace(r.Address),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
		Motto:   strings.TrimSpace(r.Motto),
		Website: strings.TrimSpace(r.Website),
		Logo:    strings.TrimSpace(r.Logo),
	}
}

func ApplyUpdate(company *models.Company, req *UpdateCompanyRequest) {
	if company == nil || req == nil {
		return
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		company.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		company.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		company.Email = strings.TrimSpace(*req.Email)
	}
	if req.Motto != nil {
		company.Motto = strings.TrimSpace(*req.Motto)
	}
	if req.Website != nil {
		company.Website = strings.TrimSpace(*req.Website)
	}
	if req.Logo != nil {
		company.Logo = strings.TrimSpace(*req.Logo)
	}
}
