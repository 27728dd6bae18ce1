package companies

import (
	"time"

	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Motto     string    `json:"motto"`
	Website   string    `json:"website"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCompanyResponse(company models.Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		Address:   company.Address,
		Phone:     company.Phone,
		Email:     company.Email,
		Motto:     company.Motto,
		Website:   company.Website,
		Logo:      company.Logo,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
