package dto

import "time"

// RegisterCompanyRequest is B2B self-registration; the account starts as
// pending until an admin approves it.
type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name"`
	EIK         string `json:"eik"`
	MOL         string `json:"mol"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Password    string `json:"password"`
}

// ApproveCompanyRequest assigns a tier on approval/reactivation.
type ApproveCompanyRequest struct {
	Tier  string `json:"tier"` // silver, gold, platinum
	Notes string `json:"notes,omitempty"`
}

// CompanyResponse is the admin/partner view of an account.
type CompanyResponse struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"company_name"`
	EIK              string     `json:"eik"`
	MOL              string     `json:"mol"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Address          string     `json:"address,omitempty"`
	Status           string     `json:"status"`
	Tier             string     `json:"tier,omitempty"`
	DiscountPercent  string     `json:"discount_percent"`
	PaymentTermsDays int        `json:"payment_terms_days"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
