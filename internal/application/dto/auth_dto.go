package dto

// LoginRequest is shared by admin and B2B login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginResponse is the back-office login result.
type AdminLoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// B2BLoginResponse is the partner login result; tier and discount are the
// claims consumed by the storefront.
type B2BLoginResponse struct {
	Token           string `json:"token"`
	CompanyName     string `json:"company_name"`
	Tier            string `json:"tier"`
	DiscountPercent string `json:"discount_percent"`
}
