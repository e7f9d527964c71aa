package dto

import "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"

// CheckoutRequest is accepted both as JSON and as a submitted HTML form
type CheckoutRequest struct {
	Kind          string  `json:"kind" form:"kind"`
	Amount        string  `json:"amount" form:"amount"`
	Method        string  `json:"method" form:"method"`
	ProductID     *uint64 `json:"productId" form:"product_id"`
	LicenseID     *uint64 `json:"licenseId" form:"license_id"`
	RenewalMonths int     `json:"renewalMonths" form:"renewal_months"`
	DonorName     string  `json:"donorName" form:"donor_name" binding:"max=200"`
	DonorEmail    string  `json:"donorEmail" form:"donor_email" binding:"max=254"`
	DonorMessage  string  `json:"donorMessage" form:"donor_message" binding:"max=2000"`
}

// ToUseCase maps the request onto the checkout use case input
func (r CheckoutRequest) ToUseCase() usecase.CheckoutRequest {
	return usecase.CheckoutRequest{
		Kind:          r.Kind,
		Amount:        r.Amount,
		Method:        r.Method,
		ProductID:     r.ProductID,
		LicenseID:     r.LicenseID,
		RenewalMonths: r.RenewalMonths,
		DonorName:     r.DonorName,
		DonorEmail:    r.DonorEmail,
		DonorMessage:  r.DonorMessage,
	}
}

// CheckoutResponse carries the gateway redirect for JSON clients
type CheckoutResponse struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirectUrl"`
}
