package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartnerRequest body para POST /api/partners y PUT /api/partners/:id.
type CreatePartnerRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	CEO           string          `json:"ceo"`
	Type          string          `json:"type"`
	Items         string          `json:"items"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	CurrentCredit decimal.Decimal `json:"current_credit"`
	Manager       string          `json:"manager"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	PaymentTerms  string          `json:"payment_terms"`
	Notes         string          `json:"notes"`
}

// PartnerResponse representación pública de un socio comercial.
type PartnerResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	CEO           string          `json:"ceo,omitempty"`
	Type          string          `json:"type,omitempty"`
	Items         string          `json:"items,omitempty"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	CurrentCredit decimal.Decimal `json:"current_credit"`
	Manager       string          `json:"manager,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
