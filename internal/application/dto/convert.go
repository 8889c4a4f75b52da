package dto

import "github.com/partes-app/partes-api/internal/domain/entity"

// Conversión entidad → respuesta pública. Las respuestas nunca exponen OwnerID.

// NewItemResponse convierte un artículo a su representación pública.
func NewItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Code:        i.Code,
		Name:        i.Name,
		Category:    i.Category,
		Price:       i.Price,
		MainStock:   i.MainStock,
		ShopStock:   i.ShopStock,
		Total:       i.Total,
		SafetyStock: i.SafetyStock,
		BelowSafety: i.BelowSafety(),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// NewItemResponses convierte una lista de artículos.
func NewItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, NewItemResponse(i))
	}
	return out
}

// NewMovementResponse convierte un movimiento a su representación pública.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		ItemID:        m.ItemID,
		ItemCode:      m.ItemCode,
		ItemName:      m.ItemName,
		Price:         m.Price,
		Quantity:      m.Quantity,
		Supplier:      m.Supplier,
		Destination:   m.Destination,
		CustomerPhone: m.CustomerPhone,
		Notes:         m.Notes,
		SerialNumbers: m.SerialNumbers,
		Date:          m.Date.Format("2006-01-02"),
		CreatedAt:     m.CreatedAt,
	}
}

// NewMovementResponses convierte una lista de movimientos.
func NewMovementResponses(movements []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, NewMovementResponse(m))
	}
	return out
}

// NewPartnerResponse convierte un socio a su representación pública.
func NewPartnerResponse(p *entity.Partner) PartnerResponse {
	return PartnerResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		CEO:           p.CEO,
		Type:          p.Type,
		Items:         p.Items,
		CreditLimit:   p.CreditLimit,
		CurrentCredit: p.CurrentCredit,
		Manager:       p.Manager,
		Phone:         p.Phone,
		Email:         p.Email,
		Address:       p.Address,
		PaymentTerms:  p.PaymentTerms,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewPartnerResponses convierte una lista de socios.
func NewPartnerResponses(partners []*entity.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, NewPartnerResponse(p))
	}
	return out
}

// NewSerialResponse convierte un serial a su representación pública.
func NewSerialResponse(s *entity.Serial) SerialResponse {
	return SerialResponse{
		ID:           s.ID,
		SerialNumber: s.SerialNumber,
		ItemID:       s.ItemID,
		ItemCode:     s.ItemCode,
		ItemName:     s.ItemName,
		Status:       s.Status,
		PurchaseDate: s.PurchaseDate.Format("2006-01-02"),
		Supplier:     s.Supplier,
		CreatedAt:    s.CreatedAt,
	}
}

// NewSerialResponses convierte una lista de seriales.
func NewSerialResponses(serials []*entity.Serial) []SerialResponse {
	out := make([]SerialResponse, 0, len(serials))
	for _, s := range serials {
		out = append(out, NewSerialResponse(s))
	}
	return out
}
