package model

// Product is the canonical product shape returned by the inventory API.
// Every field is server-owned; the client renders them and never recomputes
// anything locally. In particular IsLowStock is the backend's verdict, the
// client does not compare Quantity against a threshold of its own.
type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	IsLowStock bool      `json:"isLowStock"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// ProductFormData is the editable projection of Product used for create and
// update requests. The validate tags mirror the form field constraints only
// (required fields, non-negative price and quantity); business rules such as
// duplicate names stay on the backend.
type ProductFormData struct {
	Name     string  `json:"name" form:"name" validate:"required"`
	Category string  `json:"category" form:"category" validate:"required"`
	Price    float64 `json:"price" form:"price" validate:"min=0"`
	Quantity int     `json:"quantity" form:"quantity" validate:"min=0"`
}

// FormDataFrom seeds an edit draft from an existing product.
func FormDataFrom(p *Product) ProductFormData {
	if p == nil {
		return ProductFormData{}
	}
	return ProductFormData{
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
