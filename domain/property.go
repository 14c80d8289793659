package domain

// Address es la ubicación de una propiedad
type Address struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Offers describe las comodidades de una propiedad
type Offers struct {
	Bed       string `json:"bed"`
	Shower    string `json:"shower"`
	Occupants string `json:"occupants"`
}

// Property representa una propiedad de alquiler tipo Airbnb.
// Discount es un porcentaje como string; vacío significa SIN descuento
// (que no es lo mismo que descuento del 0%: el precio tachado solo se
// muestra cuando hay descuento).
type Property struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     Address  `json:"address"`
	Rating      float64  `json:"rating"`
	Category    []string `json:"category"`
	Price       float64  `json:"price"`
	Offers      Offers   `json:"offers"`
	Image       string   `json:"image"`
	Discount    string   `json:"discount,omitempty"`
}
