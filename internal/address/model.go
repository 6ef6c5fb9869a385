package address

import "time"

type Type string

const (
	TypeShipping Type = "shipping"
	TypeBilling  Type = "billing"
)

type Address struct {
	ID           string    `json:"id"`
	UserID       *uint     `json:"user_id,omitempty"`
	Type         Type      `json:"type"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Company      *string   `json:"company,omitempty"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 *string   `json:"addressLine2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	Country      string    `json:"country"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Input is the address payload accepted at checkout.
type Input struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Company      *string `json:"company,omitempty"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`
	Country      string  `json:"country"`
}

// Valid reports whether the required fields are present.
func (in *Input) Valid() bool {
	return in.FirstName != "" &&
		in.LastName != "" &&
		in.AddressLine1 != "" &&
		in.City != "" &&
		in.State != "" &&
		in.PostalCode != "" &&
		in.Country != ""
}
