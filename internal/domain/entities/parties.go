package entities

// BusinessInfo identifies the invoice issuer. It is edited independently of
// the invoice and survives a clear.
type BusinessInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ClientInfo identifies the invoice recipient. Clearing the invoice resets it
// to the template default.
type ClientInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// DefaultBusinessInfo returns the template issuer identity.
func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{
		Name:    "Your Company LLC",
		Address: "123 Main Street, Anytown, USA 12345",
		Email:   "contact@yourcompany.com",
		Phone:   "(555) 123-4567",
	}
}

// DefaultClientInfo returns the template recipient identity.
func DefaultClientInfo() ClientInfo {
	return ClientInfo{
		Name:    "Client Company",
		Address: "456 Oak Avenue, Sometown, USA 54321",
		Email:   "contact@clientco.com",
	}
}
