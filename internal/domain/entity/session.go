package entity

// Customer is the cached profile of the signed-in customer.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Session is the locally persisted identity: bearer token plus profile.
type Session struct {
	Token    string    `json:"token"`
	Customer *Customer `json:"customer,omitempty"`

	// Forwarded marks a session supplied per request by the bridge server
	// instead of read from the device.
	Forwarded bool `json:"-"`
}

// CustomerID returns the customer id or an empty string.
func (s *Session) CustomerID() string {
	if s == nil || s.Customer == nil {
		return ""
	}

	return s.Customer.ID
}

// DeliveryAddressDetails is the snapshot persisted when an address is selected for an order.
type DeliveryAddressDetails struct {
	AddressID string  `json:"addressId"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate returns the delivery position.
func (d *DeliveryAddressDetails) Coordinate() Coordinate {
	return Coordinate{Latitude: d.Latitude, Longitude: d.Longitude}
}
