package service

import "kedai/internal/domain/entity"

// QRCodeService defines the interface for delivery location QR codes
type QRCodeService interface {
	// GenerateLocationQR renders the delivery location as a geo: URI QR code (PNG)
	GenerateLocationQR(details *entity.DeliveryAddressDetails) ([]byte, error)

	// ParseLocationQR reads a geo: URI back into a coordinate
	ParseLocationQR(data string) (entity.Coordinate, error)
}
