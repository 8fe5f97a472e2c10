// Package qrcode renders delivery locations as scannable geo: URIs.
package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"kedai/config"
	"kedai/internal/domain/entity"
	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/domain/service"
	"kedai/internal/errors"

	"github.com/skip2/go-qrcode"
)

const geoScheme = "geo:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New creates the QR code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		cfg.ApplyDefaults()
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// LocationURI formats a delivery location as an RFC 5870 geo URI with the address as query.
func LocationURI(details *entity.DeliveryAddressDetails) string {
	uri := fmt.Sprintf("%s%s,%s",
		geoScheme,
		strconv.FormatFloat(details.Latitude, 'f', 6, 64),
		strconv.FormatFloat(details.Longitude, 'f', 6, 64),
	)
	if details.Address != "" {
		uri += "?q=" + url.QueryEscape(details.Address)
	}

	return uri
}

// GenerateLocationQR renders the delivery location as a PNG QR code
func (s *qrcodeService) GenerateLocationQR(details *entity.DeliveryAddressDetails) ([]byte, error) {
	if details == nil {
		return nil, domainerrors.ErrNoSelectedAddress
	}

	coord := entity.Coordinate{Latitude: details.Latitude, Longitude: details.Longitude}
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(coord.String())
	}

	qrCode, err := qrcode.New(LocationURI(details), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseLocationQR reads the coordinate back from a geo URI
func (s *qrcodeService) ParseLocationQR(data string) (entity.Coordinate, error) {
	data = strings.TrimSpace(data)
	if !strings.HasPrefix(strings.ToLower(data), geoScheme) {
		return entity.Coordinate{}, errors.Errorf("invalid QR code: not a geo URI: %q", data)
	}

	body := data[len(geoScheme):]
	if i := strings.IndexAny(body, ";?"); i >= 0 {
		body = body[:i]
	}

	parts := strings.Split(body, ",")
	if len(parts) < 2 {
		return entity.Coordinate{}, errors.Errorf("invalid geo URI: %q", data)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to parse latitude")
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to parse longitude")
	}

	coord := entity.Coordinate{Latitude: lat, Longitude: lng}
	if !coord.Valid() {
		return entity.Coordinate{}, domainerrors.ErrInvalidCoordinate.WithDetails(coord.String())
	}

	return coord, nil
}
