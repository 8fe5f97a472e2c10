package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"kedai/internal/domain/entity"

	"github.com/pkg/errors"
)

// envelope is the backend's response wrapper. Success is signalled by the
// status field, not only by the HTTP status code.
type envelope struct {
	Status  responseStatus  `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// responseStatus accepts "success"/"ok", true/false, 1/0 and HTTP-style codes.
type responseStatus struct {
	present bool
	ok      bool
	raw     string
}

func (s *responseStatus) UnmarshalJSON(b []byte) error {
	s.present = true
	s.raw = strings.Trim(string(b), `"`)

	switch b = bytes.TrimSpace(b); {
	case bytes.Equal(b, []byte("null")):
		s.present = false
	case bytes.Equal(b, []byte("true")):
		s.ok = true
	case bytes.Equal(b, []byte("false")):
		s.ok = false
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return errors.WithStack(err)
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "success", "ok", "1", "200", "201":
			s.ok = true
		}
	default:
		code, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return errors.Wrapf(err, "unrecognized status %s", b)
		}
		s.ok = successCode(code)
	}

	return nil
}

// successCode treats 1 (boolean-style) and any 2xx code as success.
func successCode(code float64) bool {
	return code == 1 || (code >= 200 && code < 300)
}

// flexString accepts JSON strings and numbers (ids are numeric on some endpoints).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""

		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return errors.WithStack(err)
		}
		*f = flexString(v)

		return nil
	}

	*f = flexString(b)

	return nil
}

// flexFloat accepts JSON numbers and numeric strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		*f = 0

		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid coordinate %q", s)
	}
	*f = flexFloat(v)

	return nil
}

// defaultFlag decodes is_default from "1"/"0", 1/0 or true/false into a bool,
// so ordering never depends on string comparison.
type defaultFlag bool

func (d *defaultFlag) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.Trim(string(bytes.TrimSpace(b)), `"`))
	switch s {
	case "1", "true", "yes":
		*d = true
	case "0", "false", "no", "", "null":
		*d = false
	default:
		return errors.Errorf("invalid is_default value %s", b)
	}

	return nil
}

type addressDTO struct {
	ID         flexString  `json:"id"`
	CustomerID flexString  `json:"customer_id"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	Unit       string      `json:"unit"`
	Address    string      `json:"address"`
	Note       string      `json:"note"`
	Latitude   flexFloat   `json:"latitude"`
	Longitude  flexFloat   `json:"longitude"`
	IsDefault  defaultFlag `json:"is_default"`
}

func (d *addressDTO) toEntity() *entity.Address {
	return &entity.Address{
		ID:         string(d.ID),
		CustomerID: string(d.CustomerID),
		Name:       d.Name,
		Phone:      d.Phone,
		Unit:       d.Unit,
		Address:    d.Address,
		Note:       d.Note,
		Latitude:   float64(d.Latitude),
		Longitude:  float64(d.Longitude),
		IsDefault:  bool(d.IsDefault),
	}
}

// echoedAddress decodes the record some mutation endpoints return. Anything
// that is not an object (a message string, an id) is ignored.
type echoedAddress struct {
	addressDTO
}

func (e *echoedAddress) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	var dto addressDTO
	if err := json.Unmarshal(b, &dto); err != nil {
		return nil //nolint:nilerr // the echo is optional
	}
	e.addressDTO = dto

	return nil
}

// addressRequest is the create/update body. The default flag is not part of it:
// it only changes through the set-default endpoint.
type addressRequest struct {
	Address    string  `json:"address"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Unit       string  `json:"unit"`
	Note       string  `json:"note"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CustomerID string  `json:"customer_id"`
}

func newAddressRequest(a *entity.Address) *addressRequest {
	return &addressRequest{
		Address:    a.Address,
		Name:       a.Name,
		Phone:      a.Phone,
		Unit:       a.Unit,
		Note:       a.Note,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		CustomerID: a.CustomerID,
	}
}

type setDefaultRequest struct {
	CustomerID string `json:"customer_id"`
}
