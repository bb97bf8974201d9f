package services

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Logo is a fully resolved company logo: raw encoded image bytes plus the
// format tag the PDF layer expects ("JPEG" or "PNG"). Resolution happens
// before composition; the compositor never performs I/O.
type Logo struct {
	Data   []byte
	Format string
}

// ResolveLogo decodes the base64 data URL stored in business settings.
// An empty value resolves to no logo (nil, nil). The payload is not checked
// for decodability here; the compositor decides per placement how an
// undecodable image is handled.
func ResolveLogo(dataURL string) (*Logo, error) {
	if dataURL == "" {
		return nil, nil
	}

	format := "JPEG"
	payload := dataURL
	if strings.HasPrefix(dataURL, "data:") {
		mime, rest, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ";base64,")
		if !ok {
			return nil, fmt.Errorf("logo is not a base64 data URL")
		}
		payload = rest
		switch mime {
		case "image/png":
			format = "PNG"
		case "image/jpeg", "image/jpg":
			format = "JPEG"
		default:
			return nil, fmt.Errorf("unsupported logo type %q", mime)
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}

	return &Logo{Data: data, Format: format}, nil
}
