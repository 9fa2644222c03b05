// Package qr builds the QR payloads printed on invitation cards. The
// payload is always the guest's own invitation URL; the image can come
// either from the third-party generator the papers page historically used
// or from a locally rendered PNG.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// InvitationURL is the fully-qualified link a QR code resolves to.
func InvitationURL(baseURL, code string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(code)
}

// ImageURL points at the external QR image generator for a given link.
func ImageURL(imageBase, link string, size int) string {
	if size <= 0 {
		size = 200
	}
	return fmt.Sprintf("%s?size=%dx%d&data=%s",
		strings.TrimRight(imageBase, "?"), size, size, url.QueryEscape(link))
}

// Encode renders the link as a PNG, for serving QR images without the
// third-party dependency.
func Encode(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = 200
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}
