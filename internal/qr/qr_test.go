package qr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvitationURL(t *testing.T) {
	require.Equal(t, "https://example.com/abc123", InvitationURL("https://example.com", "abc123"))
	require.Equal(t, "https://example.com/abc123", InvitationURL("https://example.com/", "abc123"))
	// Codes are opaque; anything URL-hostile gets escaped.
	require.Equal(t, "https://example.com/a%20b", InvitationURL("https://example.com", "a b"))
}

func TestImageURL(t *testing.T) {
	link := "https://example.com/abc123"
	got := ImageURL("https://api.qrserver.com/v1/create-qr-code/", link, 200)

	require.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=https%3A%2F%2Fexample.com%2Fabc123",
		got)
}

func TestImageURLDefaultSize(t *testing.T) {
	got := ImageURL("https://api.qrserver.com/v1/create-qr-code/", "x", 0)

	require.Contains(t, got, "size=200x200")
}

func TestEncodeProducesPNG(t *testing.T) {
	png, err := Encode("https://example.com/abc123", 256)

	require.NoError(t, err)
	require.NotEmpty(t, png)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
