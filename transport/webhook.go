package transport

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
)

const signatureHeader = "X-Gateway-Signature"

// verifyWebhookSignature checks the HMAC-SHA256 hex digest the gateway sends
// over the raw body and returns that body for decoding. An unconfigured
// secret rejects everything; a webhook surface must never be open.
func verifyWebhookSignature(r *http.Request, secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret not configured")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		return nil, fmt.Errorf("missing %s header", signatureHeader)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return nil, fmt.Errorf("signature mismatch")
	}

	return body, nil
}
