package hotmart

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

const (
	SignatureHeader       = "X-Hotmart-Signature"
	LegacySignatureHeader = "X-Hotmart-Hmac"

	signaturePrefix = "sha256="
)

// SignatureFromHeader retorna a assinatura enviada pela Hotmart sem o prefixo sha256=
func SignatureFromHeader(header http.Header) string {
	raw := header.Get(SignatureHeader)
	if raw == "" {
		raw = header.Get(LegacySignatureHeader)
	}

	raw = strings.TrimSpace(raw)
	if len(raw) >= len(signaturePrefix) && strings.EqualFold(raw[:len(signaturePrefix)], signaturePrefix) {
		raw = raw[len(signaturePrefix):]
	}

	return raw
}

// VerifySignature compara em tempo constante o HMAC-SHA256 do corpo bruto com a assinatura em hex.
// Segredo ou assinatura vazios nunca são aceitos.
func VerifySignature(rawBody []byte, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	if len(provided) != len(expected) {
		return false
	}

	return hmac.Equal(provided, expected)
}

// Sign gera a assinatura em hex do corpo, no mesmo formato enviado pela Hotmart
func Sign(rawBody []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}
