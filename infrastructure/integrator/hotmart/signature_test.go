package hotmart

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   http.Header
		expected string
	}{
		{
			name:     "Header principal com prefixo",
			header:   http.Header{"X-Hotmart-Signature": []string{"sha256=abc123"}},
			expected: "abc123",
		},
		{
			name:     "Prefixo em maiúsculas",
			header:   http.Header{"X-Hotmart-Signature": []string{"SHA256=abc123"}},
			expected: "abc123",
		},
		{
			name:     "Header alternativo",
			header:   http.Header{"X-Hotmart-Hmac": []string{"def456"}},
			expected: "def456",
		},
		{
			name: "Header principal tem prioridade",
			header: http.Header{
				"X-Hotmart-Signature": []string{"abc"},
				"X-Hotmart-Hmac":      []string{"def"},
			},
			expected: "abc",
		},
		{
			name:     "Sem header",
			header:   http.Header{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignatureFromHeader(tt.header))
		})
	}
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"transaction_id":"HP-1"}`)
	secret := "s3cr3t"
	valid := Sign(body, secret)

	tests := []struct {
		name      string
		body      []byte
		signature string
		secret    string
		expected  bool
	}{
		{name: "Assinatura válida", body: body, signature: valid, secret: secret, expected: true},
		{name: "Assinatura válida em maiúsculas", body: body, signature: strings.ToUpper(valid), secret: secret, expected: true},
		{name: "Segredo vazio", body: body, signature: valid, secret: "", expected: false},
		{name: "Assinatura vazia", body: body, signature: "", secret: secret, expected: false},
		{name: "Hex inválido", body: body, signature: "zz" + valid[2:], secret: secret, expected: false},
		{name: "Tamanho diferente", body: body, signature: valid[:32], secret: secret, expected: false},
		{name: "Corpo alterado", body: []byte(`{"transaction_id":"HP-2"}`), signature: valid, secret: secret, expected: false},
		{name: "Segredo diferente", body: body, signature: valid, secret: "outro", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VerifySignature(tt.body, tt.signature, tt.secret))
		})
	}
}
