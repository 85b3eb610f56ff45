package push

import (
	"encoding/base64"
	"testing"
)

func TestGenerateVAPIDKeys(t *testing.T) {
	pub, priv, err := GenerateVAPIDKeys()
	if err != nil {
		t.Fatalf("generate keys: %v", err)
	}
	if pub == "" || priv == "" {
		t.Fatal("expected non-empty keys")
	}

	pubBytes, err := base64.RawURLEncoding.DecodeString(pub)
	if err != nil {
		t.Fatalf("decode public key: %v", err)
	}
	// Uncompressed P-256 point: 0x04 prefix + 2*32 bytes.
	if len(pubBytes) != 65 {
		t.Errorf("public key length = %d, want 65", len(pubBytes))
	}
	if pubBytes[0] != 0x04 {
		t.Errorf("public key prefix = %#x, want 0x04", pubBytes[0])
	}
}

func TestVAPIDPublicKeyAccessor(t *testing.T) {
	svc := NewService("pub-key", "priv-key")
	if got := svc.VAPIDPublicKey(); got != "pub-key" {
		t.Errorf("VAPIDPublicKey() = %q, want %q", got, "pub-key")
	}
}
