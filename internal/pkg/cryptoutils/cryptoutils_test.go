package cryptoutils

import "testing"

func TestEncryptDecryptRoundtrip(t *testing.T) {
	c, err := NewCipher("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	cases := []string{
		"ya29.a0AfH6SMB-refresh-token",
		"",
		"short",
	}

	for _, plain := range cases {
		enc, err := c.Encrypt(plain)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", plain, err)
		}
		if plain != "" && enc == plain {
			t.Fatalf("ciphertext equals plaintext for %q", plain)
		}
		dec, err := c.Decrypt(enc)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", plain, err)
		}
		if dec != plain {
			t.Fatalf("roundtrip mismatch: got %q want %q", dec, plain)
		}
	}
}

func TestNewCipherRejectsBadKey(t *testing.T) {
	if _, err := NewCipher("too-short"); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	c, _ := NewCipher("0123456789abcdef")
	if _, err := c.Decrypt("AAAA"); err == nil {
		t.Fatal("expected error for truncated ciphertext")
	}
}
