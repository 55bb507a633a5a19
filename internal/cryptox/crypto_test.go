package cryptox

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/edgcastillo/saveddit/internal/common"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := ParseKey(strings.Repeat("ab", KeySize))
	if err != nil {
		t.Fatalf("ParseKey error: %v", err)
	}
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)

	for _, plaintext := range []string{"", "p", "hunter2", "пароль", strings.Repeat("x", 4096)} {
		blob, err := Encrypt([]byte(plaintext), key)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		got, err := Decrypt(blob, key)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if string(got) != plaintext {
			t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
		}
	}
}

func TestEncrypt_FreshNonce(t *testing.T) {
	key := testKey(t)

	a, err := Encrypt([]byte("same input"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b, err := Encrypt([]byte("same input"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if a == b {
		t.Fatalf("two encryptions of the same plaintext produced identical blobs")
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	key := testKey(t)

	blob, err := Encrypt([]byte("secret"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := Decrypt(tampered, key); !errors.Is(err, common.ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	key := testKey(t)
	other, err := ParseKey(strings.Repeat("cd", KeySize))
	if err != nil {
		t.Fatalf("ParseKey error: %v", err)
	}

	blob, err := Encrypt([]byte("secret"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := Decrypt(blob, other); !errors.Is(err, common.ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecrypt_MalformedInput(t *testing.T) {
	key := testKey(t)

	for _, blob := range []string{"not base64!!!", "", base64.StdEncoding.EncodeToString([]byte("short"))} {
		if _, err := Decrypt(blob, key); !errors.Is(err, common.ErrDecryptionFailed) {
			t.Fatalf("blob %q: expected ErrDecryptionFailed, got %v", blob, err)
		}
	}
}

func TestParseKey(t *testing.T) {
	if _, err := ParseKey("zz"); err == nil {
		t.Fatalf("expected error for non-hex key")
	}
	if _, err := ParseKey("abcd"); err == nil {
		t.Fatalf("expected error for short key")
	}
	if _, err := ParseKey(strings.Repeat("00", KeySize)); err != nil {
		t.Fatalf("unexpected error for valid key: %v", err)
	}
}
