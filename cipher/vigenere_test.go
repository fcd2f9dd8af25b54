package cipher

import (
	"errors"
	"testing"
)

func TestVigenereReferenceVector(t *testing.T) {
	c, err := NewVigenere("nadeem")
	if err != nil {
		t.Fatalf("NewVigenere returned error: %v", err)
	}

	got, err := c.Encrypt("minahil")
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if got != "ziqeluy" {
		t.Errorf("Encrypt(minahil) = %q, want %q", got, "ziqeluy")
	}

	got, err = c.Decrypt("ziqeluy")
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if got != "minahil" {
		t.Errorf("Decrypt(ziqeluy) = %q, want %q", got, "minahil")
	}
}

func TestVigenereNonAlphaDoesNotConsumeKeyStream(t *testing.T) {
	c, err := NewVigenere("ab")
	if err != nil {
		t.Fatalf("NewVigenere returned error: %v", err)
	}
	// With key "ab" letters at even key-stream positions are unshifted and
	// odd ones shift by one; the space must not advance the stream, so the
	// pattern stays "ab" on both sides of it.
	got, _ := c.Encrypt("aa aa")
	if got != "ab ab" {
		t.Errorf("Encrypt(aa aa) = %q, want %q", got, "ab ab")
	}
}

func TestVigenereKeywordWithNonLetters(t *testing.T) {
	plain, err := NewVigenere("nadeem")
	if err != nil {
		t.Fatalf("NewVigenere returned error: %v", err)
	}
	noisy, err := NewVigenere("na-de em!")
	if err != nil {
		t.Fatalf("NewVigenere returned error: %v", err)
	}
	want, _ := plain.Encrypt("minahil")
	got, _ := noisy.Encrypt("minahil")
	if got != want {
		t.Errorf("keyword with punctuation produced %q, want %q", got, want)
	}
}

func TestVigenereRejectsLetterFreeKeyword(t *testing.T) {
	for _, key := range []string{"", "42", "--"} {
		if _, err := NewVigenere(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("NewVigenere(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestVigenereRoundTripMixedCase(t *testing.T) {
	c, err := NewVigenere("Lemon")
	if err != nil {
		t.Fatalf("NewVigenere returned error: %v", err)
	}
	plain := "Attack At Dawn, 06:00!"
	enc, _ := c.Encrypt(plain)
	dec, _ := c.Decrypt(enc)
	if dec != plain {
		t.Errorf("round trip = %q, want %q", dec, plain)
	}
}
