package cipher

import (
	"errors"
	"testing"
)

func TestAffineReferenceVector(t *testing.T) {
	c, err := NewAffine(9, 9)
	if err != nil {
		t.Fatalf("NewAffine(9, 9) returned error: %v", err)
	}

	got, err := c.Encrypt("aleena")
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if got != "jettwj" {
		t.Errorf("Encrypt(aleena) = %q, want %q", got, "jettwj")
	}

	got, err = c.Decrypt("jettwj")
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if got != "aleena" {
		t.Errorf("Decrypt(jettwj) = %q, want %q", got, "aleena")
	}
}

func TestAffineRejectsNonInvertibleA(t *testing.T) {
	for _, a := range []int{13, 4, 2, 0, 26} {
		if _, err := NewAffine(a, 5); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("NewAffine(%d, 5) error = %v, want ErrInvalidKey", a, err)
		}
	}
}

func TestAffineBUnconstrained(t *testing.T) {
	plain := "The quick, brown fox!"
	for _, b := range []int{0, 1, 25, 26, 100, -7} {
		c, err := NewAffine(5, b)
		if err != nil {
			t.Fatalf("NewAffine(5, %d) returned error: %v", b, err)
		}
		enc, _ := c.Encrypt(plain)
		dec, _ := c.Decrypt(enc)
		if dec != plain {
			t.Errorf("round trip with b=%d = %q, want %q", b, dec, plain)
		}
	}
}

func TestAffineWithAOneAndBZeroIsIdentity(t *testing.T) {
	c, err := NewAffine(1, 0)
	if err != nil {
		t.Fatalf("NewAffine(1, 0) returned error: %v", err)
	}
	got, _ := c.Encrypt("Unchanged Text.")
	if got != "Unchanged Text." {
		t.Errorf("Encrypt = %q, want identity", got)
	}
}
