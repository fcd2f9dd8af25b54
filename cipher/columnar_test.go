package cipher

import (
	"errors"
	"testing"
)

func TestColumnOrder(t *testing.T) {
	tests := []struct {
		key  string
		want []int
	}{
		// "sehar" sorts to a, e, h, r, s.
		{"sehar", []int{4, 1, 2, 0, 3}},
		{"zebra", []int{4, 2, 1, 3, 0}},
		// Duplicate letters keep left-to-right order.
		{"aa", []int{0, 1}},
		{"baab", []int{2, 0, 1, 3}},
		{"k", []int{0}},
	}
	for _, tt := range tests {
		got := columnOrder(keywordLetters(tt.key))
		if len(got) != len(tt.want) {
			t.Fatalf("columnOrder(%q) length = %d, want %d", tt.key, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("columnOrder(%q) = %v, want %v", tt.key, got, tt.want)
				break
			}
		}
	}
}

func TestColumnarReferenceVector(t *testing.T) {
	c, err := NewColumnar("sehar")
	if err != nil {
		t.Fatalf("NewColumnar returned error: %v", err)
	}

	got, err := c.Encrypt("aleena")
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if got != "elenaa" {
		t.Errorf("Encrypt(aleena) = %q, want %q", got, "elenaa")
	}

	got, err = c.Decrypt("elenaa")
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if got != "aleena" {
		t.Errorf("Decrypt(elenaa) = %q, want %q", got, "aleena")
	}
}

func TestColumnarKeepsEveryCharacter(t *testing.T) {
	c, err := NewColumnar("zebra")
	if err != nil {
		t.Fatalf("NewColumnar returned error: %v", err)
	}
	// Spaces and punctuation occupy grid cells like any other character and
	// no padding is introduced, so the length never changes.
	plain := "we are discovered, flee at once!"
	enc, _ := c.Encrypt(plain)
	if len(enc) != len(plain) {
		t.Fatalf("Encrypt changed length: %d -> %d", len(plain), len(enc))
	}
	dec, _ := c.Decrypt(enc)
	if dec != plain {
		t.Errorf("round trip = %q, want %q", dec, plain)
	}
}

func TestColumnarTextShorterThanKey(t *testing.T) {
	c, err := NewColumnar("longkeyword")
	if err != nil {
		t.Fatalf("NewColumnar returned error: %v", err)
	}
	for _, plain := range []string{"", "a", "hi", "abc def"} {
		enc, _ := c.Encrypt(plain)
		dec, _ := c.Decrypt(enc)
		if dec != plain {
			t.Errorf("round trip of %q = %q", plain, dec)
		}
	}
}

func TestColumnarRejectsLetterFreeKey(t *testing.T) {
	for _, key := range []string{"", "  ", "123"} {
		if _, err := NewColumnar(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("NewColumnar(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}
