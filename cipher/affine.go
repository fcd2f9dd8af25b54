package cipher

import "fmt"

// Affine combines the multiplicative and additive ciphers: E(p) = (a*p + b)
// mod 26, D(c) = a_inv * (c - b) mod 26. Only a must be coprime with 26.
type Affine struct {
	a, b int
	aInv int
}

func NewAffine(a, b int) (*Affine, error) {
	inv, ok := modInverse(a, alphabetSize)
	if !ok {
		return nil, fmt.Errorf("%w: a=%d is not invertible mod 26", ErrInvalidKey, a)
	}
	na := a % alphabetSize
	if na < 0 {
		na += alphabetSize
	}
	nb := b % alphabetSize
	if nb < 0 {
		nb += alphabetSize
	}
	return &Affine{a: na, b: nb, aInv: inv}, nil
}

func (af *Affine) Name() string { return NameAffine }

func (af *Affine) Encrypt(text string) (string, error) {
	out := []byte(text)
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			pos := (af.a*letterIndex(out[i]) + af.b) % alphabetSize
			out[i] = letterAt(pos, isUpper(out[i]))
		}
	}
	return string(out), nil
}

func (af *Affine) Decrypt(text string) (string, error) {
	out := []byte(text)
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			pos := (af.aInv * (letterIndex(out[i]) - af.b + alphabetSize)) % alphabetSize
			out[i] = letterAt(pos, isUpper(out[i]))
		}
	}
	return string(out), nil
}
