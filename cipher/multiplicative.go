package cipher

import "fmt"

// Multiplicative maps each letter position p to (p * key) mod 26. The key must
// be coprime with 26 so the mapping has a unique inverse; the constructor
// rejects anything else before either direction can produce output.
type Multiplicative struct {
	key     int
	inverse int
}

func NewMultiplicative(key int) (*Multiplicative, error) {
	inv, ok := modInverse(key, alphabetSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d is not invertible mod 26", ErrInvalidKey, key)
	}
	k := key % alphabetSize
	if k < 0 {
		k += alphabetSize
	}
	return &Multiplicative{key: k, inverse: inv}, nil
}

func (m *Multiplicative) Name() string { return NameMultiplicative }

func (m *Multiplicative) Encrypt(text string) (string, error) {
	return m.transform(text, m.key), nil
}

func (m *Multiplicative) Decrypt(text string) (string, error) {
	return m.transform(text, m.inverse), nil
}

func (m *Multiplicative) transform(text string, factor int) string {
	out := []byte(text)
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			pos := (letterIndex(out[i]) * factor) % alphabetSize
			out[i] = letterAt(pos, isUpper(out[i]))
		}
	}
	return string(out)
}
