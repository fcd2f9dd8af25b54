package cipher

import "fmt"

// Monoalphabetic substitutes letters through a fixed 26-letter permutation of
// the alphabet. The key is case-insensitive and must cover every letter
// exactly once.
type Monoalphabetic struct {
	forward [alphabetSize]byte
	inverse [alphabetSize]byte
}

func NewMonoalphabetic(key string) (*Monoalphabetic, error) {
	if len(key) != alphabetSize {
		return nil, fmt.Errorf("%w: substitution key must be 26 letters, got %d", ErrInvalidKey, len(key))
	}
	m := &Monoalphabetic{}
	var seen [alphabetSize]bool
	for i := 0; i < alphabetSize; i++ {
		ch := key[i]
		if !isLetter(ch) {
			return nil, fmt.Errorf("%w: substitution key contains non-letter %q", ErrInvalidKey, ch)
		}
		pos := letterIndex(ch)
		if seen[pos] {
			return nil, fmt.Errorf("%w: substitution key repeats letter %c", ErrInvalidKey, toUpper(ch))
		}
		seen[pos] = true
		m.forward[i] = byte('A' + pos)
		m.inverse[pos] = byte('A' + i)
	}
	return m, nil
}

func (m *Monoalphabetic) Name() string { return NameMonoalphabetic }

func (m *Monoalphabetic) Encrypt(text string) (string, error) {
	return m.substitute(text, &m.forward), nil
}

func (m *Monoalphabetic) Decrypt(text string) (string, error) {
	return m.substitute(text, &m.inverse), nil
}

func (m *Monoalphabetic) substitute(text string, table *[alphabetSize]byte) string {
	out := []byte(text)
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			mapped := table[letterIndex(out[i])]
			if isUpper(out[i]) {
				out[i] = mapped
			} else {
				out[i] = mapped - 'A' + 'a'
			}
		}
	}
	return string(out)
}
