package cipher

import "fmt"

// Vigenere shifts each letter by the corresponding letter of the keyword,
// cycled over the text's alphabetic characters. Non-alphabetic characters do
// not consume a key-stream position.
type Vigenere struct {
	keyword []byte
}

func NewVigenere(keyword string) (*Vigenere, error) {
	letters := keywordLetters(keyword)
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: vigenere keyword needs at least one letter", ErrInvalidKey)
	}
	return &Vigenere{keyword: letters}, nil
}

func (v *Vigenere) Name() string { return NameVigenere }

func (v *Vigenere) Encrypt(text string) (string, error) {
	return v.transform(text, 1), nil
}

func (v *Vigenere) Decrypt(text string) (string, error) {
	return v.transform(text, -1), nil
}

func (v *Vigenere) transform(text string, direction int) string {
	out := []byte(text)
	ks := 0
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			shift := int(v.keyword[ks%len(v.keyword)] - 'A')
			out[i] = shiftLetter(out[i], direction*shift)
			ks++
		}
	}
	return string(out)
}
