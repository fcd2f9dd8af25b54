package cipher

import "fmt"

// Autokey is a self-keying stream cipher: the key stream is the keyword
// followed by the plaintext letters themselves. Decryption cannot precompute
// the stream; each recovered letter extends it for the positions that follow.
type Autokey struct {
	keyword []byte
}

func NewAutokey(keyword string) (*Autokey, error) {
	letters := keywordLetters(keyword)
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: autokey keyword needs at least one letter", ErrInvalidKey)
	}
	return &Autokey{keyword: letters}, nil
}

func (a *Autokey) Name() string { return NameAutokey }

func (a *Autokey) Encrypt(text string) (string, error) {
	stream := make([]byte, 0, len(a.keyword)+letterCount(text))
	stream = append(stream, a.keyword...)
	for i := 0; i < len(text); i++ {
		if isLetter(text[i]) {
			stream = append(stream, toUpper(text[i]))
		}
	}
	out := []byte(text)
	ks := 0
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			out[i] = shiftLetter(out[i], int(stream[ks]-'A'))
			ks++
		}
	}
	return string(out), nil
}

func (a *Autokey) Decrypt(text string) (string, error) {
	// The stream grows as letters are recovered; only the keyword is known
	// up front.
	stream := make([]byte, 0, len(a.keyword)+letterCount(text))
	stream = append(stream, a.keyword...)
	out := []byte(text)
	ks := 0
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			plain := shiftLetter(out[i], -int(stream[ks]-'A'))
			out[i] = plain
			stream = append(stream, toUpper(plain))
			ks++
		}
	}
	return string(out), nil
}
