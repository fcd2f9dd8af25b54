package cipher

// Additive implements the Caesar shift cipher. Any integer shift is valid; it
// is normalized modulo 26.
type Additive struct {
	shift int
}

func NewAdditive(shift int) *Additive {
	shift %= alphabetSize
	if shift < 0 {
		shift += alphabetSize
	}
	return &Additive{shift: shift}
}

func (a *Additive) Name() string { return NameAdditive }

func (a *Additive) Encrypt(text string) (string, error) {
	return a.transform(text, a.shift), nil
}

func (a *Additive) Decrypt(text string) (string, error) {
	return a.transform(text, -a.shift), nil
}

func (a *Additive) transform(text string, shift int) string {
	out := []byte(text)
	for i := 0; i < len(out); i++ {
		if isLetter(out[i]) {
			out[i] = shiftLetter(out[i], shift)
		}
	}
	return string(out)
}
