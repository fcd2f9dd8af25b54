package cipher

import "fmt"

// Playfair encrypts digraphs through a 5x5 key square (J folded into I).
// Unlike the substitution ciphers it does not preserve layout: input is
// uppercased, non-letters are stripped, and filler letters may lengthen the
// text, so decrypting an encrypted text recovers the prepared form (fillers
// included), not the original spelling.
type Playfair struct {
	square [5][5]byte
	row    [alphabetSize]int
	col    [alphabetSize]int
}

func NewPlayfair(keyword string) (*Playfair, error) {
	letters := keywordLetters(keyword)
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: playfair keyword needs at least one letter", ErrInvalidKey)
	}
	p := &Playfair{}
	var seen [alphabetSize]bool
	seen['J'-'A'] = true // J shares I's cell
	n := 0
	place := func(ch byte) {
		p.square[n/5][n%5] = ch
		p.row[ch-'A'] = n / 5
		p.col[ch-'A'] = n % 5
		n++
	}
	for _, ch := range letters {
		if ch == 'J' {
			ch = 'I'
		}
		if !seen[ch-'A'] {
			seen[ch-'A'] = true
			place(ch)
		}
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		if !seen[ch-'A'] {
			seen[ch-'A'] = true
			place(ch)
		}
	}
	p.row['J'-'A'] = p.row['I'-'A']
	p.col['J'-'A'] = p.col['I'-'A']
	return p, nil
}

func (p *Playfair) Name() string { return NamePlayfair }

func (p *Playfair) Encrypt(text string) (string, error) {
	return p.transform(preparePlayfairText(text), 1), nil
}

func (p *Playfair) Decrypt(text string) (string, error) {
	letters := keywordLetters(text)
	for i, ch := range letters {
		if ch == 'J' {
			letters[i] = 'I'
		}
	}
	return p.transform(letters, 4), nil
}

// transform applies the digraph rules; step is 1 to move right/down (encrypt)
// and 4 (== -1 mod 5) to move left/up (decrypt). Odd trailing letters can only
// appear on decrypt of malformed input and are passed through.
func (p *Playfair) transform(letters []byte, step int) string {
	out := make([]byte, 0, len(letters))
	for i := 0; i+1 < len(letters); i += 2 {
		a, b := letters[i], letters[i+1]
		ra, ca := p.row[a-'A'], p.col[a-'A']
		rb, cb := p.row[b-'A'], p.col[b-'A']
		switch {
		case ra == rb:
			out = append(out, p.square[ra][(ca+step)%5], p.square[rb][(cb+step)%5])
		case ca == cb:
			out = append(out, p.square[(ra+step)%5][ca], p.square[(rb+step)%5][cb])
		default:
			out = append(out, p.square[ra][cb], p.square[rb][ca])
		}
	}
	if len(letters)%2 == 1 {
		out = append(out, letters[len(letters)-1])
	}
	return string(out)
}

// preparePlayfairText uppercases, strips non-letters, folds J into I, inserts
// a filler between the letters of an equal pair ('X', or 'Q' when the pair is
// "XX"), and pads odd-length output with a trailing filler.
func preparePlayfairText(text string) []byte {
	letters := keywordLetters(text)
	for i, ch := range letters {
		if ch == 'J' {
			letters[i] = 'I'
		}
	}
	out := make([]byte, 0, len(letters)+len(letters)/2)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 < len(letters) && letters[i+1] == a {
			out = append(out, a, fillerFor(a))
			i++
		} else if i+1 < len(letters) {
			out = append(out, a, letters[i+1])
			i += 2
		} else {
			out = append(out, a)
			i++
		}
	}
	if len(out)%2 == 1 {
		out = append(out, fillerFor(out[len(out)-1]))
	}
	return out
}

func fillerFor(ch byte) byte {
	if ch == 'X' {
		return 'Q'
	}
	return 'X'
}
