package cipher

const alphabetSize = 26

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

// letterIndex maps a letter to its 0-25 alphabet position regardless of case.
func letterIndex(ch byte) int {
	if isUpper(ch) {
		return int(ch - 'A')
	}
	return int(ch - 'a')
}

// letterAt maps a 0-25 position back to a letter with the given case.
func letterAt(pos int, upper bool) byte {
	if upper {
		return byte('A' + pos)
	}
	return byte('a' + pos)
}

// shiftLetter shifts a letter by shift positions, preserving case. The shift
// may be negative or exceed 25.
func shiftLetter(ch byte, shift int) byte {
	pos := letterIndex(ch) + shift
	pos %= alphabetSize
	if pos < 0 {
		pos += alphabetSize
	}
	return letterAt(pos, isUpper(ch))
}

// letterCount reports how many characters of s are letters.
func letterCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			n++
		}
	}
	return n
}

// keywordLetters extracts the uppercase letters of a word key.
func keywordLetters(keyword string) []byte {
	letters := make([]byte, 0, len(keyword))
	for i := 0; i < len(keyword); i++ {
		ch := keyword[i]
		if isLetter(ch) {
			letters = append(letters, toUpper(ch))
		}
	}
	return letters
}

func toUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// modInverse returns the modular inverse of a modulo m via the extended
// Euclidean algorithm, or false when a and m are not coprime.
func modInverse(a, m int) (int, bool) {
	a %= m
	if a < 0 {
		a += m
	}
	if a == 0 {
		return 0, false
	}
	t0, t1 := 0, 1
	r0, r1 := m, a
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, false
	}
	inv := t0 % m
	if inv < 0 {
		inv += m
	}
	return inv, true
}
