// Package cipher implements the classical text ciphers exposed by the toolkit.
//
// Every cipher is a pure transformation of (text, key): construction validates
// the key, Encrypt/Decrypt never mutate the receiver, and values are safe for
// concurrent use. Substitution ciphers preserve case and pass non-alphabetic
// characters through unchanged; Playfair and the transposition family follow
// their own layout contracts.
package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when a key fails a cipher's validity precondition:
// a multiplier not coprime with 26, a malformed substitution alphabet, a
// rail depth below 2, or a word key without letters.
var ErrInvalidKey = errors.New("invalid key")

// Cipher is the common transform contract shared by all eleven ciphers.
type Cipher interface {
	Name() string
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// Key carries every key shape the ciphers need. Each cipher reads only the
// fields its contract names and ignores the rest.
type Key struct {
	Shift         int    // additive
	A             int    // multiplicative, affine
	B             int    // affine
	Keyword       string // monoalphabetic, autokey, vigenere, playfair, columnar, combination, double
	SecondKeyword string // double
	Depth         int    // railfence, combination (0 means the default)
}

// Canonical cipher identifiers, used by the dispatch table and catalog.
const (
	NameAdditive       = "additive"
	NameMultiplicative = "multiplicative"
	NameAffine         = "affine"
	NameMonoalphabetic = "monoalphabetic"
	NameAutokey        = "autokey"
	NameVigenere       = "vigenere"
	NamePlayfair       = "playfair"
	NameRailFence      = "railfence"
	NameColumnar       = "columnar"
	NameCombination    = "combination"
	NameDouble         = "double"
)

// New builds the named cipher from the relevant key fields. Unknown names and
// keys that fail the cipher's precondition return an error.
func New(name string, key Key) (Cipher, error) {
	switch name {
	case NameAdditive:
		return NewAdditive(key.Shift), nil
	case NameMultiplicative:
		return NewMultiplicative(key.A)
	case NameAffine:
		return NewAffine(key.A, key.B)
	case NameMonoalphabetic:
		return NewMonoalphabetic(key.Keyword)
	case NameAutokey:
		return NewAutokey(key.Keyword)
	case NameVigenere:
		return NewVigenere(key.Keyword)
	case NamePlayfair:
		return NewPlayfair(key.Keyword)
	case NameRailFence:
		return NewRailFence(key.Depth)
	case NameColumnar:
		return NewColumnar(key.Keyword)
	case NameCombination:
		return NewCombination(key.Keyword, key.Depth)
	case NameDouble:
		return NewDouble(key.Keyword, key.SecondKeyword)
	default:
		return nil, fmt.Errorf("unknown cipher: %s", name)
	}
}

// Info describes one cipher for catalog surfaces.
type Info struct {
	Name        string
	Description string
	KeyShape    string
}

// Catalog returns the cipher descriptions in menu order.
func Catalog() []Info {
	return []Info{
		{NameAdditive, "Additive (Caesar) shift cipher", "shift (integer)"},
		{NameMultiplicative, "Multiplicative cipher, key coprime with 26", "a (integer coprime with 26)"},
		{NameAffine, "Affine cipher (a*p + b) mod 26", "a (integer coprime with 26), b (integer)"},
		{NameMonoalphabetic, "Monoalphabetic substitution", "keyword (26-letter permutation of the alphabet)"},
		{NameAutokey, "Autokey cipher (self-keying stream)", "keyword (word)"},
		{NameVigenere, "Vigenere cipher (repeating keyword)", "keyword (word)"},
		{NamePlayfair, "Playfair 5x5 digraph cipher", "keyword (word)"},
		{NameRailFence, "Rail-fence (keyless transposition)", "depth (integer >= 2)"},
		{NameColumnar, "Keyed columnar transposition", "keyword (word)"},
		{NameCombination, "Columnar followed by rail-fence", "keyword (word), depth (optional, default 3)"},
		{NameDouble, "Double columnar transposition", "keyword and second keyword (words)"},
	}
}

// Names returns the canonical cipher identifiers in catalog order.
func Names() []string {
	infos := Catalog()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
