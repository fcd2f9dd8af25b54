package cipher

// Double runs the keyed columnar transposition twice with two independent
// keys; decryption inverts the passes in reverse order.
type Double struct {
	first  *Columnar
	second *Columnar
}

func NewDouble(keyword, secondKeyword string) (*Double, error) {
	first, err := NewColumnar(keyword)
	if err != nil {
		return nil, err
	}
	second, err := NewColumnar(secondKeyword)
	if err != nil {
		return nil, err
	}
	return &Double{first: first, second: second}, nil
}

func (d *Double) Name() string { return NameDouble }

func (d *Double) Encrypt(text string) (string, error) {
	mid, err := d.first.Encrypt(text)
	if err != nil {
		return "", err
	}
	return d.second.Encrypt(mid)
}

func (d *Double) Decrypt(text string) (string, error) {
	mid, err := d.second.Decrypt(text)
	if err != nil {
		return "", err
	}
	return d.first.Decrypt(mid)
}
