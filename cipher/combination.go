package cipher

// defaultRailDepth is the rail-fence depth used by the combination cipher
// when none is given.
const defaultRailDepth = 3

// Combination composes the keyed columnar transposition with a rail-fence
// pass: encrypt runs columnar then rail-fence, decrypt undoes the rail-fence
// first and the columnar second.
type Combination struct {
	columnar *Columnar
	rail     *RailFence
}

func NewCombination(keyword string, depth int) (*Combination, error) {
	if depth == 0 {
		depth = defaultRailDepth
	}
	columnar, err := NewColumnar(keyword)
	if err != nil {
		return nil, err
	}
	rail, err := NewRailFence(depth)
	if err != nil {
		return nil, err
	}
	return &Combination{columnar: columnar, rail: rail}, nil
}

func (c *Combination) Name() string { return NameCombination }

func (c *Combination) Encrypt(text string) (string, error) {
	first, err := c.columnar.Encrypt(text)
	if err != nil {
		return "", err
	}
	return c.rail.Encrypt(first)
}

func (c *Combination) Decrypt(text string) (string, error) {
	first, err := c.rail.Decrypt(text)
	if err != nil {
		return "", err
	}
	return c.columnar.Decrypt(first)
}
