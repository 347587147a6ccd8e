// Package orderkey generates fractional index keys: short strings that sort
// lexicographically and can always be extended with a new key between any
// two existing ones.
//
// A key is an integer part followed by an optional fractional part. The
// integer part is self-delimiting (see IntegerPart), so keys that only
// append to the end of a list stay short; the fractional part subdivides
// the space between two keys sharing an integer part.
//
// The package-level functions use the Base62 alphabet. Any other Alphabet
// can be used through its methods.
package orderkey

// KeyBetween returns a key that sorts lexicographically between a and b.
// Either a or b can be empty strings. If a is empty it indicates smallest key,
// If b is empty it indicates largest key.
// b must be empty string or > a.
func KeyBetween(a, b string) (string, error) {
	return Base62.KeyBetween(a, b)
}

// NKeysBetween returns n keys between a and b that sorts lexicographically.
// Either a or b can be empty strings. If a is empty it indicates smallest key,
// If b is empty it indicates largest key.
// b must be empty string or > a.
func NKeysBetween(a, b string, n uint) ([]string, error) {
	return Base62.NKeysBetween(a, b, n)
}

// KeyBetween is the package-level KeyBetween over al.
func (al Alphabet) KeyBetween(a, b string) (string, error) {
	return al.keyBetween(a, b, picker{})
}

// NKeysBetween is the package-level NKeysBetween over al.
func (al Alphabet) NKeysBetween(a, b string, n uint) ([]string, error) {
	return al.nKeysBetween(a, b, n, picker{})
}

func (al Alphabet) keyBetween(a, b string, p picker) (string, error) {
	if a != "" {
		if err := al.ValidateKey(a); err != nil {
			return "", err
		}
	}
	if b != "" {
		if err := al.ValidateKey(b); err != nil {
			return "", err
		}
	}
	if a != "" && b != "" && a >= b {
		return "", newError(ErrOrderViolation, "%s >= %s", a, b)
	}

	if a == "" {
		if b == "" {
			return al.first(), nil
		}
		ib, fb, err := splitKey(b)
		if err != nil {
			return "", err
		}
		if string(ib) == al.smallestInt() {
			return string(ib) + al.midpoint("", fb, p), nil
		}
		if fb != "" {
			return string(ib), nil
		}
		res, ok := al.Decrement(ib)
		if !ok {
			return "", newError(ErrIntegerSpaceExhausted, "range underflow")
		}
		if string(res) == al.smallestInt() {
			// the minimum integer is reserved; subdivide below b instead
			return string(res) + al.midpoint("", "", p), nil
		}
		return string(res), nil
	}

	ia, fa, err := splitKey(a)
	if err != nil {
		return "", err
	}

	if b == "" {
		i, ok := al.Increment(ia)
		if !ok {
			return string(ia) + al.midpoint(fa, "", p), nil
		}
		return string(i), nil
	}

	ib, fb, err := splitKey(b)
	if err != nil {
		return "", err
	}
	if ia == ib {
		return string(ia) + al.midpoint(fa, fb, p), nil
	}
	i, ok := al.Increment(ia)
	if !ok {
		return "", newError(ErrIntegerSpaceExhausted, "range overflow")
	}
	if string(i) < b {
		return string(i), nil
	}
	return string(ia) + al.midpoint(fa, "", p), nil
}

func (al Alphabet) nKeysBetween(a, b string, n uint, p picker) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	if n == 1 {
		c, err := al.keyBetween(a, b, p)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}
	if b == "" {
		c, err := al.keyBetween(a, b, p)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := uint(1); i < n; i++ {
			c, err = al.keyBetween(c, b, p)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		return result, nil
	}
	if a == "" {
		c, err := al.keyBetween(a, b, p)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := uint(1); i < n; i++ {
			c, err = al.keyBetween(a, c, p)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		reverse(result)
		return result, nil
	}

	mid := n / 2
	c, err := al.keyBetween(a, b, p)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, n)
	left, err := al.nKeysBetween(a, c, mid, p)
	if err != nil {
		return nil, err
	}
	result = append(result, left...)
	result = append(result, c)
	right, err := al.nKeysBetween(c, b, n-mid-1, p)
	if err != nil {
		return nil, err
	}
	return append(result, right...), nil
}

func reverse(values []string) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
