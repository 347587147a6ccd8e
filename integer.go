package orderkey

// IntegerPart is the prefix of a key that encodes a signed integer. Its first
// byte (the head) encodes sign and length: 'a'..'z' for non-negative values
// with 2..27 bytes in total, 'Z'..'A' for negative values with 2..27 bytes.
// Because the head sorts by length, byte-wise comparison of two integer parts
// matches their numeric order.
type IntegerPart string

// Head returns the leading sign/length byte, or 0 for the zero value.
func (x IntegerPart) Head() byte {
	if x == "" {
		return 0
	}
	return x[0]
}

// Digits returns the digits after the head.
func (x IntegerPart) Digits() string {
	if x == "" {
		return ""
	}
	return string(x[1:])
}

func integerLength(head byte) (int, error) {
	switch {
	case head >= 'a' && head <= 'z':
		return int(head-'a') + 2, nil
	case head >= 'A' && head <= 'Z':
		return int('Z'-head) + 2, nil
	default:
		return 0, newError(ErrInvalidHead, "invalid order key head: %s", string(head))
	}
}

// ParseIntegerPart checks that s is exactly as long as its head says.
// Digits are not checked against any alphabet.
func ParseIntegerPart(s string) (IntegerPart, error) {
	if s == "" {
		return "", newError(ErrInvalidKey, "invalid integer part of order key: %s", s)
	}
	n, err := integerLength(s[0])
	if err != nil {
		return "", err
	}
	if len(s) != n {
		return "", newError(ErrInvalidKey, "invalid integer part of order key: %s", s)
	}
	return IntegerPart(s), nil
}

// ParseIntegerPart is like the package-level ParseIntegerPart but also
// requires every digit to belong to al.
func (al Alphabet) ParseIntegerPart(s string) (IntegerPart, error) {
	x, err := ParseIntegerPart(s)
	if err != nil {
		return "", err
	}
	if !al.hasDigits(x) {
		return "", newError(ErrInvalidKey, "invalid integer part of order key: %s", s)
	}
	return x, nil
}

// hasDigits reports whether x is non-empty and all its digits belong to al.
func (al Alphabet) hasDigits(x IntegerPart) bool {
	if x == "" {
		return false
	}
	for i := 1; i < len(x); i++ {
		if _, ok := al.IndexOf(x[i]); !ok {
			return false
		}
	}
	return true
}

// integerPart returns the integer prefix of key.
func integerPart(key string) (IntegerPart, error) {
	if key == "" {
		return "", newError(ErrInvalidKey, "invalid order key")
	}
	n, err := integerLength(key[0])
	if err != nil {
		return "", err
	}
	if n > len(key) {
		return "", invalidKey(key)
	}
	return IntegerPart(key[:n]), nil
}

// splitKey separates key into its integer and fractional parts.
func splitKey(key string) (IntegerPart, string, error) {
	i, err := integerPart(key)
	if err != nil {
		return "", "", err
	}
	return i, key[len(i):], nil
}

// ValidateKey reports whether key is a well-formed order key over al.
func (al Alphabet) ValidateKey(key string) error {
	if key == al.smallestInt() {
		return invalidKey(key)
	}
	// integerPart fails on a bad head or a short key; we'd call it
	// for those checks even if we didn't need the result.
	_, f, err := splitKey(key)
	if err != nil {
		return err
	}
	for k := 1; k < len(key); k++ {
		if _, ok := al.IndexOf(key[k]); !ok {
			return invalidKey(key)
		}
	}
	if len(f) > 0 && f[len(f)-1] == al.Zero() {
		return invalidKey(key)
	}
	return nil
}

// ValidateKey reports whether key is a well-formed order key over Base62.
func ValidateKey(key string) error {
	return Base62.ValidateKey(key)
}

// Increment adds one to x. It returns false when x is the largest value
// representable with head 'z', or when x is empty or has a digit outside al.
func (al Alphabet) Increment(x IntegerPart) (IntegerPart, bool) {
	if !al.hasDigits(x) {
		return "", false
	}
	head := x.Head()
	digs := []byte(x.Digits())
	carry := true
	for i := len(digs) - 1; carry && i >= 0; i-- {
		d, _ := al.IndexOf(digs[i])
		if d+1 == al.Len() {
			digs[i] = al.Zero()
		} else {
			digs[i] = al.At(d + 1)
			carry = false
		}
	}
	if !carry {
		return IntegerPart(string(head) + string(digs)), true
	}
	switch head {
	case 'Z':
		return IntegerPart(al.first()), true
	case 'z':
		return "", false
	}
	h := head + 1
	if h > 'a' {
		digs = append(digs, al.Zero())
	} else {
		digs = digs[:len(digs)-1]
	}
	return IntegerPart(string(h) + string(digs)), true
}

// Decrement subtracts one from x. It returns false when x is the smallest
// value representable with head 'A', or when x is empty or has a digit
// outside al.
func (al Alphabet) Decrement(x IntegerPart) (IntegerPart, bool) {
	if !al.hasDigits(x) {
		return "", false
	}
	head := x.Head()
	digs := []byte(x.Digits())
	borrow := true
	for i := len(digs) - 1; borrow && i >= 0; i-- {
		d, _ := al.IndexOf(digs[i])
		if d == 0 {
			digs[i] = al.Max()
		} else {
			digs[i] = al.At(d - 1)
			borrow = false
		}
	}
	if !borrow {
		return IntegerPart(string(head) + string(digs)), true
	}
	switch head {
	case 'a':
		return IntegerPart(string([]byte{'Z', al.Max()})), true
	case 'A':
		return "", false
	}
	h := head - 1
	if h < 'Z' {
		digs = append(digs, al.Max())
	} else {
		digs = digs[:len(digs)-1]
	}
	return IntegerPart(string(h) + string(digs)), true
}
