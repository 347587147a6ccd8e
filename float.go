package orderkey

import "math"

// Float64Approx converts a key as generated by KeyBetween() to a float64.
// Because the range of keys is far larger than float64 can represent
// accurately, this is necessarily approximate. But for many use cases it should
// be, as they say, close enough for jazz.
func Float64Approx(key string) (float64, error) {
	return Base62.Float64Approx(key)
}

// Float64Approx is the package-level Float64Approx over al.
func (al Alphabet) Float64Approx(key string) (float64, error) {
	if key == "" {
		return 0.0, newError(ErrInvalidKey, "invalid order key")
	}
	if err := al.ValidateKey(key); err != nil {
		return 0.0, err
	}
	ip, fp, err := splitKey(key)
	if err != nil {
		return 0.0, err
	}

	base := float64(al.Len())
	digs := ip.Digits()
	rv := 0.0
	for i := 0; i < len(digs); i++ {
		p, _ := al.IndexOf(digs[len(digs)-i-1])
		rv += math.Pow(base, float64(i)) * float64(p)
	}
	for i := 0; i < len(fp); i++ {
		p, _ := al.IndexOf(fp[i])
		rv += float64(p) / math.Pow(base, float64(i+1))
	}

	if ip.Head() < 'a' {
		rv *= -1
	}
	return rv, nil
}
