package orderkey

// picker chooses the digit emitted where the midpoint has a choice. The zero
// picker always takes the deterministic midpoint.
type picker struct {
	j      Jitter
	spread int
}

// offset returns a displacement in [lo, hi], which always contains 0.
func (p picker) offset(lo, hi int) int {
	if p.j == nil || p.spread <= 0 || lo >= hi {
		return 0
	}
	return clamp(p.j.IntnRange(lo, hi), lo, hi)
}

// midpoint returns a digit string strictly between a and b.
// a may be empty, meaning the smallest string. b == "" means no upper bound.
// a < b if b != "". Neither may end in the zero digit, and neither does
// the result.
func (al Alphabet) midpoint(a, b string, p picker) string {
	zero := al.Zero()
	if b != "" {
		// remove longest common prefix. pad `a` with zeros as we go;
		// `b` can't end before `a` while traversing the common prefix.
		i := 0
		for ; i < len(b); i++ {
			c := zero
			if i < len(a) {
				c = a[i]
			}
			if c != b[i] {
				break
			}
		}
		if i > 0 {
			if i > len(a) {
				return b[:i] + al.midpoint("", b[i:], p)
			}
			return b[:i] + al.midpoint(a[i:], b[i:], p)
		}
	}

	// first digits (or lack of digit) are different
	digitA := 0
	if a != "" {
		digitA, _ = al.IndexOf(a[0])
	}
	digitB := al.Len()
	if b != "" {
		digitB, _ = al.IndexOf(b[0])
	}
	if digitB-digitA > 1 {
		mid := (digitA + digitB + 1) / 2
		lo := max(digitA+1, mid-p.spread)
		hi := min(digitB-1, mid+p.spread)
		return string(al.At(mid + p.offset(lo-mid, hi-mid)))
	}

	// first digits are consecutive
	if len(b) > 1 {
		// b[0] alone is already < b. A jittered pick may add one more
		// non-zero digit below b[1].
		next, _ := al.IndexOf(b[1])
		if d := p.offset(0, min(next-1, p.spread)); d > 0 {
			return b[:1] + string(al.At(d))
		}
		return b[:1]
	}

	// `b` is empty or a single digit, so the first digit of `a` is the
	// one just below it (or the max digit if `b` is empty).
	// given, for example, midpoint("49", "5") in base 10, return
	// "4" + midpoint("9", ""), which becomes "4" + "9" + midpoint("", ""),
	// which is "495".
	rest := ""
	if len(a) > 0 {
		rest = a[1:]
	}
	return string(al.At(digitA)) + al.midpoint(rest, "", p)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
