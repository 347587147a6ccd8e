package orderkey

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidpoint(t *testing.T) {
	assert := assert.New(t)

	test := func(al Alphabet, a, b, exp string) {
		assert.Equal(exp, al.midpoint(a, b, picker{}), "midpoint(%q, %q)", a, b)
	}
	test(Base10, "", "", "5")
	test(Base10, "5", "", "8")
	test(Base10, "", "1", "05")
	test(Base10, "1", "2", "15")
	test(Base10, "49", "5", "495")
	test(Base10, "19", "2", "195")
	test(Base62, "", "", "V")
	test(Base62, "", "V", "G")
	test(Base62, "", "0V", "0G")
	test(Base62, "V", "", "l")
	test(Base62, "125", "129", "127")
	test(Base62, "1", "2V", "2")
}

func TestMidpointProperties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, al := range []Alphabet{Base10, Base62, MustAlphabet("01")} {
		for i := 0; i < 2000; i++ {
			a := randomFraction(r, al)
			b := randomFraction(r, al)
			if b != "" && a >= b {
				a, b = b, a
			}
			if a == b {
				continue
			}
			m := al.midpoint(a, b, picker{})
			assert.Less(t, a, m)
			if b != "" {
				assert.Less(t, m, b)
			}
			assert.False(t, strings.HasSuffix(m, string(al.Zero())), "midpoint(%q, %q) = %q", a, b, m)
		}
	}
}

// randomFraction returns a digit string with no trailing zero digit.
func randomFraction(r *rand.Rand, al Alphabet) string {
	n := r.Intn(5)
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, al.At(r.Intn(al.Len())))
	}
	for len(b) > 0 && b[len(b)-1] == al.Zero() {
		b = b[:len(b)-1]
	}
	return string(b)
}
