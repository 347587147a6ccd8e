package orderkey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64Approx(t *testing.T) {
	assert := assert.New(t)

	test := func(key string, exp float64, expErr string) {
		act, err := Float64Approx(key)
		if expErr != "" {
			assert.Equal(0.0, act)
			if assert.Error(err) {
				assert.Equal(expErr, err.Error())
			}
		} else {
			assert.Equal(exp, act)
			assert.NoError(err)
		}
	}

	test("a0", 0.0, "")
	test("a1", 1.0, "")
	test("az", 61.0, "")
	test("b10", 62.0, "")
	test("z20000000000000000000000000", math.Pow(62.0, 25.0)*2.0, "")
	test("Z1", -1.0, "")
	test("Zz", -61.0, "")
	test("Y10", -62.0, "")
	test("A20000000000000000000000000", math.Pow(62.0, 25.0)*-2.0, "")

	test("a0V", 0.5, "")
	test("a00V", 31.0/math.Pow(62.0, 2.0), "")
	test("aVV", 31.5, "")
	test("ZVV", -31.5, "")

	test("", 0.0, "invalid order key")
	test("!", 0.0, "invalid order key head: !")
	test("a400", 0.0, "invalid order key: a400")
	test("a!", 0.0, "invalid order key: a!")
}

func TestToFloat64ApproxBase10(t *testing.T) {
	f, err := Base10.Float64Approx("b125")
	assert.NoError(t, err)
	assert.InDelta(t, 12.5, f, 1e-9)
}
