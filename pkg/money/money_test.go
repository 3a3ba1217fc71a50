package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMajor(t *testing.T) {
	assert.Equal(t, Cents(12500), FromMajor(125))
	assert.Equal(t, Cents(0), FromMajor(0))
}

func TestMul(t *testing.T) {
	assert.Equal(t, Cents(24000), Cents(8000).Mul(3))
	assert.Equal(t, Cents(0), Cents(8000).Mul(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, Cents(2300), Cents(23000).Percent(10))
	assert.Equal(t, Cents(23000), Cents(23000).Percent(100))
	assert.Equal(t, Cents(0), Cents(23000).Percent(0))
	// Integer division truncates.
	assert.Equal(t, Cents(329), Cents(999).Percent(33))
}

func TestString(t *testing.T) {
	assert.Equal(t, "125.00", Cents(12500).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-3.50", Cents(-350).String())
}
