package wad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialType(t *testing.T) {
	assert.Equal(t, "None", SpecialType(0).String())
	assert.False(t, SpecialType(0).Known())

	assert.True(t, SpecialType(1).Known())
	assert.NotEmpty(t, SpecialType(1).String())

	assert.False(t, SpecialType(999).Known())
	assert.Equal(t, "Unknown special 999", SpecialType(999).String())

	l := Linedef{SpecialType: 11}
	assert.Equal(t, SpecialType(11), l.Special())
	assert.Equal(t, specialNames[11], l.Special().String())
}

func TestSpecialNamesCoverVanillaRange(t *testing.T) {
	for st, name := range specialNames {
		assert.NotZero(t, st)
		assert.LessOrEqual(t, int(st), 141)
		assert.NotEmpty(t, name)
	}
}
