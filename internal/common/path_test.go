package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	p := NewPath("Account").Field("Users").Index(1).Field("Account")
	assert.Equal(t, "Account.Users[1].Account", p.String())

	// Index must not alias the receiver's backing array.
	base := NewPath("Account").Field("Users")
	a := base.Index(0)
	b := base.Index(1)
	assert.Equal(t, "Account.Users[0]", a.String())
	assert.Equal(t, "Account.Users[1]", b.String())
	assert.Equal(t, "Account.Users", base.String())
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Map([]string{"a", "bb"}, func(s string) int { return len(s) }))
}
