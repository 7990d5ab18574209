package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Password1!", true},
		{"Password1", false},  // no special character
		{"password1!", false}, // no capital
		{"Pass1!", false},     // too short
		{"P@ssw0rd", true},
		{"        ", false},
		{"", false},
		{"ABCDEFG!", true},
		{"Abcdefg!", true},
		{"Abcdef !", true}, // space is not special, but '!' is
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, CheckPassword(c.password), "password %q", c.password)
	}
}
