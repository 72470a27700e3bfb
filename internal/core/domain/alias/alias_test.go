package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Sorted(t *testing.T) {
	set := Set{"b": "1", "a": "2", "default": "/home"}
	assert.Equal(t, []Alias{
		{Name: "a", Target: "2"},
		{Name: "b", Target: "1"},
		{Name: "default", Target: "/home"},
	}, set.Sorted())

	assert.Empty(t, Set{}.Sorted())
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"proj", true},
		{"a", true},
		{"my-proj", true},
		{"proj/sub", true},
		{"ünïcode", true},
		{"my proj", true},
		{"tab\tname", true},
		{"-x", true},
		{"-", true},
		{"a#b", true},
		{"", false},
		{" lead", false},
		{"trail ", false},
		{"key=value", false},
		{"two\nlines", false},
		{"#comment", false},
		{"-a", false},
		{"-h", false},
		{"--help", false},
		{"-v", false},
		{"--version", false},
		{"-l", false},
		{"--ls", false},
		{"-e", false},
		{"--edit", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidName(tt.name))
		})
	}
}
