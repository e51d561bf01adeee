package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsIsACopy(t *testing.T) {
	first := Defaults()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", Defaults()[0])
	assert.Contains(t, Defaults(), "go")
	assert.NotContains(t, Defaults(), "png")
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" .Go", "md", "GO", "", " . ", "..TXT"})
	assert.Equal(t, []string{"go", "md", "txt"}, got)
}

func TestExt(t *testing.T) {
	assert.Equal(t, "go", Ext("main.GO"))
	assert.Equal(t, "gz", Ext("archive.tar.gz"))
	assert.Equal(t, "", Ext("Makefile"))
	assert.Equal(t, "bashrc", Ext(".bashrc"))
}

func TestFilterAccepts(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		skip    []string
		ext     string
		want    bool
	}{
		{"default accepts go", nil, nil, "go", true},
		{"default is case insensitive", nil, nil, "GO", true},
		{"leading dot tolerated", nil, nil, ".md", true},
		{"default rejects binary", nil, nil, "png", false},
		{"no extension rejected", nil, nil, "", false},
		{"include replaces defaults", []string{"md"}, nil, "go", false},
		{"include accepts listed", []string{"go", "MD"}, nil, "md", true},
		{"include accepts non-default", []string{"png"}, nil, "png", true},
		{"skip subtracts defaults", nil, []string{"md"}, "md", false},
		{"skip wins over include", []string{"go", "md"}, []string{"go"}, "go", false},
		{"skip leaves others", []string{"go", "md"}, []string{"go"}, "md", true},
		{"blank include keeps defaults", []string{" ", ""}, nil, "py", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := New(Defaults(), tc.include, tc.skip)
			assert.Equal(t, tc.want, f.Accepts(tc.ext))
		})
	}
}

func TestFilterAcceptsName(t *testing.T) {
	f := New(Defaults(), nil, nil)
	assert.True(t, f.AcceptsName("main.go"))
	assert.True(t, f.AcceptsName("Makefile"))
	assert.True(t, f.AcceptsName("Dockerfile"))
	assert.False(t, f.AcceptsName("LICENSE"))
	assert.False(t, f.AcceptsName("logo.png"))

	f = New(Defaults(), nil, []string{"makefile"})
	assert.False(t, f.AcceptsName("Makefile"))
	assert.True(t, f.AcceptsName("Dockerfile"))

	f = New(Defaults(), []string{"go"}, nil)
	assert.False(t, f.AcceptsName("Makefile"))
}

func TestFilterActive(t *testing.T) {
	f := New(Defaults(), []string{"md", "go", "txt"}, []string{"txt"})
	assert.Equal(t, []string{"go", "md"}, f.Active())
}
