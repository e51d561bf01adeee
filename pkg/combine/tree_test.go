package combine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTree(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		expected []string
	}{
		{
			name:     "empty",
			paths:    nil,
			expected: nil,
		},
		{
			name:     "single file",
			paths:    []string{"main.go"},
			expected: []string{"└── main.go"},
		},
		{
			name:  "nested directories",
			paths: []string{"cmd/root.go", "cmd/version.go", "go.mod", "pkg/a/a.go"},
			expected: []string{
				"├── cmd/",
				"│   ├── root.go",
				"│   └── version.go",
				"├── go.mod",
				"└── pkg/",
				"    └── a/",
				"        └── a.go",
			},
		},
		{
			name:  "case-insensitive order",
			paths: []string{"b.go", "README.md", "a.go", "Makefile"},
			expected: []string{
				"├── a.go",
				"├── b.go",
				"├── Makefile",
				"└── README.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, strings.Join(tt.expected, "\n"), GenerateTree(tt.paths))
		})
	}
}
