// File: pkg/combine/tree.go
package combine

import (
	"sort"
	"strings"
)

// treeNode is a directory (with children) or a file (without) in the
// generated structure.
type treeNode struct {
	children map[string]*treeNode
}

// GenerateTree renders slash-separated relative paths as an indented tree
// using box-drawing connectors. Entries are sorted case-insensitively and
// directories carry a trailing slash.
func GenerateTree(paths []string) string {
	root := &treeNode{children: map[string]*treeNode{}}
	for _, p := range paths {
		current := root
		for _, part := range strings.Split(p, "/") {
			if part == "" {
				continue
			}
			child, ok := current.children[part]
			if !ok {
				child = &treeNode{children: map[string]*treeNode{}}
				current.children[part] = child
			}
			current = child
		}
	}

	var output []string
	generateTreeRecursively(root, "", &output)
	return strings.Join(output, "\n")
}

// generateTreeRecursively appends the lines for node's children.
func generateTreeRecursively(node *treeNode, prefix string, output *[]string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})

	for i, name := range names {
		connector := "├── "
		extension := "│   "
		if i == len(names)-1 {
			connector = "└── "
			extension = "    "
		}

		child := node.children[name]
		if len(child.children) > 0 {
			// Append '/' to directory names
			*output = append(*output, prefix+connector+name+"/")
			generateTreeRecursively(child, prefix+extension, output)
		} else {
			*output = append(*output, prefix+connector+name)
		}
	}
}
