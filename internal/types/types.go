// Package types defines every cross‑package data structure used by the snapshot CLI.
package types

import (
	"sort"
	"strings"
)

const (
	// PathSeparator separates segments of every relative path stored in a snapshot.
	PathSeparator = "/"
	// DefaultLanguageTag labels fenced blocks of files whose extension has no mapping.
	DefaultLanguageTag = "plaintext"
)

// FileRecord is one captured file of the snapshot.
type FileRecord struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ProjectSnapshot is the complete result of one run, prior to serialization.
type ProjectSnapshot struct {
	ProjectName string       `json:"project_name"`
	FileTree    string       `json:"file_tree"`
	CodeFiles   []FileRecord `json:"code_files"`
}

// Paths returns the relative paths of the captured files in capture order.
func (snapshot ProjectSnapshot) Paths() []string {
	paths := make([]string, 0, len(snapshot.CodeFiles))
	for _, record := range snapshot.CodeFiles {
		paths = append(paths, record.Path)
	}
	return paths
}

// TreeNode is a named node that owns its children by name.
// A node without children is a leaf.
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
}

// NewTreeNode returns an empty node with the provided name.
func NewTreeNode(name string) *TreeNode {
	return &TreeNode{Name: name}
}

// Insert adds the relative path below the node, creating intermediate nodes as needed.
func (node *TreeNode) Insert(relativePath string) {
	currentNode := node
	for _, segment := range strings.Split(relativePath, PathSeparator) {
		if segment == "" {
			continue
		}
		currentNode = currentNode.child(segment)
	}
}

func (node *TreeNode) child(name string) *TreeNode {
	if node.Children == nil {
		node.Children = make(map[string]*TreeNode)
	}
	existing, found := node.Children[name]
	if found {
		return existing
	}
	created := NewTreeNode(name)
	node.Children[name] = created
	return created
}

// IsLeaf reports whether the node has no children.
func (node *TreeNode) IsLeaf() bool {
	return len(node.Children) == 0
}

// SortedChildren returns the children ordered by name.
func (node *TreeNode) SortedChildren() []*TreeNode {
	children := make([]*TreeNode, 0, len(node.Children))
	for _, childNode := range node.Children {
		children = append(children, childNode)
	}
	sort.Slice(children, func(left, right int) bool {
		return children[left].Name < children[right].Name
	})
	return children
}
