package output

import (
	"io"
	"strings"

	"github.com/temirov/snapshot/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// RenderTree renders the relative paths as a box-drawing tree below a root line holding rootName.
// Siblings are ordered by name regardless of the order of paths.
func RenderTree(rootName string, paths []string) string {
	rootNode := types.NewTreeNode(rootName)
	for _, relativePath := range paths {
		rootNode.Insert(relativePath)
	}
	var builder strings.Builder
	WriteTree(&builder, rootNode)
	return builder.String()
}

// WriteTree writes the tree rooted at node to the provided writer.
func WriteTree(writer io.Writer, node *types.TreeNode) {
	if node == nil {
		return
	}
	io.WriteString(writer, node.Name+"\n")
	renderTreeChildren(writer, node, "")
}

func treeNodeLinePrefix(prefix string, isLast bool) (string, string) {
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}

func renderTreeChildren(writer io.Writer, node *types.TreeNode, prefix string) {
	children := node.SortedChildren()
	for index, child := range children {
		linePrefix, childPrefix := treeNodeLinePrefix(prefix, index == len(children)-1)
		io.WriteString(writer, linePrefix+child.Name+"\n")
		if !child.IsLeaf() {
			renderTreeChildren(writer, child, childPrefix)
		}
	}
}
