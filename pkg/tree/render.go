package tree

import "strings"

// Render draws the tree rooted at the given component, one component per line. Composites are suffixed with
// a slash to tell empty composites apart from leaves.
func Render[T any](root Component[T]) string {
	var sb strings.Builder
	sb.WriteString(label(root))
	sb.WriteString("\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

func renderChildren[T any](sb *strings.Builder, parent Component[T], prefix string) {
	children := childrenOf(parent)
	for i, child := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		sb.WriteString(prefix + branch + label(child) + "\n")
		renderChildren(sb, child, prefix+indent)
	}
}

func label[T any](c Component[T]) string {
	if _, ok := c.(*Composite[T]); ok {
		return string(c.ID()) + "/"
	}
	return string(c.ID())
}
