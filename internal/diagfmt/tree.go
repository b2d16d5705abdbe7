package diagfmt

import (
	"fmt"
	"io"

	"sysdl/internal/ast"
)

// FormatASTTree выводит дерево в box-drawing формате:
//
//	root
//	├── package [name="P"]
//	│   └── part [name="Engine"]
//	└── requirement
func FormatASTTree(w io.Writer, builder *ast.Builder, root ast.NodeID) error {
	n := builder.Get(root)
	if n == nil {
		return fmt.Errorf("no such node: %d", root)
	}
	fmt.Fprintf(w, "%s%s\n", n.Kind, formatProps(n.Props))
	writeTreeChildren(w, builder, n.Children, "")
	return nil
}

func writeTreeChildren(w io.Writer, builder *ast.Builder, children []ast.NodeID, prefix string) {
	for i, id := range children {
		n := builder.Get(id)
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, n.Kind, formatProps(n.Props))
		writeTreeChildren(w, builder, n.Children, childPrefix)
	}
}
