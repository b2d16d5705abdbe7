package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"sysdl/internal/ast"
)

// FormatASTPretty выводит дерево с отступами, по узлу на строку:
// <kind> [key=value ...]
func FormatASTPretty(w io.Writer, builder *ast.Builder, root ast.NodeID) error {
	var walk func(id ast.NodeID, depth int)
	walk = func(id ast.NodeID, depth int) {
		n := builder.Get(id)
		if n == nil {
			return
		}
		fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), n.Kind, formatProps(n.Props))
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return nil
}

// formatProps даёт детерминированный вывод мешка свойств.
func formatProps(props ast.Props) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		v := props[k]
		switch v.Kind {
		case ast.PropNum:
			fmt.Fprintf(&sb, "%s=%v", k, v.Num)
		default:
			fmt.Fprintf(&sb, "%s=%q", k, v.Str)
		}
	}
	sb.WriteString("]")
	return sb.String()
}
