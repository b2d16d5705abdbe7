package diagfmt

import (
	"encoding/json"
	"io"
	"math"

	"sysdl/internal/ast"
)

// NodeOutput — JSON-представление узла дерева. Отсутствующие свойства не
// сериализуются вовсе: «нет ключа» и «пустое значение» — разные вещи.
type NodeOutput struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Children   []NodeOutput   `json:"children,omitempty"`
}

// buildNodeOutput рекурсивно переводит арену в сериализуемую форму.
func buildNodeOutput(builder *ast.Builder, id ast.NodeID) NodeOutput {
	n := builder.Get(id)
	out := NodeOutput{Type: n.Kind.String()}

	if len(n.Props) > 0 {
		out.Properties = make(map[string]any, len(n.Props))
		for k, v := range n.Props {
			switch v.Kind {
			case ast.PropNum:
				if math.IsNaN(v.Num) {
					out.Properties[k] = "NaN" // NaN не представим в JSON
				} else {
					out.Properties[k] = v.Num
				}
			default:
				out.Properties[k] = v.Str
			}
		}
	}

	for _, child := range n.Children {
		out.Children = append(out.Children, buildNodeOutput(builder, child))
	}
	return out
}

// FormatASTJSON выводит дерево в JSON формате.
func FormatASTJSON(w io.Writer, builder *ast.Builder, root ast.NodeID) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildNodeOutput(builder, root))
}
