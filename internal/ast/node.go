package ast

import (
	"sysdl/internal/source"
)

// NodeID идентифицирует узел внутри Builder (1-based, 0 — нет узла).
type NodeID uint32

// NoNodeID is the zero NodeID.
const NoNodeID NodeID = 0

// NodeKind — вид узла дерева, один на грамматическое правило.
type NodeKind uint8

const (
	// NodeRoot is the synthetic container for top-level elements.
	NodeRoot NodeKind = iota
	// NodePackage represents a package declaration.
	NodePackage
	// NodePart represents a part declaration.
	NodePart
	// NodeAttribute represents an attribute declaration.
	NodeAttribute
	// NodePort represents a port declaration.
	NodePort
	// NodeConnection represents a connection declaration.
	NodeConnection
	// NodeRequirement represents a requirement declaration.
	NodeRequirement
	// NodeUseCase represents a use case declaration.
	NodeUseCase
	// NodeGeneric is the fallback node for skipped statements.
	NodeGeneric
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "root"
	case NodePackage:
		return "package"
	case NodePart:
		return "part"
	case NodeAttribute:
		return "attribute"
	case NodePort:
		return "port"
	case NodeConnection:
		return "connection"
	case NodeRequirement:
		return "requirement"
	case NodeUseCase:
		return "usecase"
	case NodeGeneric:
		return "generic"
	}
	return "unknown"
}

// Node — один узел дерева. Узел создаётся одним правилом парсера, заполняется
// синхронно внутри него и после возврата управления больше не изменяется.
// Дети упорядочены по появлению в исходнике; другие владельцы, обратные ссылки
// и циклы исключены — владение строго древовидное.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Props    Props
	Children []NodeID
}

// Identity — грубая идентичность (kind, name), по которой внешний потребитель
// различает узлы. Узлы с одинаковым видом и именем для него неразличимы.
type Identity struct {
	Kind NodeKind
	Name string
}

// Identity returns the (kind, name) pair for the node. Name отсутствует —
// пустая строка.
func (n *Node) Identity() Identity {
	name, _ := n.Props.Str(PropName)
	return Identity{Kind: n.Kind, Name: name}
}
