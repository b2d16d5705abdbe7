package ast

import (
	"sysdl/internal/source"
)

// Hints задаёт стартовую ёмкость арены.
type Hints struct{ Nodes uint }

// Builder владеет ареной узлов одного разбора. Каждый вызов парсера строит
// свежий Builder — общего изменяемого состояния между разборами нет.
type Builder struct {
	Nodes *Arena[Node]
}

// NewBuilder creates a Builder with the given capacity hints.
func NewBuilder(hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	return &Builder{
		Nodes: NewArena[Node](hints.Nodes),
	}
}

// NewNode allocates a node of the given kind with an empty property bag.
func (b *Builder) NewNode(kind NodeKind, sp source.Span) NodeID {
	return NodeID(b.Nodes.Allocate(Node{
		Kind:  kind,
		Span:  sp,
		Props: make(Props),
	}))
}

// Get returns the node for id, or nil for NoNodeID.
func (b *Builder) Get(id NodeID) *Node {
	return b.Nodes.Get(uint32(id))
}

// SetStr устанавливает строковое свойство узла.
func (b *Builder) SetStr(id NodeID, key, value string) {
	b.Get(id).Props[key] = StrValue(value)
}

// SetNum устанавливает числовое свойство узла.
func (b *Builder) SetNum(id NodeID, key string, value float64) {
	b.Get(id).Props[key] = NumValue(value)
}

// PushChild добавляет child в конец списка детей parent. Только append:
// удаление и перестановка детей нигде не нужны и не предусмотрены.
func (b *Builder) PushChild(parent, child NodeID) {
	n := b.Get(parent)
	n.Children = append(n.Children, child)
}

// CoverSpan расширяет span узла до покрытия sp.
func (b *Builder) CoverSpan(id NodeID, sp source.Span) {
	n := b.Get(id)
	n.Span = n.Span.Cover(sp)
}
