package trie

import (
	"cmp"
	"slices"
)

// RootLabel 根节点的哨兵标签, 不会与任何解码后的字符相同
const RootLabel rune = -1

// Node 前缀树节点
type Node struct {
	Label    rune    // 节点字符
	Terminal bool    // 是否是一个词的结尾
	children []*Node // 子节点, 按Label升序且不重复
}

// NewNode 创建一个新的前缀树节点
func NewNode(label rune) *Node {
	return &Node{Label: label}
}

// Children 按标签升序返回子节点
// 返回的切片不可修改
func (n *Node) Children() []*Node {
	return n.children
}

// Child 查找标签为label的子节点
func (n *Node) Child(label rune) (*Node, bool) {
	i, ok := n.search(label)
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// child 返回标签为label的子节点, 不存在时创建
func (n *Node) child(label rune) *Node {
	i, ok := n.search(label)
	if ok {
		return n.children[i]
	}
	c := NewNode(label)
	n.children = slices.Insert(n.children, i, c)
	return c
}

func (n *Node) search(label rune) (int, bool) {
	return slices.BinarySearchFunc(n.children, label, func(c *Node, l rune) int {
		return cmp.Compare(c.Label, l)
	})
}
