package trie

import "strings"

type frame struct {
	node  *Node
	wrap  bool // 父节点有两个及以上子节点
	close bool // 只输出右括号
}

// Serialize 生成以n为根的子树的结构字符串
// 子节点按标签升序输出为 标签+子树结构; 只有一个子节点时直接拼接,
// 有两个及以上子节点时每个子节点各自用括号包裹. 叶子节点为空字符串.
// 使用显式栈遍历, 避免超长字符串导致递归过深.
func Serialize(n *Node) string {
	var sb strings.Builder
	stack := pushChildren(nil, n)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.close {
			sb.WriteByte(')')
			continue
		}
		if f.wrap {
			sb.WriteByte('(')
			stack = append(stack, frame{close: true})
		}
		sb.WriteRune(f.node.Label)
		stack = pushChildren(stack, f.node)
	}
	return sb.String()
}

// pushChildren 逆序压栈, 保证出栈顺序为标签升序
func pushChildren(stack []frame, n *Node) []frame {
	wrap := len(n.children) >= 2
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: n.children[i], wrap: wrap})
	}
	return stack
}
