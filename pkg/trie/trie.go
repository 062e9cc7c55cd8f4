package trie

// Trie 字符前缀树
// 构建完成后只读访问是并发安全的, 插入需要外部同步
type Trie struct {
	root *Node // 根节点, 标签为RootLabel
}

// New 创建一个空前缀树
func New() *Trie {
	return &Trie{root: NewNode(RootLabel)}
}

// Root 获取根节点
func (t *Trie) Root() *Node { return t.root }

// Empty 前缀树是否没有任何字符节点
func (t *Trie) Empty() bool { return len(t.root.children) == 0 }

// Insert 插入一个字符串
// 空字符串会将根节点标记为词尾
func (t *Trie) Insert(s string) {
	node := t.root
	for _, char := range s {
		node = node.child(char)
	}
	node.Terminal = true
}

// ContainsPrefix 判断s是否是某个已插入字符串的前缀(或与之相等)
// 只检查路径是否存在, 不检查词尾标记
func (t *Trie) ContainsPrefix(s string) bool {
	if t.Empty() {
		return false
	}
	_, ok := t.walk(s)
	return ok
}

// Contains 判断s是否作为完整的词被插入过
func (t *Trie) Contains(s string) bool {
	node, ok := t.walk(s)
	return ok && node.Terminal
}

// Len 节点数量, 不含根节点
func (t *Trie) Len() int {
	count := 0
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count += len(node.children)
		stack = append(stack, node.children...)
	}
	return count
}

// String 前缀树的结构字符串, 见Serialize
func (t *Trie) String() string {
	return Serialize(t.root)
}

func (t *Trie) walk(s string) (*Node, bool) {
	node := t.root
	for _, char := range s {
		next, ok := node.Child(char)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}
