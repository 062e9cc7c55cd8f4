package suffix

import "github.com/miajio/sfxtrie/pkg/trie"

// Snapshot 插入一个词之后正向前缀树的结构
type Snapshot struct {
	Word      string // 刚插入的词
	Structure string // 插入后的结构字符串
}

// Result 后缀查询结果
type Result struct {
	Query string // 查询的后缀
	Found bool   // 是否为某个词的后缀
}

// Index 后缀索引
// forward 按原样插入, 用于输出结构; reversed 插入反转后的词, 用于后缀查询
type Index struct {
	forward  *trie.Trie
	reversed *trie.Trie
}

// New 创建一个空的后缀索引
func New() *Index {
	return &Index{
		forward:  trie.New(),
		reversed: trie.New(),
	}
}

// Forward 正向前缀树
func (x *Index) Forward() *trie.Trie { return x.forward }

// Reversed 反向前缀树
func (x *Index) Reversed() *trie.Trie { return x.reversed }

// Insert 插入一个词, 返回插入后正向前缀树的结构字符串
func (x *Index) Insert(word string) string {
	x.forward.Insert(word)
	x.reversed.Insert(trie.Reverse(word))
	return x.forward.String()
}

// Build 按顺序插入一批词, 返回每次插入后的结构
func (x *Index) Build(words []string) []Snapshot {
	snapshots := make([]Snapshot, 0, len(words))
	for _, word := range words {
		snapshots = append(snapshots, Snapshot{Word: word, Structure: x.Insert(word)})
	}
	return snapshots
}

// HasSuffix 判断q是否为某个已插入词的后缀
// 反转q后在反向前缀树中做前缀查询
func (x *Index) HasSuffix(q string) bool {
	return x.reversed.ContainsPrefix(trie.Reverse(q))
}

// Query 批量查询后缀
func (x *Index) Query(queries []string) []Result {
	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		results = append(results, Result{Query: q, Found: x.HasSuffix(q)})
	}
	return results
}
