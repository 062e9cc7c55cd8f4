package report

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/miajio/sfxtrie/pkg/suffix"
)

// Entry 插入词及插入后的结构
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result 查询及结果
type Result struct {
	Query string `json:"query"`
	Found bool   `json:"found"`
}

// Report 运行结果
// 重复的键保留第一次出现的位置, 取最后一次的值
type Report struct {
	Structures []Entry  `json:"structures"`
	Results    []Result `json:"results"`

	structureIdx map[string]int
	resultIdx    map[string]int
}

// New 创建一个空报告
func New() *Report {
	return &Report{
		Structures: []Entry{},
		Results:    []Result{},
	}
}

// FromIndex 由后缀索引的构建快照和查询结果生成报告
func FromIndex(snapshots []suffix.Snapshot, results []suffix.Result) *Report {
	r := New()
	for _, s := range snapshots {
		r.AddStructure(s.Word, s.Structure)
	}
	for _, res := range results {
		r.AddResult(res.Query, res.Found)
	}
	return r
}

// AddStructure 记录插入word之后的结构
func (r *Report) AddStructure(word, structure string) {
	if r.structureIdx == nil {
		r.structureIdx = indexEntries(r.Structures)
	}
	if i, ok := r.structureIdx[word]; ok {
		r.Structures[i].Value = structure
		return
	}
	r.structureIdx[word] = len(r.Structures)
	r.Structures = append(r.Structures, Entry{Key: word, Value: structure})
}

// AddResult 记录查询结果
func (r *Report) AddResult(query string, found bool) {
	if r.resultIdx == nil {
		r.resultIdx = indexResults(r.Results)
	}
	if i, ok := r.resultIdx[query]; ok {
		r.Results[i].Found = found
		return
	}
	r.resultIdx[query] = len(r.Results)
	r.Results = append(r.Results, Result{Query: query, Found: found})
}

// Wrap 结构字符串不以左括号开头时用一对括号包裹
func Wrap(structure string) string {
	if strings.HasPrefix(structure, "(") {
		return structure
	}
	return "(" + structure + ")"
}

// Answer 布尔结果的输出形式
func Answer(found bool) string {
	if found {
		return "YES"
	}
	return "NO"
}

// Encode 按输出格式写入w
func (r *Report) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.Structures {
		bw.WriteString(e.Key + ": " + Wrap(e.Value) + "\n")
	}
	bw.WriteString("\n")
	for _, res := range r.Results {
		bw.WriteString(res.Query + " " + Answer(res.Found) + "\n")
	}
	bw.WriteString("\n")
	return errors.Wrap(bw.Flush(), "write report")
}

// WriteFile 原子写入报告文件
// 先写入同目录临时文件再重命名, 失败时不会留下部分输出
func (r *Report) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp report")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temp report")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp report")
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "chmod report")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "rename report to %s", path)
	}
	return nil
}

func indexEntries(entries []Entry) map[string]int {
	idx := make(map[string]int, len(entries))
	for i, e := range entries {
		idx[e.Key] = i
	}
	return idx
}

func indexResults(results []Result) map[string]int {
	idx := make(map[string]int, len(results))
	for i, res := range results {
		idx[res.Query] = i
	}
	return idx
}
