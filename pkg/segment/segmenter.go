package segment

import (
	"os"

	"github.com/go-ego/gse"
	"github.com/pkg/errors"
)

// Segmenter 分词器, 用于把自由文本行切分为待插入的词
type Segmenter struct {
	seg gse.Segmenter
}

// New 创建分词器, 加载gse默认词典
// dictionary 不为空时额外加载该文件中的词条, 每行格式为 "词 词频 词性"
func New(dictionary string) (*Segmenter, error) {
	seg, err := gse.New()
	if err != nil {
		return nil, errors.Wrap(err, "init gse segmenter")
	}
	s := &Segmenter{seg: seg}

	if dictionary != "" {
		data, err := os.ReadFile(dictionary)
		if err != nil {
			return nil, errors.Wrap(err, "read dictionary")
		}
		if err := s.seg.LoadDictStr(string(data)); err != nil {
			return nil, errors.Wrapf(err, "load dictionary %s", dictionary)
		}
	}
	return s, nil
}

// AddWord 向词典添加一个词
func (s *Segmenter) AddWord(word string, frequency float64, pos string) error {
	return errors.Wrapf(s.seg.AddToken(word, frequency, pos), "add word %q", word)
}

// Words 切分一行文本, 跳过标点和空白
func (s *Segmenter) Words(text string) []string {
	words := []string{}
	for _, w := range s.seg.Cut(text, true) {
		if w == "" || IsSpecialChar(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Expand 切分每一行, 按顺序返回所有词
func (s *Segmenter) Expand(lines []string) []string {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		words = append(words, s.Words(line)...)
	}
	return words
}
