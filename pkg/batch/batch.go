// Package batch 读取批处理输入
// 第一行N为插入词的数量(不含数量行本身), 按旧格式(N包含数量行)编写的文件会有一个词被当作查询
package batch

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// 支持的输入编码
const (
	EncodingUTF8        = "utf-8"
	EncodingISO88591    = "iso-8859-1"
	EncodingWindows1252 = "windows-1252"
)

// DefaultMaxLineBytes 单行最大字节数
const DefaultMaxLineBytes = 1 << 20

var (
	// ErrMissingHeader 输入为空, 缺少数量行
	ErrMissingHeader = errors.New("missing count header")
	// ErrInvalidHeader 数量行不是非负整数
	ErrInvalidHeader = errors.New("invalid count header")
	// ErrShortInput 插入行数少于数量行声明的数量
	ErrShortInput = errors.New("insufficient insertion lines")
	// ErrUnknownEncoding 不支持的编码
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Batch 一次运行的输入
type Batch struct {
	Words   []string `json:"words"`   // 待插入的词
	Queries []string `json:"queries"` // 待查询的后缀
}

// Options 读取选项
type Options struct {
	Encoding     string // 输入编码, 为空时按utf-8处理
	MaxLineBytes int    // 单行最大字节数, 为0时使用DefaultMaxLineBytes
}

// Decoder 返回编码对应的解码器, utf-8返回nil
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8":
		return nil, nil
	case EncodingISO88591, "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
}

// Read 读取输入
// 第一行为插入词数量N, 之后N行为插入词, 其余行为查询
func Read(r io.Reader, opts Options) (*Batch, error) {
	dec, err := Decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = dec.Reader(r)
	}

	lines, err := readLines(r, opts.MaxLineBytes)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrMissingHeader
	}

	n, err := strconv.Atoi(lines[0])
	if err != nil || n < 0 {
		return nil, errors.Wrapf(ErrInvalidHeader, "%q", lines[0])
	}
	rest := lines[1:]
	if len(rest) < n {
		return nil, errors.Wrapf(ErrShortInput, "header declares %d, got %d", n, len(rest))
	}

	return &Batch{
		Words:   rest[:n],
		Queries: rest[n:],
	}, nil
}

// ReadFile 从文件读取输入
func ReadFile(path string, opts Options) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	b, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return b, nil
}

func readLines(r io.Reader, maxLineBytes int) ([]string, error) {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, maxLineBytes)), maxLineBytes)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, string(bytes.TrimSpace(scanner.Bytes())))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan input")
	}
	return lines, nil
}
