package app

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/miajio/sfxtrie/pkg/batch"
	"github.com/miajio/sfxtrie/pkg/config"
	"github.com/miajio/sfxtrie/pkg/report"
	"github.com/miajio/sfxtrie/pkg/segment"
	"github.com/miajio/sfxtrie/pkg/store"
	"github.com/miajio/sfxtrie/pkg/suffix"
)

// Runner 一次批处理运行
type Runner struct {
	cfg       *config.Config
	log       *zap.Logger
	segmenter *segment.Segmenter // 为nil时不分词
	store     *store.Engine      // 为nil时不保存
}

// Option 运行选项
type Option func(*Runner)

// WithSegmenter 使用分词器切分插入行
func WithSegmenter(s *segment.Segmenter) Option {
	return func(r *Runner) { r.segmenter = s }
}

// WithStore 运行结束后保存输入和报告
func WithStore(e *store.Engine) Option {
	return func(r *Runner) { r.store = e }
}

// New 创建Runner
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{cfg: cfg, log: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run 读取input, 构建后缀索引并回答查询, 将报告写入output
// 任何错误都会在写出output之前返回
func (r *Runner) Run(input, output string) (*report.Report, error) {
	start := time.Now()

	b, err := batch.ReadFile(input, r.cfg.BatchOptions())
	if err != nil {
		return nil, err
	}
	r.log.Info("batch loaded", zap.String("input", input),
		zap.Int("words", len(b.Words)), zap.Int("queries", len(b.Queries)))

	words := b.Words
	if r.segmenter != nil {
		words = r.segmenter.Expand(b.Words)
		r.log.Info("insertion lines segmented",
			zap.Int("lines", len(b.Words)), zap.Int("words", len(words)))
	}

	rep := r.Evaluate(words, b.Queries)

	if err := rep.WriteFile(output); err != nil {
		return nil, err
	}
	r.log.Info("report written", zap.String("output", output),
		zap.Int("structures", len(rep.Structures)), zap.Int("results", len(rep.Results)),
		zap.Duration("elapsed", time.Since(start)))

	if r.store != nil {
		name := RunName(r.cfg.Name, input)
		if err := r.store.SaveRun(name, &batch.Batch{Words: words, Queries: b.Queries}, rep); err != nil {
			return rep, errors.Wrap(err, "persist run")
		}
		r.log.Info("run persisted", zap.String("name", name))
	}
	return rep, nil
}

// Evaluate 构建后缀索引并生成报告
func (r *Runner) Evaluate(words, queries []string) *report.Report {
	x := suffix.New()
	snapshots := x.Build(words)
	results := x.Query(queries)

	found := 0
	for _, res := range results {
		if res.Found {
			found++
		}
	}
	r.log.Debug("suffix index built",
		zap.Int("forward_nodes", x.Forward().Len()),
		zap.Int("reversed_nodes", x.Reversed().Len()),
		zap.Int("found", found))

	return report.FromIndex(snapshots, results)
}

// RunName 保存时使用的名称, 未配置时使用输入文件名(不含扩展名)
func RunName(name, input string) string {
	if name != "" {
		return name
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
