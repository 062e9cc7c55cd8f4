package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/miajio/sfxtrie/pkg/batch"
)

// Config 运行配置
type Config struct {
	Encoding     string `yaml:"encoding"`       // 输入编码
	Segment      bool   `yaml:"segment"`        // 是否对插入行分词
	Dictionary   string `yaml:"dictionary"`     // 额外的gse词典
	Store        string `yaml:"store"`          // badger目录, 为空不保存
	Name         string `yaml:"name"`           // 保存时使用的名称
	LogLevel     string `yaml:"log_level"`      // 日志级别
	MaxLineBytes int    `yaml:"max_line_bytes"` // 单行最大字节数
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Encoding:     batch.EncodingUTF8,
		LogLevel:     "info",
		MaxLineBytes: batch.DefaultMaxLineBytes,
	}
}

// Load 读取配置文件, 未出现的字段保留默认值
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate 校验配置, 返回所有错误
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := batch.Decoder(c.Encoding); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %v", err))
	}
	if c.MaxLineBytes < 0 {
		result = multierror.Append(result, fmt.Errorf("max_line_bytes: must not be negative, got %d", c.MaxLineBytes))
	}
	if c.Dictionary != "" && !c.Segment {
		result = multierror.Append(result, errors.New("dictionary: requires segment to be enabled"))
	}

	return result.ErrorOrNil()
}

// ZapLevel 日志级别, 无法解析时为info
func (c *Config) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// BatchOptions 读取输入的选项
func (c *Config) BatchOptions() batch.Options {
	return batch.Options{
		Encoding:     c.Encoding,
		MaxLineBytes: c.MaxLineBytes,
	}
}
