// Package command 实现sfxtrie命令行
package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miajio/sfxtrie/pkg/app"
	"github.com/miajio/sfxtrie/pkg/config"
	"github.com/miajio/sfxtrie/pkg/segment"
	"github.com/miajio/sfxtrie/pkg/store"
)

// globalParams 命令行参数, 未设置的项使用配置文件中的值
type globalParams struct {
	configPath string
	encoding   string
	segment    bool
	dictionary string
	store      string
	name       string
	logLevel   string
}

// NewRootCommand 创建根命令
func NewRootCommand() *cobra.Command {
	params := &globalParams{}

	cmd := &cobra.Command{
		Use:          "sfxtrie <input> <output>",
		Short:        "Builds character tries from a batch of strings and answers suffix queries",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, params, args[0], args[1])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&params.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&params.encoding, "encoding", "", "input encoding (utf-8, iso-8859-1, windows-1252)")
	flags.BoolVar(&params.segment, "segment", false, "segment insertion lines into words with gse")
	flags.StringVar(&params.dictionary, "dictionary", "", "extra gse dictionary file")
	flags.StringVar(&params.store, "store", "", "badger directory to persist runs in")
	flags.StringVar(&params.name, "name", "", "name to persist the run under")
	flags.StringVar(&params.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(listCommand(params), showCommand(params))
	return cmd
}

// loadConfig 合并配置文件和命令行参数
func loadConfig(cmd *cobra.Command, params *globalParams) (*config.Config, error) {
	cfg, err := config.Load(params.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.Encoding = params.encoding
	}
	if flags.Changed("segment") {
		cfg.Segment = params.segment
	}
	if flags.Changed("dictionary") {
		cfg.Dictionary = params.dictionary
	}
	if flags.Changed("store") {
		cfg.Store = params.store
	}
	if flags.Changed("name") {
		cfg.Name = params.name
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = params.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	zc.Encoding = "console"
	zc.DisableStacktrace = true
	return zc.Build()
}

func runCmd(cmd *cobra.Command, params *globalParams, input, output string) error {
	cfg, err := loadConfig(cmd, params)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var opts []app.Option
	if cfg.Segment {
		seg, err := segment.New(cfg.Dictionary)
		if err != nil {
			logger.Error("segmenter init failed", zap.Error(err))
			return err
		}
		opts = append(opts, app.WithSegmenter(seg))
	}
	if cfg.Store != "" {
		e, err := store.Open(cfg.Store, logger)
		if err != nil {
			logger.Error("store open failed", zap.String("store", cfg.Store), zap.Error(err))
			return err
		}
		defer e.Close()
		opts = append(opts, app.WithStore(e))
	}

	if _, err := app.New(cfg, logger, opts...).Run(input, output); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}
	return nil
}

// openStore 打开子命令使用的存储
func openStore(cmd *cobra.Command, params *globalParams) (*store.Engine, *zap.Logger, error) {
	cfg, err := loadConfig(cmd, params)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Store == "" {
		return nil, nil, fmt.Errorf("no store configured, set --store or store in the config file")
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	e, err := store.Open(cfg.Store, logger)
	if err != nil {
		return nil, nil, err
	}
	return e, logger, nil
}
