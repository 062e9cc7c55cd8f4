package store

import (
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultGCInterval 默认GC间隔
const DefaultGCInterval = 5 * time.Minute

const closeTimeout = 5 * time.Second

// Engine badger引擎
type Engine struct {
	db       *badger.DB  // badgerDB
	log      *zap.Logger // 日志
	inMemory bool        // 内存模式下不做GC

	gcInterval   time.Duration           // GC间隔时间
	gcUpdateChan chan time.Duration      // GC更新间隔时间信号
	gcQueryChan  chan chan time.Duration // 查询GC间隔信号

	done      chan struct{} // 退出信号
	stopped   chan struct{} // GC协程已退出
	closeOnce sync.Once
	closeErr  error
}

// New 创建一个badger引擎
func New(opt badger.Options, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opt = opt.WithLogger(badgerLogger{logger.Named("badger").Sugar()})

	db, err := badger.Open(opt)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	e := &Engine{
		db:       db,
		log:      logger,
		inMemory: opt.InMemory,

		gcInterval:   DefaultGCInterval,
		gcUpdateChan: make(chan time.Duration),
		gcQueryChan:  make(chan chan time.Duration),

		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go e.listenerGC()
	return e, nil
}

// Open 在目录dir中打开一个badger引擎
func Open(dir string, logger *zap.Logger) (*Engine, error) {
	return New(badger.DefaultOptions(dir), logger)
}

// InMemory 创建一个内存badger引擎
func InMemory(logger *zap.Logger) (*Engine, error) {
	return New(badger.DefaultOptions("").WithInMemory(true), logger)
}

// DB 获取badger数据库
func (e *Engine) DB() *badger.DB { return e.db }

// listenerGC 定时回收value log, 收到退出信号后返回
func (e *Engine) listenerGC() {
	defer close(e.stopped)

	ticker := time.NewTicker(e.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.runGC()
		case interval := <-e.gcUpdateChan:
			e.gcInterval = interval
			ticker.Reset(interval)
		case reply := <-e.gcQueryChan:
			reply <- e.gcInterval
		case <-e.done:
			return
		}
	}
}

func (e *Engine) runGC() {
	if e.inMemory {
		return
	}
	err := e.db.RunValueLogGC(0.5)
	if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		e.log.Warn("value log gc failed", zap.Error(err))
	}
}

// SetGCInterval 设置GC间隔, 非正数忽略
func (e *Engine) SetGCInterval(interval time.Duration) {
	if 0 >= interval {
		return
	}
	select {
	case e.gcUpdateChan <- interval:
	case <-e.done:
	}
}

// GCInterval 当前GC间隔
func (e *Engine) GCInterval() time.Duration {
	reply := make(chan time.Duration, 1)
	select {
	case e.gcQueryChan <- reply:
		return <-reply
	case <-e.stopped:
		return e.gcInterval
	}
}

// Close 关闭badger引擎, 重复调用返回第一次的结果
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.done)
		select {
		case <-e.stopped:
		case <-time.After(closeTimeout):
			e.closeErr = errors.New("badger engine close timeout")
		}
		if err := e.db.Close(); err != nil && e.closeErr == nil {
			e.closeErr = errors.Wrap(err, "close badger")
		}
	})
	return e.closeErr
}

// badgerLogger 将badger日志转发到zap
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(template string, args ...interface{}) {
	l.Warnf(template, args...)
}
