package store

import (
	"encoding/json"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/miajio/sfxtrie/pkg/batch"
	"github.com/miajio/sfxtrie/pkg/report"
)

const (
	batchPrefix  = "batch/"
	reportPrefix = "report/"
)

func batchKey(name string) []byte  { return []byte(batchPrefix + name) }
func reportKey(name string) []byte { return []byte(reportPrefix + name) }

// SaveRun 在一次批量写入中保存输入和报告
func (e *Engine) SaveRun(name string, b *batch.Batch, r *report.Report) error {
	if name == "" {
		return errors.New("empty run name")
	}
	batchData, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "encode batch")
	}
	reportData, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encode report")
	}

	err = e.Batch(func(wb *badger.WriteBatch) error {
		if err := wb.Set(batchKey(name), batchData); err != nil {
			return err
		}
		return wb.Set(reportKey(name), reportData)
	})
	if err != nil {
		return errors.Wrapf(err, "save run %s", name)
	}
	e.log.Debug("run saved", zap.String("name", name),
		zap.Int("words", len(b.Words)), zap.Int("queries", len(b.Queries)))
	return nil
}

// SaveBatch 保存输入
func (e *Engine) SaveBatch(name string, b *batch.Batch) error {
	return e.setJSON(batchKey(name), b)
}

// LoadBatch 读取输入
func (e *Engine) LoadBatch(name string) (*batch.Batch, error) {
	var b batch.Batch
	if err := e.getJSON(batchKey(name), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveReport 保存报告
func (e *Engine) SaveReport(name string, r *report.Report) error {
	return e.setJSON(reportKey(name), r)
}

// LoadReport 读取报告
func (e *Engine) LoadReport(name string) (*report.Report, error) {
	var r report.Report
	if err := e.getJSON(reportKey(name), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// HasRun 判断是否保存过名为name的运行结果
func (e *Engine) HasRun(name string) (bool, error) {
	return e.Exists(reportKey(name))
}

// Names 已保存报告的名称, 按字典序
func (e *Engine) Names() ([]string, error) {
	keys, err := e.Keys([]byte(reportPrefix))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(string(k), reportPrefix))
	}
	return names, nil
}

// DeleteRun 删除输入和报告
func (e *Engine) DeleteRun(name string) error {
	return e.Update(func(tx *badger.Txn) error {
		if err := tx.Delete(batchKey(name)); err != nil {
			return err
		}
		return tx.Delete(reportKey(name))
	})
}

func (e *Engine) setJSON(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return e.Set(key, data)
}

func (e *Engine) getJSON(key []byte, v any) error {
	data, err := e.Get(key)
	if err != nil {
		return err
	}
	return errors.Wrapf(json.Unmarshal(data, v), "decode %s", key)
}
