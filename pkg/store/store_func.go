package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// ErrNotFound 键不存在
var ErrNotFound = errors.New("key not found")

// BadgerTX 事务函数
type BadgerTX func(tx *badger.Txn) error

// Update 读写事务
func (e *Engine) Update(tx BadgerTX) error {
	return e.db.Update(tx)
}

// View 只读事务
func (e *Engine) View(tx BadgerTX) error {
	return e.db.View(tx)
}

// Set 设置参数
func (e *Engine) Set(key, value []byte) error {
	return e.Update(func(tx *badger.Txn) error {
		return tx.Set(key, value)
	})
}

// Get 获取参数, 不存在时返回ErrNotFound
func (e *Engine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.View(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%s", key)
	}
	return value, err
}

// Del 删除参数
func (e *Engine) Del(key []byte) error {
	return e.Update(func(tx *badger.Txn) error {
		return tx.Delete(key)
	})
}

// Exists 判断key是否存在
func (e *Engine) Exists(key []byte) (bool, error) {
	var exists bool
	err := e.View(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		if err == nil {
			exists = true
			return nil
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	return exists, err
}

// BadgerBatch 批量写入函数
type BadgerBatch func(*badger.WriteBatch) error

// Batch 批量写入, fn返回nil时提交
func (e *Engine) Batch(fn BadgerBatch) error {
	wb := e.db.NewWriteBatch()
	defer wb.Cancel()
	if err := fn(wb); err != nil {
		return err
	}
	return wb.Flush()
}

// Keys 按字典序获取所有key
// @param prefix 前缀, 为nil时返回全部
func (e *Engine) Keys(prefix []byte) ([][]byte, error) {
	var keys [][]byte

	err := e.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // 只获取键，不获取值
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})

	return keys, err
}
