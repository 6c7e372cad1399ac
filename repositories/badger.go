package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes, one per persisted collection.
const (
	PrefixRoom    = "room:"
	PrefixEvent   = "event:"
	PrefixUser    = "user:"
	PrefixMessage = "msg:"
)

// entityKey formats "{prefix}{position}:{id}". The position is zero padded
// to 6 digits so that a prefix scan replays the collection in order.
func entityKey(prefix string, position int, id string) []byte {
	return []byte(fmt.Sprintf("%s%06d:%s", prefix, position, id))
}

// replaceAll overwrites every key under prefix with items, inside one transaction.
func replaceAll[T any](db *badger.DB, prefix string, items []T, idOf func(T) string) error {
	return db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, prefix); err != nil {
			return err
		}
		for i, item := range items {
			bytes, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("marshal %s%s: %w", prefix, idOf(item), err)
			}
			if err = txn.Set(entityKey(prefix, i, idOf(item)), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// loadAll decodes every value under prefix, in key order.
func loadAll[T any](db *badger.DB, prefix string) ([]T, error) {
	items := make([]T, 0)
	err := Scan(db, prefix, func(key string, value []byte) error {
		var item T
		if err := json.Unmarshal(value, &item); err != nil {
			return fmt.Errorf("unmarshal %s: %w", key, err)
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Scan walks the raw key/value pairs under prefix in key order.
func Scan(db *badger.DB, prefix string, fn func(key string, value []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(prefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(options.Prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(value []byte) error {
				return fn(key, value)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func deletePrefix(txn *badger.Txn, prefix string) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	options.PrefetchValues = false
	it := txn.NewIterator(options)

	var keys [][]byte
	for it.Rewind(); it.ValidForPrefix(options.Prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
