// badgerdb реализует контракты internal/storage поверх BadgerDB —
// встраиваемого локального key-value хранилища.
//
// Значения сериализуются в JSON; каждая коллекция живёт под одним ключом
// и записывается целиком внутри одной транзакции.
package badgerdb

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/pribylovaa/go-local-blog/internal/storage"
)

// Ключи хранилища.
const (
	keyAccounts       = "accounts-collection"
	keySession        = "current-session"
	keyArticles       = "articles-collection"
	keyCommentsPrefix = "comments/"
)

// Storage — реализация storage.Storage на BadgerDB.
type Storage struct {
	db *badger.DB
}

// New открывает (или создаёт) базу по указанному пути.
func New(path string) (*Storage, error) {
	const op = "storage.badgerdb.New"

	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает базу.
func (s *Storage) Close() {
	_ = s.db.Close()
}

// write сериализует значение в JSON и записывает его по ключу.
func (s *Storage) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// read читает значение по ключу и десериализует его в target.
// Отсутствие ключа маппится в storage.ErrNotFound.
func (s *Storage) read(key string, target any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, target)
		})
	})
}

// delete удаляет значение по ключу; отсутствие ключа не является ошибкой.
func (s *Storage) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
