package game

import (
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/dgconway/hive/internal/hive"
)

const gameKeyPrefix = "game:"

// BadgerStore 落盘存储：服务重启后对局还在。
// 值是边界 JSON 形状，方便直接用工具查看。
type BadgerStore struct {
	db  *badger.DB
	zob *hive.Zobrist
}

func NewBadgerStore(dir string, zob *hive.Zobrist) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db, zob: zob}, nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

func (s *BadgerStore) put(g *hive.Game) error {
	data, err := hive.MarshalGame(g)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(g.ID), data)
	})
}

func (s *BadgerStore) Create(g *hive.Game) error {
	return s.put(g)
}

func (s *BadgerStore) Get(id string) (*hive.Game, error) {
	var g *hive.Game
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return hive.ErrGameNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			g, err = hive.UnmarshalGame(val, s.zob)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *BadgerStore) Update(g *hive.Game) error {
	return s.put(g)
}

func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
