package game

import "github.com/dgconway/hive/internal/hive"

// Store 对局持久化。实现要求 Get 返回的对象与存储内部状态隔离
// （调用方改了不落库，除非再 Update）。
type Store interface {
	Create(g *hive.Game) error
	Get(id string) (*hive.Game, error)
	Update(g *hive.Game) error
	Close() error
}
