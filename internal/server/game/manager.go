package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dgconway/hive/internal/engine"
	"github.com/dgconway/hive/internal/hive"
)

// Manager 对局管理。Store 可换（内存 / badger），
// 每局一把写锁保证动作串行落库，两个 AI 方各自一个引擎实例。
type Manager struct {
	store Store
	zob   *hive.Zobrist
	log   zerolog.Logger

	weights engine.Weights

	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	engines map[string]*engine.Engine // gameID + ":" + color
}

func NewManager(store Store, zob *hive.Zobrist, log zerolog.Logger) *Manager {
	return &Manager{
		store:   store,
		zob:     zob,
		log:     log,
		weights: engine.DefaultWeights(),
		locks:   make(map[string]*sync.Mutex),
		engines: make(map[string]*engine.Engine),
	}
}

// SetWeights 之后新建的引擎用这套权重；已有引擎不受影响
func (m *Manager) SetWeights(w engine.Weights) {
	m.mu.Lock()
	m.weights = w
	m.mu.Unlock()
}

func (m *Manager) NewGame(mode hive.GameMode) (*hive.Game, error) {
	id := uuid.NewString()
	g := hive.NewGame(id, mode, m.zob)
	if err := m.store.Create(g); err != nil {
		return nil, err
	}
	m.log.Info().Str("game_id", id).Int("mode", int(mode)).Msg("game created")
	return g, nil
}

func (m *Manager) Get(id string) (*hive.Game, error) {
	return m.store.Get(id)
}

// WithGame 加锁读改写：fn 返回 nil 才落库。
// 规则错误不落库，对局记录保持原样。
func (m *Manager) WithGame(id string, fn func(*hive.Game) error) (*hive.Game, error) {
	lock := m.gameLock(id)
	lock.Lock()
	defer lock.Unlock()

	g, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := m.store.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

// EngineFor 每局每方一个引擎，置换表不跨对手共享
func (m *Manager) EngineFor(gameID string, color hive.Color) *engine.Engine {
	key := gameID + ":" + color.String()
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.engines[key]
	if !ok {
		e = engine.NewEngineWithWeights(m.weights)
		m.engines[key] = e
	}
	return e
}

func (m *Manager) Zobrist() *hive.Zobrist { return m.zob }

func (m *Manager) Close() error { return m.store.Close() }

func (m *Manager) gameLock(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	return lock
}
