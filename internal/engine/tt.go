package engine

import (
	"sync"

	"github.com/dgconway/hive/internal/hive"
)

type boundKind uint8

const (
	boundExact boundKind = iota
	boundLower           // fail-high，真实分 >= Score
	boundUpper           // fail-low，真实分 <= Score
)

type ttEntry struct {
	Key     uint64
	Depth   int
	Score   int
	Bound   boundKind
	Best    hive.Action
	HasBest bool
}

// 分片数取 2 的幂，用低位哈希选片
const ttShards = 16

// transTable 置换表。根节点并行时多个 goroutine 共享，分片锁摊开竞争。
type transTable struct {
	shards [ttShards]ttShard
}

type ttShard struct {
	mu sync.RWMutex
	m  map[uint64]ttEntry
}

const ttShardCap = 1 << 16

func newTransTable() *transTable {
	t := &transTable{}
	for i := range t.shards {
		t.shards[i].m = make(map[uint64]ttEntry, 1<<12)
	}
	return t
}

func (t *transTable) shard(key uint64) *ttShard {
	return &t.shards[key&(ttShards-1)]
}

func (t *transTable) probe(key uint64) (ttEntry, bool) {
	s := t.shard(key)
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()
	if !ok || e.Key != key {
		return ttEntry{}, false
	}
	return e, true
}

// 深度优先替换：浅的结果不覆盖深的
func (t *transTable) store(e ttEntry) {
	s := t.shard(e.Key)
	s.mu.Lock()
	if len(s.m) > ttShardCap {
		s.m = make(map[uint64]ttEntry, 1<<12)
	}
	if old, ok := s.m[e.Key]; !ok || e.Depth >= old.Depth {
		s.m[e.Key] = e
	}
	s.mu.Unlock()
}
