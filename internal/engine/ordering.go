package engine

import (
	"sort"
	"sync"

	"github.com/dgconway/hive/internal/hive"
)

// 排序优先级：TT 着法 > 杀手 > 历史分 + 静态分
const (
	ttMoveScore  = 10_000_000
	killerScore1 = 900_000
	killerScore2 = 800_000
)

const maxPly = 64

// moveOrderer 杀手着法 + 历史启发。一次搜索一个实例；
// 根节点并行的分支共享，杀手表和历史表都在锁内读写。
type moveOrderer struct {
	mu      sync.RWMutex
	killers [maxPly][2]uint64
	history map[uint64]int
}

func newMoveOrderer() *moveOrderer {
	return &moveOrderer{history: make(map[uint64]int, 1<<10)}
}

// fingerprint 动作指纹，杀手/历史表的键。坐标偏移 128 后各占 8 位，
// 实战棋盘不会超出 ±127。
func fingerprint(a hive.Action) uint64 {
	h := uint64(a.Kind)<<60 | uint64(a.PieceType)<<56
	h |= uint64(uint8(a.To.Q+128))<<24 | uint64(uint8(a.To.R+128))<<16
	if a.HasFrom {
		h |= 1 << 48
		h |= uint64(uint8(a.From.Q+128))<<40 | uint64(uint8(a.From.R+128))<<32
	}
	return h
}

func (mo *moveOrderer) recordKiller(ply int, a hive.Action) {
	if ply < 0 || ply >= maxPly {
		return
	}
	fp := fingerprint(a)
	mo.mu.Lock()
	if mo.killers[ply][0] != fp {
		mo.killers[ply][1] = mo.killers[ply][0]
		mo.killers[ply][0] = fp
	}
	mo.mu.Unlock()
}

// recordHistory 截断深度越深加分越多
func (mo *moveOrderer) recordHistory(a hive.Action, depth int) {
	fp := fingerprint(a)
	mo.mu.Lock()
	mo.history[fp] += depth * depth
	mo.mu.Unlock()
}

func (mo *moveOrderer) historyScore(fp uint64) int {
	mo.mu.RLock()
	s := mo.history[fp]
	mo.mu.RUnlock()
	return s
}

// staticScore 不依赖搜索状态的先验排序分
func staticScore(g *hive.Game, a hive.Action) int {
	if a.Kind == hive.ActionPlace {
		if a.PieceType == hive.PieceQueen {
			return 1000
		}
		return 10
	}

	piece, ok := g.TopPiece(a.From)
	if !ok {
		return 0
	}
	switch piece.Type {
	case hive.PieceQueen:
		return 50
	case hive.PieceAnt:
		// 开局前几手蚂蚁乱跑意义不大
		if g.TurnNumber >= 6 {
			return 40
		}
		return 5
	case hive.PieceGrasshopper:
		return 30
	case hive.PieceBeetle:
		return 25
	case hive.PieceSpider:
		return 15
	case hive.PieceMosquito:
		return 35
	case hive.PieceLadybug:
		return 20
	case hive.PiecePillbug:
		return 20
	}
	return 0
}

// orderActions 原地按 TT 着法 / 杀手 / 历史 + 静态分降序
func (mo *moveOrderer) orderActions(g *hive.Game, actions []hive.Action, ply int, ttBest hive.Action, hasTTBest bool) {
	var ttFP uint64
	if hasTTBest {
		ttFP = fingerprint(ttBest)
	}
	var k0, k1 uint64
	if ply >= 0 && ply < maxPly {
		mo.mu.RLock()
		k0, k1 = mo.killers[ply][0], mo.killers[ply][1]
		mo.mu.RUnlock()
	}

	type scored struct {
		action hive.Action
		score  int
	}
	pairs := make([]scored, len(actions))
	for i, a := range actions {
		fp := fingerprint(a)
		var s int
		switch {
		case hasTTBest && fp == ttFP:
			s = ttMoveScore
		case fp == k0 && k0 != 0:
			s = killerScore1
		case fp == k1 && k1 != 0:
			s = killerScore2
		default:
			s = mo.historyScore(fp) + staticScore(g, a)
		}
		pairs[i] = scored{action: a, score: s}
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })
	for i := range pairs {
		actions[i] = pairs[i].action
	}
}
