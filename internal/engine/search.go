package engine

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgconway/hive/internal/hive"
)

const scoreInf = math.MaxInt32

type SearchConfig struct {
	MaxDepth    int           // 最大搜索深度（ply）
	TimeLimit   time.Duration // 0 表示不限时
	Parallelism int           // 根节点并行度，0 取 GOMAXPROCS
	DisableBook bool          // 跳过开局库（测试用）
}

type SearchResult struct {
	BestAction hive.Action
	HasAction  bool
	Score      int // 走子方视角，正数对走子方有利
	Depth      int // 实际完成的深度
	Nodes      int64
	TimeUsed   time.Duration
	FromBook   bool
}

// Search 迭代加深。ctx 取消或超时后返回已完成的最深一层结果；
// 每层都把上一层的最佳着法排在最前。
func (e *Engine) Search(ctx context.Context, g *hive.Game, cfg SearchConfig) SearchResult {
	start := time.Now()

	if !cfg.DisableBook {
		if act, ok := e.bookAction(g); ok {
			return SearchResult{BestAction: act, HasAction: true, Depth: 0, FromBook: true, TimeUsed: time.Since(start)}
		}
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	atomic.StoreInt64(&e.nodes, 0)
	orderer := newMoveOrderer()

	// 无棋可走：返回静态评估，调用方按无着法处理
	if len(hive.LegalActions(g)) == 0 {
		return SearchResult{Score: Evaluate(g, g.CurrentTurn, &e.weights), TimeUsed: time.Since(start)}
	}

	result := SearchResult{}
	var prevBest hive.Action
	hasPrevBest := false

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		score, act, ok := e.searchRoot(ctx, g, depth, prevBest, hasPrevBest, orderer, cfg.Parallelism)
		if !ok {
			break // 超时/取消，该层不完整，丢弃
		}
		result.BestAction = act
		result.HasAction = true
		result.Score = score
		result.Depth = depth
		prevBest = act
		hasPrevBest = true

		// 已见必胜/必败，加深没有意义
		if score >= scoreWin || score <= -scoreWin {
			break
		}
	}

	result.Nodes = atomic.LoadInt64(&e.nodes)
	result.TimeUsed = time.Since(start)
	return result
}

// searchRoot 单层根节点搜索：PV 子节点先串行确立 alpha，
// 其余兄弟在 errgroup 里并行，共享置换表和历史表。
func (e *Engine) searchRoot(ctx context.Context, g *hive.Game, depth int, prevBest hive.Action, hasPrevBest bool, orderer *moveOrderer, parallelism int) (int, hive.Action, bool) {
	actions := hive.LegalActions(g)
	if len(actions) == 0 {
		return Evaluate(g, g.CurrentTurn, &e.weights), hive.Action{}, false
	}

	orderer.orderActions(g, actions, 0, prevBest, hasPrevBest)

	type childNode struct {
		action hive.Action
		game   *hive.Game
	}
	children := make([]childNode, 0, len(actions))
	for _, a := range actions {
		child := g.Clone()
		if err := child.Apply(a); err != nil {
			continue
		}
		children = append(children, childNode{action: a, game: child})
	}
	if len(children) == 0 {
		return 0, hive.Action{}, false
	}

	// PV 串行
	bestScore := -e.negamax(ctx, children[0].game, depth-1, -scoreInf, scoreInf, 1, orderer)
	bestAction := children[0].action
	if ctx.Err() != nil {
		return 0, hive.Action{}, false
	}

	if len(children) > 1 {
		var mu sync.Mutex
		alpha := bestScore

		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(parallelism)
		for _, ch := range children[1:] {
			ch := ch
			eg.Go(func() error {
				mu.Lock()
				a := alpha
				mu.Unlock()
				score := -e.negamax(gctx, ch.game, depth-1, -scoreInf, -a, 1, orderer)
				if gctx.Err() != nil {
					return gctx.Err()
				}
				mu.Lock()
				if score > bestScore {
					bestScore = score
					bestAction = ch.action
					if score > alpha {
						alpha = score
					}
				}
				mu.Unlock()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return 0, hive.Action{}, false
		}
	}

	e.tt.store(ttEntry{
		Key: g.Hash(), Depth: depth, Score: bestScore,
		Bound: boundExact, Best: bestAction, HasBest: true,
	})
	return bestScore, bestAction, true
}

// negamax fail-soft alpha-beta，分数永远是走子方视角。
func (e *Engine) negamax(ctx context.Context, g *hive.Game, depth, alpha, beta, ply int, orderer *moveOrderer) int {
	atomic.AddInt64(&e.nodes, 1)

	if ctx.Err() != nil {
		// 中断时返回静态评估，整层结果由调用方丢弃
		return Evaluate(g, g.CurrentTurn, &e.weights)
	}

	key := g.Hash()
	entry, hit := e.tt.probe(key)
	if hit && entry.Depth >= depth {
		switch entry.Bound {
		case boundExact:
			return entry.Score
		case boundLower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case boundUpper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Score
		}
	}

	// 叶子的静态评估也进表：Evaluate 里有机动性扫描，不便宜
	if g.Status == hive.StatusFinished || depth <= 0 {
		score := Evaluate(g, g.CurrentTurn, &e.weights)
		e.tt.store(ttEntry{Key: key, Depth: 0, Score: score, Bound: boundExact})
		return score
	}

	actions := hive.LegalActions(g)
	if len(actions) == 0 {
		return Evaluate(g, g.CurrentTurn, &e.weights)
	}

	orderer.orderActions(g, actions, ply, entry.Best, hit && entry.HasBest)

	origAlpha := alpha
	bestScore := -scoreInf
	var bestAction hive.Action
	hasBest := false

	for _, a := range actions {
		child := g.Clone()
		if err := child.Apply(a); err != nil {
			continue
		}
		score := -e.negamax(ctx, child, depth-1, -beta, -alpha, ply+1, orderer)

		if score > bestScore {
			bestScore = score
			bestAction = a
			hasBest = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			orderer.recordKiller(ply, a)
			orderer.recordHistory(a, depth)
			break
		}
	}

	if !hasBest {
		return Evaluate(g, g.CurrentTurn, &e.weights)
	}

	bound := boundExact
	switch {
	case bestScore <= origAlpha:
		bound = boundUpper
	case bestScore >= beta:
		bound = boundLower
	}
	e.tt.store(ttEntry{
		Key: key, Depth: depth, Score: bestScore,
		Bound: bound, Best: bestAction, HasBest: true,
	})
	return bestScore
}
