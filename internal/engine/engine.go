package engine

import (
	"encoding/json"
	"os"

	"github.com/dgconway/hive/internal/hive"
)

// Engine 一个搜索引擎实例。置换表跨多次 Search 复用（同一局内
// 哈希键稳定），两个对弈方各用各的实例，互不串表。
type Engine struct {
	weights Weights
	tt      *transTable
	nodes   int64
}

func NewEngine() *Engine {
	return NewEngineWithWeights(DefaultWeights())
}

func NewEngineWithWeights(w Weights) *Engine {
	if w.PieceValues == nil {
		w.rebuildPieceValues()
	}
	return &Engine{
		weights: w,
		tt:      newTransTable(),
	}
}

// LoadWeights 从 JSON 调参文件读取权重，缺省字段保持默认值
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, err
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return Weights{}, err
	}
	w.rebuildPieceValues()
	return w, nil
}

func (e *Engine) Weights() Weights { return e.weights }

// Evaluate 当前局面静态评估（调试接口用）
func (e *Engine) Evaluate(g *hive.Game, player hive.Color) int {
	return Evaluate(g, player, &e.weights)
}
