package main

import (
	"fmt"

	"github.com/dgconway/hive/internal/engine"
	"github.com/dgconway/hive/internal/hive"
)

func main() {
	zob := hive.NewZobrist()
	g := hive.NewGame("debug", hive.ModeAdvanced, zob)
	fmt.Println("Hash:", g.Hash())

	actions := hive.LegalActions(g)
	fmt.Println("Legal actions:", len(actions))

	w := engine.DefaultWeights()
	fmt.Println("Eval (white):", engine.Evaluate(g, hive.White, &w))
}
