package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/dgconway/hive/internal/engine"
	"github.com/dgconway/hive/internal/hive"
)

type playerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

func main() {
	totalGames := flag.Int("games", 2, "number of games to play")
	depthA := flag.Int("depth-a", 3, "player A search depth")
	depthB := flag.Int("depth-b", 2, "player B search depth")
	timeMs := flag.Int64("time-ms", 0, "per-move time limit in ms (0 = none)")
	maxMoves := flag.Int("maxmoves", 200, "max plies per game")
	advanced := flag.Bool("advanced", true, "include ladybug, mosquito, pillbug")
	weightsPath := flag.String("weights", "", "path to JSON evaluation weights")
	pprofAddr := flag.String("pprof", "", "pprof listen address (empty = off)")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	weights := engine.DefaultWeights()
	if *weightsPath != "" {
		w, err := engine.LoadWeights(*weightsPath)
		if err != nil {
			log.Fatalf("load weights: %v", err)
		}
		weights = w
	}

	var limit time.Duration
	if *timeMs > 0 {
		limit = time.Duration(*timeMs) * time.Millisecond
	}

	playerA := playerConfig{
		Name: fmt.Sprintf("A (depth %d)", *depthA),
		Cfg:  engine.SearchConfig{MaxDepth: *depthA, TimeLimit: limit},
	}
	playerB := playerConfig{
		Name: fmt.Sprintf("B (depth %d)", *depthB),
		Cfg:  engine.SearchConfig{MaxDepth: *depthB, TimeLimit: limit},
	}

	mode := hive.ModeStandard
	if *advanced {
		mode = hive.ModeAdvanced
	}
	zob := hive.NewZobrist()

	aWins, bWins, draws := 0, 0, 0

	for n := 0; n < *totalGames; n++ {
		// 轮流执白
		white, black := playerA, playerB
		if n%2 == 1 {
			white, black = playerB, playerA
		}

		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", n+1, white.Name, black.Name)
		winner := playGame(zob, mode, weights, white, black, *maxMoves)

		switch {
		case winner == hive.NoColor:
			draws++
			fmt.Println("Result: Draw")
		case (winner == hive.White) == (n%2 == 0):
			aWins++
			fmt.Printf("Result: %s wins\n", playerA.Name)
		default:
			bWins++
			fmt.Printf("Result: %s wins\n", playerB.Name)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", playerA.Name, aWins)
	fmt.Printf("%s: %d\n", playerB.Name, bWins)
	fmt.Printf("Draws: %d\n", draws)
}

// playGame 跑完一整局，返回赢家颜色；和棋/超长局返回 NoColor
func playGame(zob *hive.Zobrist, mode hive.GameMode, w engine.Weights, white, black playerConfig, maxMoves int) hive.Color {
	g := hive.NewGame("selfplay", mode, zob)

	// 双方各自的引擎，置换表互不串
	engines := map[hive.Color]*engine.Engine{
		hive.White: engine.NewEngineWithWeights(w),
		hive.Black: engine.NewEngineWithWeights(w),
	}
	configs := map[hive.Color]engine.SearchConfig{
		hive.White: white.Cfg,
		hive.Black: black.Cfg,
	}

	for i := 0; i < maxMoves; i++ {
		side := g.CurrentTurn
		start := time.Now()
		res := engines[side].Search(context.Background(), g, configs[side])
		if !res.HasAction {
			log.Printf("no actions for %v, game stuck", side)
			return hive.NoColor
		}

		if err := g.Apply(res.BestAction); err != nil {
			log.Fatalf("apply search move: %v", err)
		}

		elapsed := time.Since(start)
		nps := int64(0)
		if s := elapsed.Seconds(); s > 0 {
			nps = int64(float64(res.Nodes) / s)
		}
		fmt.Printf("[%3d] %s %-7s -> %-6s score=%-6d depth=%d nodes=%d time=%v nps=%d\n",
			i+1, side, res.BestAction.Kind, res.BestAction.To, res.Score, res.Depth, res.Nodes, elapsed.Round(time.Millisecond), nps)

		if g.Status == hive.StatusFinished {
			return g.Winner
		}
	}
	return hive.NoColor
}
