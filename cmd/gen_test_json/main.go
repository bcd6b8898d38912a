package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/dgconway/hive/internal/hive"
)

// 生成一局随机走子后的对局 JSON，前端联调和存储测试当夹具用。
func main() {
	moves := flag.Int("moves", 12, "number of random plies to play")
	seed := flag.Int64("seed", 42, "rng seed")
	advanced := flag.Bool("advanced", true, "advanced mode")
	out := flag.String("out", "", "output file (empty = stdout)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	mode := hive.ModeStandard
	if *advanced {
		mode = hive.ModeAdvanced
	}
	g := hive.NewGame("fixture", mode, hive.NewZobrist())

	for i := 0; i < *moves && g.Status == hive.StatusInProgress; i++ {
		actions := hive.LegalActions(g)
		if len(actions) == 0 {
			break
		}
		if err := g.Apply(actions[rng.Intn(len(actions))]); err != nil {
			log.Fatalf("apply: %v", err)
		}
	}

	data, err := json.MarshalIndent(g.ToDoc(), "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
