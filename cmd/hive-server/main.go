package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/dgconway/hive/internal/engine"
	"github.com/dgconway/hive/internal/hive"
	"github.com/dgconway/hive/internal/server/game"
	httpserver "github.com/dgconway/hive/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	storeKind := flag.String("store", "memory", "game store: memory or badger")
	dataDir := flag.String("data", "./hive-data", "badger data directory")
	weightsPath := flag.String("weights", "", "path to JSON evaluation weights (optional)")
	pretty := flag.Bool("pretty", false, "human readable log output")
	flag.Parse()

	var out = os.Stderr
	log := zerolog.New(out).With().Timestamp().Logger()
	if *pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: out})
	}

	zob := hive.NewZobrist()

	var store game.Store
	var err error
	switch *storeKind {
	case "memory":
		store = game.NewMemoryStore()
	case "badger":
		store, err = game.NewBadgerStore(*dataDir, zob)
		if err != nil {
			log.Fatal().Err(err).Str("dir", *dataDir).Msg("open badger store")
		}
	default:
		log.Fatal().Str("store", *storeKind).Msg("unknown store kind")
	}
	defer store.Close()

	mgr := game.NewManager(store, zob, log)
	if *weightsPath != "" {
		w, err := engine.LoadWeights(*weightsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *weightsPath).Msg("load weights")
		}
		mgr.SetWeights(w)
		log.Info().Str("path", *weightsPath).Msg("weights loaded")
	}
	h := httpserver.NewHandler(mgr, log)

	mux := http.NewServeMux()
	mux.Handle("/api/", h)

	log.Info().Str("addr", *addr).Str("store", *storeKind).Msg("listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
