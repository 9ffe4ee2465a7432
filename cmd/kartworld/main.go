package main

import (
	"flag"

	"github.com/local-optimum/kart-world/internal/game"
)

func main() {
	server := flag.String("server", "", "websocket relay URL for multiplayer ghosts (empty = single-player)")
	flag.Parse()

	g := game.New(*server)
	g.Run()
}
