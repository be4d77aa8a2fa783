package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"

	"gomokud/app/gomoku"
)

// Plays two engines against each other and prints the final board. Useful for
// eyeballing move quality without a network client.
func main() {
	moves := flag.Int("moves", 40, "maximum stones to play")
	seed := flag.Int64("seed", 1, "rng seed for both engines")
	renju := flag.Bool("renju", false, "apply the forbidden move filter to the first mover")
	flag.Parse()

	black := gomoku.NewEngine(gomoku.Options{
		Renju: *renju,
		Book:  gomoku.DefaultBook(),
		Rand:  rand.New(rand.NewSource(*seed)),
	})
	white := gomoku.NewEngine(gomoku.Options{
		Rand: rand.New(rand.NewSource(*seed + 1)),
	})

	last, err := black.Start()
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	slog.Info("placed stone", "side", gomoku.Black, "move", last)

	engines := []*gomoku.Engine{white, black}
	sides := []gomoku.Cell{gomoku.White, gomoku.Black}

	for i := 0; i < *moves-1; i++ {
		engine := engines[i%2]
		reply, err := engine.Respond(last)
		if err != nil {
			slog.Info("match over", "reason", err, "stones", i+1)
			break
		}
		slog.Info("placed stone", "side", sides[i%2], "move", reply)
		last = reply
	}

	final := black.Snapshot()
	fmt.Println(final.String())
}
