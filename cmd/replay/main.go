// Command replay runs a scripted input sequence through the simulation
// without opening a window and prints where the player ended up.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
)

func main() {
	scriptPath := flag.String("script", "", "replay script (yaml)")
	levelName := flag.String("level", "", "level override; defaults to the script's level")
	trace := flag.Bool("trace", false, "log every tick")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *trace {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}
	name := script.Level
	if *levelName != "" {
		name = *levelName
	}
	lvl, err := levels.Load(name)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := entity.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	res, err := Run(script.Frames(), lvl, catalog, logger)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("ticks=%d pos=(%.3f, %.3f) health=%d dead=%v killed=%d enemies_left=%d\n",
		res.Ticks, res.Position.X, res.Position.Y, res.Health, res.Dead, res.EnemiesKilled, res.EnemiesLeft)
}
