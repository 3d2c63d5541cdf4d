package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hover/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "outline touchable bounds and show frame stats")
	showTooltip := flag.Bool("tooltip", true, "show the hovered node's title next to the cursor")
	cursor := flag.String("cursor", "", "cursor shown over hoverable nodes (CSS name, e.g. pointer)")
	sceneName := flag.String("scene", "scene.yaml", "scene spec name in prefabs/")
	watchDir := flag.String("watch", "", "reload the scene when files in this directory change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *watchDir != "" {
		prefabs.SetDiskRoot(*watchDir)
	}

	cfg, err := prefabs.LoadHoverConfig()
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "tooltip":
			cfg.ShowTooltip = *showTooltip
		case "cursor":
			cfg.Cursor = *cursor
		}
	})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("hover")

	game, err := NewGame(gameOptions{scene: *sceneName, watchDir: *watchDir, config: cfg})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
