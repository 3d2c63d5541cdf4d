package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hover/common"
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/system"
	"github.com/milk9111/hover/hover"
	"github.com/milk9111/hover/prefabs"
	"golang.design/x/clipboard"
)

type gameOptions struct {
	scene    string
	watchDir string
	config   hover.Config
}

type Game struct {
	frames int

	sceneName string
	world     *ecs.World
	built     *prefabs.Built
	scheduler *ecs.Scheduler
	spriteSet []*ebiten.Image

	view      *system.EbitenView
	hover     *system.HoverSystem
	pan       *system.CameraPanSystem
	scripts   *system.HoverScriptSystem
	render    *system.RenderSystem
	tooltip   *system.TooltipRenderer
	hud       *HUD
	watcher   *prefabs.Watcher
	clipboard bool
	debug     bool
}

func NewGame(opts gameOptions) (*Game, error) {
	view := system.NewEbitenView(common.BaseWidth, common.BaseHeight)
	g := &Game{
		sceneName: opts.scene,
		spriteSet: prefabs.AcoFrames(),
		view:      view,
		hover:     system.NewHoverSystem(view, opts.config, log.Default()),
		pan:       system.NewCameraPanSystem(),
		scripts:   system.NewHoverScriptSystem(prefabs.LoadScript),
		render:    system.NewRenderSystem(),
		tooltip:   system.NewTooltipRenderer(view),
		hud:       NewHUD(),
		debug:     opts.config.Debug,
	}
	g.render.Debug = g.debug
	g.scheduler = ecs.NewScheduler(
		g.pan,
		system.NewFrameAnimationSystem(),
		g.scripts,
		g.hover,
	)

	if err := g.load(); err != nil {
		return nil, err
	}

	if opts.watchDir != "" {
		dirs := []string{opts.watchDir}
		if scripts := filepath.Join(opts.watchDir, "scripts"); isDir(scripts) {
			dirs = append(dirs, scripts)
		}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("watch %s: %v", opts.watchDir, err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	g.hover.Start()
	return g, nil
}

// load builds the scene into a fresh world. The old world stays in place
// when the scene fails to load.
func (g *Game) load() error {
	spec, err := prefabs.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	built, err := prefabs.BuildScene(w, spec, prefabs.Deps{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		Frames: g.spriteSet,
	})
	if err != nil {
		return fmt.Errorf("build %s: %w", g.sceneName, err)
	}

	g.scheduler.Reset()
	g.pan.Paused = !built.Pan
	g.world = w
	g.built = built
	return nil
}

func (g *Game) Update() error {
	g.frames++

	g.reloadChanged()
	g.scheduler.Update(g.world)

	for _, ev := range g.world.Events().Drain() {
		g.hud.Push(system.NewNode(g.world, ev.Entity).String(), ev)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyFocusedTitle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
		g.render.Debug = g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.built != nil && g.built.Pan {
		g.pan.Paused = !g.pan.Paused
	}

	g.hud.Update()
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("reload: %s changed", path)
			changed = true
			continue
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}
	if err := g.load(); err != nil {
		log.Printf("reload %s: %v", g.sceneName, err)
		g.hud.SetStatus("reload failed")
		return
	}
	g.hud.SetStatus("reloaded " + g.sceneName)
}

// copyFocusedTitle puts the hovered node's title on the clipboard.
func (g *Game) copyFocusedTitle() {
	n, ok := g.hover.Focused()
	if !ok {
		return
	}
	title := n.Title()
	if title == "" {
		title = n.String()
	}
	if !g.clipboard {
		g.hud.SetStatus("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(title))
	g.hud.SetStatus("copied: " + title)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	g.render.Draw(g.world, screen)
	g.tooltip.Draw(screen)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) Close() {
	g.hover.Stop()
	g.scheduler.Reset()
	g.view.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
