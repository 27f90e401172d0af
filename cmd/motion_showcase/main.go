// cmd/motion_showcase/main.go
// 运动模式展示程序主程序
//
// 用法：
//   go run ./cmd/motion_showcase --config=cmd/motion_showcase/config.yaml

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/motion/pkg/config"
	"github.com/decker502/motion/pkg/motion"
	"github.com/decker502/motion/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", "cmd/motion_showcase/config.yaml", "配置文件路径")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// 可选的运动模式，数字键 1-5 对应
var patternKeys = []motion.Type{
	motion.SharedAxisHorizontal,
	motion.SharedAxisVertical,
	motion.SharedAxisScaled,
	motion.FadeThrough,
	motion.FadeScale,
}

// colorPage 演示用的纯色页面
type colorPage struct {
	name string
	fill color.RGBA
}

func (p *colorPage) Update(deltaTime float64) {}

func (p *colorPage) Draw(screen *ebiten.Image) {
	screen.Fill(p.fill)
	ebitenutil.DebugPrintAt(screen, p.name, 20, 40)
}

// Game 主程序结构
type Game struct {
	cfg      *config.MotionConfig
	manager  *scene.SceneManager
	settings *scene.SettingsManager

	pattern   motion.Type // 当前选中的运动模式
	pages     []*colorPage
	pageIndex int
	showHelp  bool
}

// NewGame 创建展示程序实例
func NewGame(configPath string) (*Game, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// gdata 初始化失败不阻止运行（降级为内存设置）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "motion_showcase"})
	if err != nil {
		log.Printf("警告: gdata 初始化失败: %v (设置将不会持久化)", err)
		gdataManager = nil
	}
	settings, err := scene.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("创建设置管理器失败: %w", err)
	}

	// 恢复上次使用的运动模式
	pattern := motion.SharedAxisHorizontal
	if parsed, err := motion.ParseType(settings.GetSettings().LastPattern); err == nil {
		pattern = parsed
	}

	g := &Game{
		cfg:      cfg,
		manager:  scene.NewSceneManager(),
		settings: settings,
		pattern:  pattern,
		pages: []*colorPage{
			{name: "Page 1 / Crimson", fill: color.RGBA{R: 160, G: 40, B: 60, A: 255}},
			{name: "Page 2 / Teal", fill: color.RGBA{R: 30, G: 130, B: 120, A: 255}},
			{name: "Page 3 / Indigo", fill: color.RGBA{R: 60, G: 60, B: 150, A: 255}},
			{name: "Page 4 / Amber", fill: color.RGBA{R: 200, G: 150, B: 40, A: 255}},
		},
		showHelp: true,
	}

	g.manager.SetReduceMotion(settings.GetSettings().ReduceMotion)
	g.applyPatternConfig()
	g.manager.SwitchTo(g.pages[0])

	log.Printf("✓ 加载配置成功: %s (%dx%d)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	log.Printf("✓ 初始运动模式: %v", pattern)
	return g, nil
}

// applyPatternConfig 按当前模式应用配置中的覆盖参数
func (g *Game) applyPatternConfig() {
	name := g.pattern.String()
	g.manager.SetFillColor(g.cfg.Fill(name))
	g.manager.SetReverseDuration(g.cfg.ReverseDuration(name))

	opts := []motion.Option{}
	if px := g.cfg.Offset(name); px > 0 {
		opts = append(opts, motion.WithOffset(px))
	}
	if s := g.cfg.EnterScale(name); s > 0 {
		opts = append(opts, motion.WithEnterScale(s))
	}
	g.manager.SetPatternOptions(opts...)
}

// duration 返回当前模式的过渡时长（秒）
// 配置未覆盖时返回 0，由场景管理器使用模式默认时长
func (g *Game) duration() float64 {
	d := g.cfg.Duration(g.pattern.String())
	scale := g.settings.GetSettings().DurationScale
	if d > 0 && scale > 0 {
		return d * scale
	}
	if d == 0 && scale > 0 && scale != 1.0 {
		return g.pattern.DefaultDuration() * scale
	}
	return d
}

// Update 更新程序状态
func (g *Game) Update() error {
	// 数字键选择运动模式
	for i, typ := range patternKeys {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.pattern = typ
			g.applyPatternConfig()
			g.settings.SetLastPattern(typ.String())
			if err := g.settings.Save(); err != nil {
				log.Printf("警告: 保存设置失败: %v", err)
			}
			if *verbose {
				log.Printf("选择运动模式: %v", typ)
			}
		}
	}

	// 空格/回车：过渡到下一页
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		next := g.pages[(g.pageIndex+1)%len(g.pages)]
		if err := g.manager.TransitionTo(next, g.pattern, g.duration()); err != nil {
			log.Printf("警告: 过渡失败: %v", err)
		} else {
			g.pageIndex = (g.pageIndex + 1) % len(g.pages)
		}
	}

	// 退格：回退进行中的过渡
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := g.manager.Pop(); err != nil {
			if *verbose {
				log.Printf("回退失败: %v", err)
			}
		} else {
			g.pageIndex = (g.pageIndex - 1 + len(g.pages)) % len(g.pages)
		}
	}

	// R：切换减少动态效果
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		reduce := !g.settings.GetSettings().ReduceMotion
		g.settings.SetReduceMotion(reduce)
		g.manager.SetReduceMotion(reduce)
		if err := g.settings.Save(); err != nil {
			log.Printf("警告: 保存设置失败: %v", err)
		}
		log.Printf("减少动态效果: %v", reduce)
	}

	// F：切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		g.settings.SetFullscreen(fullscreen)
		if err := g.settings.Save(); err != nil {
			log.Printf("警告: 保存设置失败: %v", err)
		}
	}

	// H：显示/隐藏帮助
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	g.manager.Update(1.0 / float64(g.cfg.Playback.TPS))
	return nil
}

// Draw 绘制画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 30, B: 30, A: 255})
	g.manager.Draw(screen)
	g.drawInfoBar(screen)
	if g.showHelp {
		g.drawHelp(screen)
	}
}

// drawInfoBar 绘制顶部信息栏
func (g *Game) drawInfoBar(screen *ebiten.Image) {
	state := "idle"
	if g.manager.IsTransitioning() {
		state = "transitioning"
	}
	info := fmt.Sprintf("FPS: %.1f | 模式: %v | 页面: %d/%d | %s",
		ebiten.ActualTPS(), g.pattern, g.pageIndex+1, len(g.pages), state)
	ebitenutil.DebugPrintAt(screen, info, 10, 10)
}

// drawHelp 绘制帮助信息
func (g *Game) drawHelp(screen *ebiten.Image) {
	helpLines := []string{
		"操作说明:",
		"  1-5        - 选择运动模式",
		"  Space/Enter - 过渡到下一页",
		"  Backspace  - 回退进行中的过渡",
		"  R          - 切换减少动态效果",
		"  F          - 切换全屏",
		"  H          - 显示/隐藏帮助",
	}
	help := ""
	for _, line := range helpLines {
		help += line + "\n"
	}
	ebitenutil.DebugPrintAt(screen, help, 10, g.cfg.Window.Height-130)
}

// Layout 设置窗口布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 运动模式展示程序启动 ===")

	game, err := NewGame(*configPath)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(game.cfg.Window.Width, game.cfg.Window.Height)
	ebiten.SetWindowTitle(game.cfg.Window.Title)
	ebiten.SetTPS(game.cfg.Playback.TPS)
	if game.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("✓ 窗口配置: %dx%d @ %d TPS",
		game.cfg.Window.Width, game.cfg.Window.Height, game.cfg.Playback.TPS)
	log.Println("=== 启动完成，开始运行 ===")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
