// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/embedded"
	"github.com/decker502/pooattack/pkg/game"
	"github.com/decker502/pooattack/pkg/scenes"
	"github.com/decker502/pooattack/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// appName gdata 存储使用的应用名
const appName = "pooattack"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径，为空则使用内嵌的 data/gameplay.yaml
	ConfigPath string
	// Seed 管道缺口随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.GameplayConfig
	sceneManager    *game.SceneManager
	gameScene       *scenes.GameScene
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源，
// 未初始化时回退到 config.DefaultGameplayConfig()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplayConfig, err := loadGameplayConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	settingsManager := openSettings()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	resourceManager := game.NewResourceManager(gameplayConfig)
	input := utils.NewPointerTapSource(utils.DefaultTapKeys...)
	log.Printf("[App] Tap input: touch, left mouse, keys %v", input.Keys())

	gameScene, err := scenes.NewGameScene(resourceManager, gameplayConfig, input, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	settings := settingsManager.GetSettings()
	gameScene.SetShowHitboxes(settings.ShowHitboxes)
	// 移动端始终全屏，窗口设置只在桌面端生效
	if settings.Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		cfg:             gameplayConfig,
		sceneManager:    sceneManager,
		gameScene:       gameScene,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadGameplayConfig 从磁盘或内嵌文件系统加载玩法配置
func loadGameplayConfig(path string) (*config.GameplayConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载玩法配置: %s", path)
		return config.LoadGameplayConfig(path)
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 未初始化内嵌资源，使用默认玩法配置")
		return config.DefaultGameplayConfig(), nil
	}

	data, err := embedded.ReadFile(config.GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.GameplayConfigPath, err)
	}
	log.Printf("[Config] 加载内嵌玩法配置: %s", config.GameplayConfigPath)
	return config.ParseGameplayConfig(data)
}

// openSettings 打开持久化设置
// 存储不可用时降级为仅内存设置，不影响游戏启动
func openSettings() *game.SettingsManager {
	var gdataManager *gdata.Manager
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	} else {
		gdataManager, err = gdata.Open(gdata.Config{AppName: appName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
			gdataManager = nil
		}
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	return settingsManager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，固定步长 config.FixedDeltaTime
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := config.WindowSize(a.cfg)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) && !utils.IsMobile() {
		a.toggleFullscreen()
	}

	// F3 切换碰撞盒显示
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		show := a.settingsManager.ToggleShowHitboxes()
		a.gameScene.SetShowHitboxes(show)
		log.Printf("[App] Show hitboxes: %v", show)
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := a.settingsManager.ToggleFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
		return
	}

	// 退出全屏
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
	log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.LogicalSize(a.cfg)
}

// GameplayConfig 返回当前玩法配置
func (a *App) GameplayConfig() *config.GameplayConfig {
	return a.cfg
}

// GameScene 返回游戏场景
func (a *App) GameScene() *scenes.GameScene {
	return a.gameScene
}

// SaveSettings 保存设置
// 在游戏关闭时调用
func (a *App) SaveSettings() error {
	return a.settingsManager.Save()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
