package main

import (
	"flag"
	"log"

	"github.com/decker502/pooattack/pkg/app"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "玩法配置文件路径（默认使用内嵌的 data/gameplay.yaml）")
	seed := flag.Int64("seed", 0, "管道缺口随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := config.WindowSize(gameApp.GameplayConfig())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	runErr := ebiten.RunGame(gameApp)

	if err := gameApp.SaveSettings(); err != nil {
		log.Printf("[main] Warning: failed to save settings: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
