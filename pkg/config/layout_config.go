package config

// 布局与运行参数常量

const (
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Patient Poo Attack"

	// TicksPerSecond 逻辑帧率，Update 每次推进 1/TicksPerSecond 秒
	TicksPerSecond = 60

	// FixedDeltaTime 固定步长（秒）
	FixedDeltaTime = 1.0 / TicksPerSecond

	// GameplayConfigPath 内嵌玩法配置路径
	GameplayConfigPath = "data/gameplay.yaml"
)

// WindowSize 根据逻辑屏幕尺寸和缩放计算桌面窗口尺寸
func WindowSize(cfg *GameplayConfig) (int, int) {
	scale := cfg.Screen.WindowScale
	if scale <= 0 {
		scale = 1
	}
	return int(cfg.Screen.Width * scale), int(cfg.Screen.Height * scale)
}

// LogicalSize 返回逻辑屏幕尺寸（整数，用于 ebiten Layout）
func LogicalSize(cfg *GameplayConfig) (int, int) {
	return int(cfg.Screen.Width), int(cfg.Screen.Height)
}
