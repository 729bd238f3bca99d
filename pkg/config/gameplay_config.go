package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ErrGapTooTall 屏幕高度不大于管道缺口高度
// 此时缺口中心的取值区间退化，属于启动期致命配置错误
var ErrGapTooTall = errors.New("screen height must be greater than pipe gap height")

// GameplayConfig 玩法配置
//
// 配置文件位置: data/gameplay.yaml
// 所有长度单位为点（逻辑像素），时间单位为秒
type GameplayConfig struct {
	Screen     ScreenConfig             `yaml:"screen"`
	Physics    PhysicsConfig            `yaml:"physics"`
	Bird       BirdConfig               `yaml:"bird"`
	Ground     GroundConfig             `yaml:"ground"`
	Pipe       PipeConfig               `yaml:"pipe"`
	Bullet     BulletConfig             `yaml:"bullet"`
	Rules      RulesConfig              `yaml:"rules"`
	ScoreLabel ScoreLabelConfig         `yaml:"scoreLabel"`
	Background BackgroundConfig         `yaml:"background"`
	Textures   map[string]TextureConfig `yaml:"textures"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	WindowScale float64 `yaml:"windowScale"` // 桌面窗口相对逻辑尺寸的缩放
}

// PhysicsConfig 物理世界参数
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // 竖直重力加速度（点/秒²，向下为负）
}

// BirdConfig 玩家角色参数
type BirdConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Mass        float64 `yaml:"mass"`
	JumpImpulse float64 `yaml:"jumpImpulse"` // 竖直向上冲量，速度变化 = 冲量 / 质量
	Texture     string  `yaml:"texture"`
	Z           float64 `yaml:"z"`
}

// GroundConfig 地面参数
type GroundConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Texture string  `yaml:"texture"`
	Z       float64 `yaml:"z"`
}

// PipeConfig 管道参数
type PipeConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GapHeight      float64 `yaml:"gapHeight"`
	ScrollDuration float64 `yaml:"scrollDuration"` // 从右侧外滚动到左侧外的时长
	SpawnInterval  float64 `yaml:"spawnInterval"`  // 两次生成之间的等待
	Texture        string  `yaml:"texture"`
	Z              float64 `yaml:"z"`
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	OffsetX        float64 `yaml:"offsetX"`        // 相对小鸟位置的水平发射偏移
	TravelDuration float64 `yaml:"travelDuration"` // 向右移动一个屏幕宽度的时长
	Texture        string  `yaml:"texture"`
	Z              float64 `yaml:"z"`
}

// RulesConfig 计分与状态切换规则
type RulesConfig struct {
	PointsPerPipe      int     `yaml:"pointsPerPipe"`
	GameOverResetDelay float64 `yaml:"gameOverResetDelay"`
}

// ScoreLabelConfig 分数标签参数
type ScoreLabelConfig struct {
	FontSize      float64 `yaml:"fontSize"`
	OffsetFromTop float64 `yaml:"offsetFromTop"`
	Color         string  `yaml:"color"`
	Z             float64 `yaml:"z"`
}

// BackgroundConfig 背景参数
type BackgroundConfig struct {
	Texture string  `yaml:"texture"`
	Z       float64 `yaml:"z"`
}

// TextureConfig 纹理描述
// 纹理尺寸由使用它的实体决定，这里只描述填充颜色（CSS 颜色名）
type TextureConfig struct {
	Color string `yaml:"color"`
}

// DefaultGameplayConfig 返回与 data/gameplay.yaml 一致的默认配置
// 测试和移动端绑定不依赖配置文件时使用
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Screen: ScreenConfig{Width: 750, Height: 1334, WindowScale: 0.5},
		// 重力 -5 m/s²，按 150 点/米换算
		Physics: PhysicsConfig{Gravity: -750},
		Bird: BirdConfig{
			Width: 68, Height: 68, Mass: 0.1, JumpImpulse: 52,
			Texture: "patient", Z: 10,
		},
		Ground: GroundConfig{Width: 750, Height: 120, Texture: "ground", Z: 8},
		Pipe: PipeConfig{
			Width: 104, Height: 640, GapHeight: 150,
			ScrollDuration: 5.0, SpawnInterval: 2.0,
			Texture: "nurse", Z: 5,
		},
		Bullet: BulletConfig{
			Width: 10, Height: 20, OffsetX: 20, TravelDuration: 1.0,
			Texture: "bullet", Z: 6,
		},
		Rules:      RulesConfig{PointsPerPipe: 10, GameOverResetDelay: 1.0},
		ScoreLabel: ScoreLabelConfig{FontSize: 45, OffsetFromTop: 100, Color: "white", Z: 20},
		Background: BackgroundConfig{Texture: "background", Z: -10},
		Textures: map[string]TextureConfig{
			"background": {Color: "lightskyblue"},
			"patient":    {Color: "saddlebrown"},
			"ground":     {Color: "olivedrab"},
			"nurse":      {Color: "white"},
			"bullet":     {Color: "gold"},
		},
	}
}

// LoadGameplayConfig 从磁盘加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析 YAML 数据并校验
// 未出现在 YAML 中的字段保留默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 屏幕、实体尺寸为正
//   - 屏幕高度大于缺口高度（否则缺口中心区间退化）
//   - 时长为正（生成间隔为 0 会导致同一帧内无限生成）
//   - 纹理引用都在 textures 中声明，颜色名可识别
func (c *GameplayConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}
	if c.Pipe.GapHeight <= 0 {
		return fmt.Errorf("pipe.gapHeight must be positive, got %.1f", c.Pipe.GapHeight)
	}
	if c.Screen.Height <= c.Pipe.GapHeight {
		return fmt.Errorf("%w: screen height %.1f, gap height %.1f", ErrGapTooTall, c.Screen.Height, c.Pipe.GapHeight)
	}

	sizes := []struct {
		name string
		w, h float64
	}{
		{"bird", c.Bird.Width, c.Bird.Height},
		{"ground", c.Ground.Width, c.Ground.Height},
		{"pipe", c.Pipe.Width, c.Pipe.Height},
		{"bullet", c.Bullet.Width, c.Bullet.Height},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			return fmt.Errorf("%s size must be positive, got %.1fx%.1f", s.name, s.w, s.h)
		}
	}

	durations := []struct {
		name  string
		value float64
	}{
		{"pipe.scrollDuration", c.Pipe.ScrollDuration},
		{"pipe.spawnInterval", c.Pipe.SpawnInterval},
		{"bullet.travelDuration", c.Bullet.TravelDuration},
		{"rules.gameOverResetDelay", c.Rules.GameOverResetDelay},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %.2f", d.name, d.value)
		}
	}

	if c.Bird.Mass <= 0 {
		return fmt.Errorf("bird.mass must be positive, got %.2f", c.Bird.Mass)
	}
	if c.Rules.PointsPerPipe <= 0 {
		return fmt.Errorf("rules.pointsPerPipe must be positive, got %d", c.Rules.PointsPerPipe)
	}

	for _, name := range []string{c.Bird.Texture, c.Ground.Texture, c.Pipe.Texture, c.Bullet.Texture, c.Background.Texture} {
		tex, ok := c.Textures[name]
		if !ok {
			return fmt.Errorf("texture %q is referenced but not declared", name)
		}
		if _, ok := colornames.Map[tex.Color]; !ok {
			return fmt.Errorf("texture %q has unknown color %q", name, tex.Color)
		}
	}
	if _, ok := colornames.Map[c.ScoreLabel.Color]; !ok {
		return fmt.Errorf("scoreLabel.color %q is not a known color name", c.ScoreLabel.Color)
	}

	return nil
}

// TextureColor 返回纹理填充颜色，未知纹理返回 false
func (c *GameplayConfig) TextureColor(name string) (color.RGBA, bool) {
	tex, ok := c.Textures[name]
	if !ok {
		return color.RGBA{}, false
	}
	rgba, ok := colornames.Map[tex.Color]
	return rgba, ok
}

// ScoreLabelColor 返回分数标签颜色
func (c *GameplayConfig) ScoreLabelColor() color.RGBA {
	if rgba, ok := colornames.Map[c.ScoreLabel.Color]; ok {
		return rgba
	}
	return colornames.White
}

// GapCenterRange 返回缺口中心的取值区间 [−H/2 + gap/2, H/2 + gap/2]
func (c *GameplayConfig) GapCenterRange() (minY, maxY float64) {
	half := c.Screen.Height / 2
	halfGap := c.Pipe.GapHeight / 2
	return -half + halfGap, half + halfGap
}
