package entities

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingTexture 资源加载器无法提供实体需要的纹理
var ErrMissingTexture = errors.New("missing texture")

// ResourceLoader 定义实体工厂需要的资源加载接口
// game.ResourceManager 实现了该接口；测试中使用 mock 避免依赖配置
type ResourceLoader interface {
	LoadTexture(name string, width, height int) (*ebiten.Image, error)
}

// checkDeps 检查工厂的公共依赖
func checkDeps(em *ecs.EntityManager, rl ResourceLoader, cfg *config.GameplayConfig) error {
	if em == nil {
		return fmt.Errorf("entity manager cannot be nil")
	}
	if rl == nil {
		return fmt.Errorf("resource loader cannot be nil")
	}
	if cfg == nil {
		return fmt.Errorf("gameplay config cannot be nil")
	}
	return nil
}

// newSprite 加载纹理并构造精灵组件
func newSprite(rl ResourceLoader, texture string, width, height, z float64) (*components.SpriteComponent, error) {
	img, err := rl.LoadTexture(texture, int(width), int(height))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrMissingTexture, texture, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w %q", ErrMissingTexture, texture)
	}
	return &components.SpriteComponent{
		Image:  img,
		Width:  width,
		Height: height,
		Z:      z,
	}, nil
}

// SampleGapCenterY 在 [−H/2 + gap/2, H/2 + gap/2] 内均匀采样缺口中心
func SampleGapCenterY(rng *rand.Rand, cfg *config.GameplayConfig) float64 {
	minY, maxY := cfg.GapCenterRange()
	return minY + rng.Float64()*(maxY-minY)
}
