package entities

import (
	"fmt"

	"github.com/decker502/pooattack/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockResourceLoader 实现 ResourceLoader 接口，记录请求的纹理
type mockResourceLoader struct {
	missing  map[string]bool // 这些纹理名返回错误
	requests []string
}

// newMockResourceLoader 创建一个不依赖配置颜色的 mock 资源加载器
func newMockResourceLoader() *mockResourceLoader {
	return &mockResourceLoader{missing: make(map[string]bool)}
}

func (m *mockResourceLoader) LoadTexture(name string, width, height int) (*ebiten.Image, error) {
	m.requests = append(m.requests, fmt.Sprintf("%s@%dx%d", name, width, height))
	if m.missing[name] {
		return nil, fmt.Errorf("no such texture: %s", name)
	}
	return ebiten.NewImage(width, height), nil
}

// testConfig 返回默认玩法配置
func testConfig() *config.GameplayConfig {
	return config.DefaultGameplayConfig()
}
