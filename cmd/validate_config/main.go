// validate_config 检查玩法配置文件
//
// 严格解析（拒绝未知字段），再执行 GameplayConfig.Validate，
// 通过后打印关键参数和推导出的缺口中心区间。
//
// 用法：
//
//	go run ./cmd/validate_config [-config data/gameplay.yaml]
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/decker502/pooattack/pkg/config"
	"gopkg.in/yaml.v3"
)

var configPath = flag.String("config", "data/gameplay.yaml", "玩法配置文件路径")

// decodeStrict 严格解析：YAML 中出现结构体未声明的字段即报错
func decodeStrict(data []byte) (*config.GameplayConfig, error) {
	cfg := config.DefaultGameplayConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// 空文件返回 io.EOF，视为全部使用默认值
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("YAML 解析失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	cfg, err := decodeStrict(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	minY, maxY := cfg.GapCenterRange()
	fmt.Printf("✅ %s 格式正确\n", *configPath)
	fmt.Printf("✅ 屏幕: %.0fx%.0f, 重力: %.1f\n", cfg.Screen.Width, cfg.Screen.Height, cfg.Physics.Gravity)
	fmt.Printf("✅ 缺口中心区间: [%.1f, %.1f]\n", minY, maxY)
	fmt.Printf("✅ 纹理数量: %d\n", len(cfg.Textures))
}
