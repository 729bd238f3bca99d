// verify_gameplay 无窗口的玩法验证工具
//
// 按脚本时间点模拟点击，以固定步长推进游戏场景，
// 打印状态切换、分数变化和场景重置，用于在没有显示环境时检查一局的流程。
//
// 用法：
//
//	go run ./cmd/verify_gameplay -taps 0,0.3,0.6,0.9 -duration 8 -seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/game"
	"github.com/decker502/pooattack/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/gameplay.yaml", "玩法配置文件路径")
	tapsFlag   = flag.String("taps", "0,0.35,0.7,1.05,1.4,1.75,2.1", "点击时间点（秒，逗号分隔）")
	duration   = flag.Float64("duration", 6, "模拟时长（秒）")
	seed       = flag.Int64("seed", 1, "管道缺口随机种子")
)

// scriptedTaps 按模拟时间触发点击
type scriptedTaps struct {
	times []float64
	now   float64
}

func (s *scriptedTaps) Tapped() bool {
	if len(s.times) == 0 || s.times[0] > s.now+1e-9 {
		return false
	}
	s.times = s.times[1:]
	return true
}

func parseTaps(raw string) ([]float64, error) {
	var times []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tap time %q: %w", part, err)
		}
		times = append(times, v)
	}
	sort.Float64s(times)
	return times, nil
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameplayConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	times, err := parseTaps(*tapsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	input := &scriptedTaps{times: times}

	scene, err := scenes.NewGameScene(game.NewResourceManager(cfg), cfg, input, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建场景失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== verify_gameplay: %d taps, %.1fs, seed=%d ===\n", len(times), *duration, *seed)

	state := scene.Session().State()
	score := scene.Session().Score().Score()
	resets := scene.ResetCount()
	steps := int(*duration / config.FixedDeltaTime)

	for i := 0; i < steps; i++ {
		input.now = float64(i) * config.FixedDeltaTime
		scene.Update(config.FixedDeltaTime)

		session := scene.Session()
		if session.State() != state {
			fmt.Printf("[%6.3fs] state %s -> %s (pipes=%d bullets=%d)\n",
				input.now, state, session.State(),
				scene.CountKind(components.KindPipe), scene.CountKind(components.KindBullet))
			state = session.State()
		}
		if s := session.Score().Score(); s != score {
			fmt.Printf("[%6.3fs] %s\n", input.now, scene.ScoreText())
			score = s
		}
		if scene.ResetCount() != resets {
			fmt.Printf("[%6.3fs] scene reset (epoch=%d)\n", input.now, session.Epoch())
			resets = scene.ResetCount()
		}
	}

	fmt.Printf("=== done: state=%s %s resets=%d entities=%d ===\n",
		scene.Session().State(), scene.ScoreText(), scene.ResetCount(), scene.EntityManager().EntityCount())
}
