package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/decker502/pooattack/pkg/entities"
	"github.com/decker502/pooattack/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

const testDT = 1.0 / 60.0

// fakeTapSource 可编程的点击输入
type fakeTapSource struct {
	pending int
}

func (f *fakeTapSource) Tap() { f.pending++ }

func (f *fakeTapSource) Tapped() bool {
	if f.pending == 0 {
		return false
	}
	f.pending--
	return true
}

// mockLoader 返回指定尺寸的空白纹理
type mockLoader struct{}

func (mockLoader) LoadTexture(name string, width, height int) (*ebiten.Image, error) {
	return ebiten.NewImage(width, height), nil
}

// fixedEpoch 固定纪元来源
type fixedEpoch struct{ epoch uint64 }

func (f *fixedEpoch) Epoch() uint64 { return f.epoch }

// testWorld 按场景的帧顺序组装所有玩法系统
type testWorld struct {
	t         *testing.T
	cfg       *config.GameplayConfig
	em        *ecs.EntityManager
	session   *game.GameSession
	input     *fakeTapSource
	actions   *ActionSystem
	hierarchy *HierarchySystem
	physics   *PhysicsSystem
	collision *CollisionSystem
	bounds    *BoundsSystem
	spawner   *SpawnSystem
	control   *PlayerControlSystem

	bird   ecs.EntityID
	ground ecs.EntityID
	node   ecs.EntityID
	resets int
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	w := &testWorld{
		t:     t,
		cfg:   config.DefaultGameplayConfig(),
		em:    ecs.NewEntityManager(),
		input: &fakeTapSource{},
	}
	w.session = game.NewGameSession(nil)
	w.actions = NewActionSystem(w.em, w.session)
	w.hierarchy = NewHierarchySystem(w.em)
	w.physics = NewPhysicsSystem(w.em, w.cfg.Physics.Gravity)
	w.spawner = NewSpawnSystem(w.em, mockLoader{}, w.cfg, w.session, w.actions, rand.New(rand.NewSource(7)))
	w.collision = NewCollisionSystem(w.em, w.session, w.actions, w.spawner, w.physics, w.cfg, w.reset)
	w.bounds = NewBoundsSystem(w.em, w.cfg.Screen.Width)
	w.control = NewPlayerControlSystem(w.em, mockLoader{}, w.cfg, w.session, w.spawner, w.actions, w.physics, w.input, w.reset)
	w.build()
	return w
}

// build 创建场景骨架
func (w *testWorld) build() {
	w.t.Helper()

	var err error
	w.node = entities.NewSceneNodeEntity(w.em)
	if w.bird, err = entities.NewBirdEntity(w.em, mockLoader{}, w.cfg); err != nil {
		w.t.Fatalf("NewBirdEntity() error: %v", err)
	}
	if w.ground, err = entities.NewGroundEntity(w.em, mockLoader{}, w.cfg); err != nil {
		w.t.Fatalf("NewGroundEntity() error: %v", err)
	}
}

// reset 完整重置
func (w *testWorld) reset() {
	w.resets++
	w.em.Clear()
	w.physics.Reset()
	w.session.Reset()
	w.build()
}

// tick 按场景帧顺序推进一帧
func (w *testWorld) tick() {
	w.control.Update(testDT)
	w.actions.Update(testDT)
	w.hierarchy.Update(testDT)
	w.physics.Update(testDT)
	w.collision.Update(testDT)
	w.bounds.Update(testDT)
	w.em.RemoveMarkedEntities()
}

// run 推进指定秒数
func (w *testWorld) run(seconds float64) {
	for i := 0; i < int(seconds*60+0.5); i++ {
		w.tick()
	}
}

// tap 注入一次点击并推进一帧
func (w *testWorld) tap() {
	w.input.Tap()
	w.tick()
}

// count 统计指定类别的存活实体
func (w *testWorld) count(kind components.EntityKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](w.em) {
		k, _ := ecs.GetComponent[*components.KindComponent](w.em, id)
		if k.Kind == kind && w.em.IsAlive(id) {
			n++
		}
	}
	return n
}

// entitiesOf 返回指定类别的存活实体
func (w *testWorld) entitiesOf(kind components.EntityKind) []ecs.EntityID {
	var ids []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](w.em) {
		k, _ := ecs.GetComponent[*components.KindComponent](w.em, id)
		if k.Kind == kind && w.em.IsAlive(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// newBox 创建一个只有位置、碰撞盒和刚体的测试实体
func newBox(em *ecs.EntityManager, kind components.EntityKind, x, y, w, h float64, dynamic bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w, Height: h})
	ecs.AddComponent(em, id, &components.KindComponent{Kind: kind})

	body := &components.PhysicsBodyComponent{
		Kind:         kind,
		CategoryMask: kind.Category(),
		Dynamic:      dynamic,
		Mass:         1,
	}
	switch kind {
	case components.KindBird:
		body.ContactTestMask = components.CategoryPipe | components.CategoryGround
		body.CollisionMask = components.CategoryGround
	case components.KindGround, components.KindPipe:
		body.ContactTestMask = components.CategoryBird
	case components.KindBullet:
		body.ContactTestMask = components.CategoryPipe
	}
	ecs.AddComponent(em, id, body)
	return id
}
