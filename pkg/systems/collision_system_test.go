package systems

import (
	"testing"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/decker502/pooattack/pkg/game"
)

// startRunning 点击一次进入 Running
func startRunning(t *testing.T, w *testWorld) {
	t.Helper()
	w.tap()
	if w.session.State() != game.StateRunning {
		t.Fatalf("expected Running after first tap, got %s", w.session.State())
	}
}

func TestBulletPipeScoresAndRemovesBothOnce(t *testing.T) {
	w := newTestWorld(t)
	startRunning(t, w)

	pipe := newBox(w.em, components.KindPipe, 500, 500, 104, 640, false)
	bullet := newBox(w.em, components.KindBullet, 500, 500, 10, 20, true)
	contact := Contact{A: bullet, B: pipe, KindA: components.KindBullet, KindB: components.KindPipe}

	w.collision.Resolve(contact)
	if got := w.session.Score().Score(); got != 10 {
		t.Fatalf("score after hit: got %d, want 10", got)
	}
	if w.em.IsAlive(pipe) || w.em.IsAlive(bullet) {
		t.Error("both bullet and pipe should be removed")
	}

	// 同一接触重复投递（两种顺序）不重复计分
	w.collision.Resolve(contact)
	w.collision.Resolve(Contact{A: pipe, B: bullet, KindA: components.KindPipe, KindB: components.KindBullet})
	if got := w.session.Score().Score(); got != 10 {
		t.Errorf("redelivered contact changed score to %d", got)
	}
}

func TestBulletPipeSequenceScoresTenEach(t *testing.T) {
	w := newTestWorld(t)
	startRunning(t, w)

	const hits = 7
	for i := 0; i < hits; i++ {
		pipe := newBox(w.em, components.KindPipe, 500, 500, 104, 640, false)
		bullet := newBox(w.em, components.KindBullet, 500, 500, 10, 20, true)
		c := Contact{A: pipe, B: bullet, KindA: components.KindPipe, KindB: components.KindBullet}
		w.collision.Resolve(c)
		w.collision.Resolve(c)
	}

	if got := w.session.Score().Score(); got != hits*10 {
		t.Errorf("score: got %d, want %d", got, hits*10)
	}
}

func TestBirdContactEndsGameOnce(t *testing.T) {
	tests := []struct {
		name   string
		hazard components.EntityKind
	}{
		{"bird hits pipe", components.KindPipe},
		{"bird hits ground", components.KindGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			startRunning(t, w)
			w.session.Score().AddPoints(20)

			hazard := newBox(w.em, tt.hazard, 0, 0, 10, 10, false)
			contact := Contact{A: hazard, B: w.bird, KindA: tt.hazard, KindB: components.KindBird}

			w.collision.Resolve(contact)
			if w.session.State() != game.StateOver {
				t.Fatalf("expected Over, got %s", w.session.State())
			}
			if w.session.IsSpawning() {
				t.Error("spawning should stop on game over")
			}

			body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, w.bird)
			vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.bird)
			if body.Dynamic || vel.VY != 0 {
				t.Errorf("bird should be frozen, dynamic=%v vy=%.2f", body.Dynamic, vel.VY)
			}

			// 再次接触：状态、分数、重置安排都不变
			w.collision.Resolve(contact)
			w.collision.Resolve(Contact{A: w.bird, B: w.ground, KindA: components.KindBird, KindB: components.KindGround})

			if got := w.session.Score().Score(); got != 20 {
				t.Errorf("score changed on repeated contact: %d", got)
			}
			comp, _ := ecs.GetComponent[*components.ActionComponent](w.em, w.node)
			if len(comp.Runs) != 1 || comp.Runs[0].Key != "reset" {
				t.Errorf("expected exactly one scheduled reset, got %d runs", len(comp.Runs))
			}
		})
	}
}

func TestGameOverFreezesScriptedMotion(t *testing.T) {
	w := newTestWorld(t)
	startRunning(t, w)
	w.run(0.5)

	pairs := ecs.GetEntitiesWith1[*components.PipePairComponent](w.em)
	if len(pairs) == 0 {
		t.Fatal("expected a pipe pair in flight")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, pairs[0])
	frozenX := pos.X

	w.collision.GameOver(w.bird)
	w.run(0.5)

	if pos.X != frozenX {
		t.Errorf("pipe pair kept moving after game over: %.2f -> %.2f", frozenX, pos.X)
	}
	if got := len(ecs.GetEntitiesWith1[*components.PipePairComponent](w.em)); got != len(pairs) {
		t.Errorf("spawning continued after game over: %d -> %d pairs", len(pairs), got)
	}
}

func TestResetAfterDelay(t *testing.T) {
	w := newTestWorld(t)
	startRunning(t, w)
	w.run(0.5)
	w.tap() // 发射一颗子弹
	w.session.Score().AddPoints(30)

	w.collision.GameOver(w.bird)

	w.run(0.9)
	if w.resets != 0 {
		t.Fatal("reset fired before the delay elapsed")
	}

	w.run(0.2)
	if w.resets != 1 {
		t.Fatalf("expected exactly one reset, got %d", w.resets)
	}
	if w.session.State() != game.StateNotStarted {
		t.Errorf("state after reset: got %s, want NotStarted", w.session.State())
	}
	if got := w.session.Score().Score(); got != 0 {
		t.Errorf("score after reset: got %d, want 0", got)
	}
	if n := w.count(components.KindPipe); n != 0 {
		t.Errorf("pipes after reset: got %d, want 0", n)
	}
	if n := w.count(components.KindBullet); n != 0 {
		t.Errorf("bullets after reset: got %d, want 0", n)
	}

	w.run(2.0)
	if w.resets != 1 {
		t.Errorf("reset fired again: %d", w.resets)
	}
}

func TestTapDuringOverResetsImmediately(t *testing.T) {
	w := newTestWorld(t)
	startRunning(t, w)
	w.collision.GameOver(w.bird)

	w.tap()
	if w.resets != 1 {
		t.Fatalf("tap in Over should reset immediately, resets=%d", w.resets)
	}
	if w.session.State() != game.StateNotStarted {
		t.Errorf("state after tap reset: %s", w.session.State())
	}

	// 原本安排的延时重置已经作废
	w.run(2.0)
	if w.resets != 1 {
		t.Errorf("pending delayed reset fired after manual reset, resets=%d", w.resets)
	}
}

func TestUnhandledPairsAreIgnored(t *testing.T) {
	w := newTestWorld(t)
	startRunning(t, w)

	bullet := newBox(w.em, components.KindBullet, 0, 0, 10, 10, true)
	w.collision.Resolve(Contact{A: bullet, B: w.ground, KindA: components.KindBullet, KindB: components.KindGround})
	w.collision.Resolve(Contact{A: w.bird, B: bullet, KindA: components.KindBird, KindB: components.KindBullet})

	if w.session.State() != game.StateRunning {
		t.Errorf("state changed on unhandled pair: %s", w.session.State())
	}
	if !w.em.IsAlive(bullet) {
		t.Error("bullet removed on unhandled pair")
	}
}
