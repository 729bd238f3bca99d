package systems

import (
	"testing"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
)

func TestPhysicsGravity(t *testing.T) {
	tests := []struct {
		name     string
		dynamic  bool
		gravity  bool
		wantFall bool
	}{
		{"dynamic with gravity falls", true, true, true},
		{"dynamic without gravity hovers", true, false, false},
		{"static never moves", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ps := NewPhysicsSystem(em, -750)
			id := newBox(em, components.KindBird, 100, 600, 68, 68, tt.dynamic)
			body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
			body.AffectedByGravity = tt.gravity

			for i := 0; i < 30; i++ {
				ps.Update(testDT)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if fell := pos.Y < 600; fell != tt.wantFall {
				t.Errorf("fell = %v, want %v (y=%.2f)", fell, tt.wantFall, pos.Y)
			}
		})
	}
}

func TestApplyImpulse(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, -750)
	bird := newBox(em, components.KindBird, 0, 0, 10, 10, true)
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, bird)
	body.Mass = 0.1

	ps.ApplyImpulse(bird, 0, 52)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, bird)
	if vel.VY < 519.999 || vel.VY > 520.001 {
		t.Errorf("VY after impulse: got %.3f, want 520", vel.VY)
	}

	static := newBox(em, components.KindGround, 0, 0, 10, 10, false)
	ps.ApplyImpulse(static, 0, 52)
	svel, _ := ecs.GetComponent[*components.VelocityComponent](em, static)
	if svel.VY != 0 {
		t.Errorf("static body should ignore impulses, got VY=%.2f", svel.VY)
	}
}

func TestContactBeginReportedOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, 0)
	bullet := newBox(em, components.KindBullet, 100, 100, 10, 20, true)
	pipe := newBox(em, components.KindPipe, 105, 100, 104, 640, false)

	ps.Update(testDT)
	if got := len(ps.Contacts()); got != 1 {
		t.Fatalf("first overlap: got %d contacts, want 1", got)
	}
	c := ps.Contacts()[0]
	if components.NewKindPair(c.KindA, c.KindB) != components.NewKindPair(components.KindBullet, components.KindPipe) {
		t.Errorf("unexpected contact kinds %s/%s", c.KindA, c.KindB)
	}

	ps.Update(testDT)
	if got := len(ps.Contacts()); got != 0 {
		t.Errorf("continued overlap should not report again, got %d", got)
	}

	// 分离后再次重叠重新报告
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, bullet)
	pos.X = 1000
	ps.Update(testDT)
	pos.X = 100
	ps.Update(testDT)
	if got := len(ps.Contacts()); got != 1 {
		t.Errorf("overlap after separation: got %d contacts, want 1", got)
	}
	_ = pipe
}

func TestContactMasksFilterPairs(t *testing.T) {
	tests := []struct {
		name  string
		a, b  components.EntityKind
		wants bool
	}{
		{"bird-pipe", components.KindBird, components.KindPipe, true},
		{"bird-ground", components.KindBird, components.KindGround, true},
		{"bullet-pipe", components.KindBullet, components.KindPipe, true},
		{"bullet-ground", components.KindBullet, components.KindGround, false},
		{"bird-bullet", components.KindBird, components.KindBullet, false},
		{"pipe-ground", components.KindPipe, components.KindGround, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ps := NewPhysicsSystem(em, 0)
			newBox(em, tt.a, 50, 50, 20, 20, false)
			newBox(em, tt.b, 55, 55, 20, 20, false)

			ps.Update(testDT)
			if got := len(ps.Contacts()) == 1; got != tt.wants {
				t.Errorf("contact reported = %v, want %v", got, tt.wants)
			}
		})
	}
}

func TestBirdLandsOnGround(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, -750)
	ground := newBox(em, components.KindGround, 375, 60, 750, 120, false)
	bird := newBox(em, components.KindBird, 375, 200, 68, 68, true)
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, bird)
	body.AffectedByGravity = true

	contacts := 0
	for i := 0; i < 120; i++ {
		ps.Update(testDT)
		contacts += len(ps.Contacts())
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, bird)
	wantY := 120.0 + 34
	if pos.Y < wantY-1 || pos.Y > wantY+1 {
		t.Errorf("bird should rest on the ground at y=%.0f, got %.2f", wantY, pos.Y)
	}
	if contacts == 0 {
		t.Error("landing should report a bird-ground contact")
	}
	_ = ground
}

func TestPhysicsResetClearsActivePairs(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, 0)
	newBox(em, components.KindBullet, 100, 100, 10, 20, true)
	newBox(em, components.KindPipe, 100, 100, 104, 640, false)

	ps.Update(testDT)
	ps.Reset()
	if len(ps.Contacts()) != 0 {
		t.Error("Reset should clear the contact buffer")
	}

	ps.Update(testDT)
	if len(ps.Contacts()) != 1 {
		t.Error("overlap should be reported again after Reset")
	}
}
