package components

import "testing"

func TestNewKindPairIsUnordered(t *testing.T) {
	tests := []struct {
		a, b EntityKind
	}{
		{KindBullet, KindPipe},
		{KindGround, KindBird},
		{KindPipe, KindPipe},
	}
	for _, tt := range tests {
		if NewKindPair(tt.a, tt.b) != NewKindPair(tt.b, tt.a) {
			t.Errorf("NewKindPair(%s, %s) should equal NewKindPair(%s, %s)", tt.a, tt.b, tt.b, tt.a)
		}
		p := NewKindPair(tt.a, tt.b)
		if p.Low > p.High {
			t.Errorf("NewKindPair(%s, %s): Low %s > High %s", tt.a, tt.b, p.Low, p.High)
		}
	}
}

func TestKindCategory(t *testing.T) {
	tests := []struct {
		kind EntityKind
		want uint32
	}{
		{KindNone, CategoryNone},
		{KindBird, CategoryBird},
		{KindPipe, CategoryPipe},
		{KindGround, CategoryGround},
		{KindBullet, CategoryBullet},
	}
	for _, tt := range tests {
		if got := tt.kind.Category(); got != tt.want {
			t.Errorf("%s.Category(): got %b, want %b", tt.kind, got, tt.want)
		}
	}
}

func TestPhysicsBodyMasks(t *testing.T) {
	bird := &PhysicsBodyComponent{
		Kind:            KindBird,
		CategoryMask:    CategoryBird,
		ContactTestMask: CategoryPipe | CategoryGround,
		CollisionMask:   CategoryGround,
	}
	pipe := &PhysicsBodyComponent{Kind: KindPipe, CategoryMask: CategoryPipe, ContactTestMask: CategoryBird}
	ground := &PhysicsBodyComponent{Kind: KindGround, CategoryMask: CategoryGround, ContactTestMask: CategoryBird}
	bullet := &PhysicsBodyComponent{Kind: KindBullet, CategoryMask: CategoryBullet, ContactTestMask: CategoryPipe}

	tests := []struct {
		name        string
		a, b        *PhysicsBodyComponent
		wantContact bool
	}{
		{"bird-pipe", bird, pipe, true},
		{"bird-ground", bird, ground, true},
		{"bullet-pipe", bullet, pipe, true},
		{"pipe-bullet reversed", pipe, bullet, true},
		{"bullet-bird", bullet, bird, false},
		{"bullet-ground", bullet, ground, false},
		{"pipe-ground", pipe, ground, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.WantsContact(tt.b); got != tt.wantContact {
				t.Errorf("WantsContact: got %v, want %v", got, tt.wantContact)
			}
		})
	}

	if !bird.CollidesWith(ground) {
		t.Error("bird should be blocked by ground")
	}
	if bird.CollidesWith(pipe) {
		t.Error("bird should pass through pipes physically")
	}
}
