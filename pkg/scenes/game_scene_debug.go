package scenes

import (
	"fmt"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawDebugOverlay 绘制碰撞盒与状态信息
func (s *GameScene) drawDebugOverlay(screen *ebiten.Image) {
	s.renderSystem.DrawHitboxes(screen)

	msg := fmt.Sprintf("state: %s\nepoch: %d\nscore: %d\npipes: %d bullets: %d\nentities: %d\nTPS: %0.1f",
		s.session.State(),
		s.session.Epoch(),
		s.session.Score().Score(),
		s.CountKind(components.KindPipe),
		s.CountKind(components.KindBullet),
		s.entityManager.EntityCount(),
		ebiten.ActualTPS(),
	)
	ebitenutil.DebugPrint(screen, msg)
}
