package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/decker502/pooattack/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrUnknownTexture is returned when a texture name is not declared in the gameplay config.
var ErrUnknownTexture = errors.New("unknown texture")

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching for textures and font faces,
// ensuring that resources are created only once and reused throughout the game.
//
// Textures are generated from the gameplay config: each texture name maps to a
// fill colour and is rasterised at the size requested by the entity factory.
// The core only needs valid size metadata, so no image files are read.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches are plain maps and are
// only touched from the single game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(cfg)
//	img, err := rm.LoadTexture("patient", 68, 68)
//	if err != nil {
//	    log.Printf("Failed to load texture: %v", err)
//	}
type ResourceManager struct {
	cfg           *config.GameplayConfig
	textureCache  map[string]*ebiten.Image     // Cache for textures: "name@WxH" -> Image
	fontSource    *text.GoTextFaceSource       // Parsed font source, created lazily
	fontFaceCache map[float64]*text.GoTextFace // Cache for font faces: size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - cfg: The gameplay config that declares texture colours.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(cfg *config.GameplayConfig) *ResourceManager {
	return &ResourceManager{
		cfg:           cfg,
		textureCache:  make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadTexture returns the texture with the given name rasterised at width×height.
// If the texture has already been created at that size, the cached version is returned.
//
// Parameters:
//   - name: Texture name as declared under `textures:` in data/gameplay.yaml.
//   - width, height: Pixel size of the image; must be positive.
//
// Returns:
//   - A pointer to the ebiten.Image.
//   - An error wrapping ErrUnknownTexture if the name is not declared,
//     or an error if the size is not positive.
func (rm *ResourceManager) LoadTexture(name string, width, height int) (*ebiten.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d for %q", width, height, name)
	}

	key := fmt.Sprintf("%s@%dx%d", name, width, height)
	if cached, exists := rm.textureCache[key]; exists {
		return cached, nil
	}

	fill, ok := rm.cfg.TextureColor(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTexture, name)
	}

	img := ebiten.NewImage(width, height)
	img.Fill(fill)
	rm.textureCache[key] = img

	log.Printf("[ResourceManager] Created texture %s", key)
	return img, nil
}

// LoadFont returns a text face of the given size backed by the bundled
// PressStart2P arcade font. Faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source: rm.fontSource,
		Size:   size,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// Config returns the gameplay config used by this manager.
func (rm *ResourceManager) Config() *config.GameplayConfig {
	return rm.cfg
}
