package internal

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// TextureCache keeps rendered text and icon textures so the frame loop does not re-rasterize
// unchanged key labels.
type TextureCache struct {
	mu       sync.Mutex
	textures map[string]cachedTexture
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]cachedTexture)}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.textures[key].texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	_, _, w, h, _ := texture.Query()

	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.textures[key]; ok && old.texture != texture {
		old.texture.Destroy()
	}
	c.textures[key] = cachedTexture{texture: texture, w: w, h: h}
}

// Text returns the texture for text rendered in font and color, rendering it on a miss.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32) {
	key := fmt.Sprintf("text_%p_%s_%d_%d_%d", font, text, color.R, color.G, color.B)

	c.mu.Lock()
	cached, ok := c.textures[key]
	c.mu.Unlock()
	if ok {
		return cached.texture, cached.w, cached.h
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Debug("Failed to create text texture", "text", text, "error", err)
		return nil, 0, 0
	}

	c.Set(key, texture)
	return texture, surface.W, surface.H
}

func (c *TextureCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, cached := range c.textures {
		cached.texture.Destroy()
		delete(c.textures, key)
	}
}
