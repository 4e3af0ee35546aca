package internal

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
	"github.com/veandco/go-sdl2/sdl"
)

// Enough for two screens of labels, values and sublabels.
const defaultMaxCacheSize = 256

// Texture is a cached texture with its size.
type Texture struct {
	*sdl.Texture
	W, H int32
}

type textKey struct {
	font  layout.Font
	color color.NRGBA
	text  string
}

// TextureCache keeps rendered text textures in LRU order and the icon
// textures for the whole run.
type TextureCache struct {
	textures map[textKey]*Texture
	order    []textKey // tracks insertion order for LRU eviction
	maxSize  int

	icons map[constants.IconID]*Texture
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[textKey]*Texture),
		order:    make([]textKey, 0, maxSize),
		maxSize:  maxSize,
		icons:    make(map[constants.IconID]*Texture),
	}
}

// Text returns the texture of text in font and c, rendering it on a miss.
func (c *TextureCache) Text(r *sdl.Renderer, fonts *Fonts, font layout.Font, col color.NRGBA, text string) (*Texture, error) {
	key := textKey{font: font, color: col, text: text}
	if t, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return t, nil
	}

	face := fonts.Font(font)
	if face == nil {
		return nil, fmt.Errorf("font %d not loaded", font)
	}
	surface, err := face.RenderUTF8Blended(text, SDLColor(col))
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", text, err)
	}
	defer surface.Free()

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("creating text texture: %w", err)
	}

	t := &Texture{Texture: tex, W: surface.W, H: surface.H}
	c.set(key, t)
	return t, nil
}

func (c *TextureCache) set(key textKey, t *Texture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key textKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, ok := c.textures[oldest]; ok {
		t.Destroy()
		delete(c.textures, oldest)
	}
}

// FlushText drops every text texture. Fonts changing size makes them stale.
func (c *TextureCache) FlushText() {
	for _, t := range c.textures {
		t.Destroy()
	}
	c.textures = make(map[textKey]*Texture)
	c.order = c.order[:0]
}

// LoadIcons uploads rasterised icons as textures, replacing earlier ones.
func (c *TextureCache) LoadIcons(r *sdl.Renderer, imgs map[constants.IconID]*image.RGBA) {
	for id, img := range imgs {
		t, err := iconTexture(r, img)
		if err != nil {
			GetInternalLogger().Warn("Failed to upload icon", "icon", id.Name(), "error", err)
			continue
		}
		if old, ok := c.icons[id]; ok {
			old.Destroy()
		}
		c.icons[id] = t
	}
}

// Icon returns the texture of id, or nil when it was never loaded.
func (c *TextureCache) Icon(id constants.IconID) *Texture {
	return c.icons[id]
}

func iconTexture(r *sdl.Renderer, img *image.RGBA) (*Texture, error) {
	b := img.Bounds()
	w, h := int32(b.Dx()), int32(b.Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := range int(h) {
		copy(pixels[y*pitch:y*pitch+int(w)*4], img.Pix[y*img.Stride:])
	}

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, err
	}
	return &Texture{Texture: tex, W: w, H: h}, nil
}

func (c *TextureCache) Destroy() {
	c.FlushText()
	for _, t := range c.icons {
		t.Destroy()
	}
	c.icons = make(map[constants.IconID]*Texture)
}
