package labyrinth

import (
	"image"
	"log"
	"math"
	"reflect"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface draws tiles onto an ebiten image. Atlas images that are not
// already *ebiten.Image are uploaded once and cached by identity, so they
// must be comparable: pass pointers such as *image.RGBA. Images that cannot
// be used as a cache key are skipped with a warning.
type EbitenSurface struct {
	Target *ebiten.Image

	op     ebiten.DrawImageOptions
	upload map[Image]*ebiten.Image
	warned bool
}

// NewEbitenSurface creates a surface drawing onto target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Target: target}
}

// DrawTile implements Surface. The source region is stretched over dst with
// nearest filtering so integer scales stay pixel exact. Parts of src outside
// the atlas page are not drawn; the rest keeps its place inside dst.
func (s *EbitenSurface) DrawTile(img Image, src image.Rectangle, dst Rect) {
	if s.Target == nil || src.Empty() {
		return
	}
	page := s.page(img)
	if page == nil {
		return
	}
	sub := page.SubImage(src).(*ebiten.Image)
	if sub.Bounds().Empty() {
		return
	}

	s.op.GeoM = tileGeoM(src, sub.Bounds(), dst)
	s.op.Filter = ebiten.FilterNearest
	s.Target.DrawImage(sub, &s.op)
}

// tileGeoM maps the clipped region sub of src onto the part of dst that
// src would have covered.
func tileGeoM(src, sub image.Rectangle, dst Rect) ebiten.GeoM {
	sx := dst.Width / float64(src.Dx())
	sy := dst.Height / float64(src.Dy())
	var m ebiten.GeoM
	m.Scale(sx, sy)
	m.Translate(
		dst.X+float64(sub.Min.X-src.Min.X)*sx,
		dst.Y+float64(sub.Min.Y-src.Min.Y)*sy,
	)
	return m
}

func (s *EbitenSurface) page(img Image) *ebiten.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	src, ok := img.(image.Image)
	if !ok {
		return nil
	}
	if !reflect.ValueOf(img).Comparable() {
		if !s.warned {
			s.warned = true
			log.Printf("labyrinth: atlas image of type %T is not comparable, skipping; pass a pointer", img)
		}
		return nil
	}
	if cached, ok := s.upload[img]; ok {
		return cached
	}
	if s.upload == nil {
		s.upload = make(map[Image]*ebiten.Image)
	}
	page := ebiten.NewImageFromImage(src)
	s.upload[img] = page
	return page
}

// GlyphFunc picks the terminal cell used to show a tile frame.
type GlyphFunc func(img Image, src image.Rectangle) (rune, tcell.Style)

// TerminalSurface renders tiles into a tcell screen. Each terminal cell
// stands for CellWidth x CellHeight screen pixels; a tile fills every cell
// its destination rectangle covers with the glyph returned by Glyph.
type TerminalSurface struct {
	Screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	Glyph      GlyphFunc
}

// NewTerminalSurface creates a surface on screen with square cells of
// cellSize pixels and the default glyph.
func NewTerminalSurface(screen tcell.Screen, cellSize float64) *TerminalSurface {
	return &TerminalSurface{
		Screen:     screen,
		CellWidth:  cellSize,
		CellHeight: cellSize,
		Glyph:      DefaultGlyph,
	}
}

// terminalPalette is cycled by DefaultGlyph.
var terminalPalette = [...]struct {
	r rune
	c tcell.Color
}{
	{'.', tcell.ColorGreen},
	{'#', tcell.ColorGray},
	{'~', tcell.ColorBlue},
	{'*', tcell.ColorYellow},
	{'%', tcell.ColorOlive},
	{'^', tcell.ColorMaroon},
	{'+', tcell.ColorTeal},
	{'@', tcell.ColorWhite},
}

// DefaultGlyph derives a glyph from the atlas position of the frame, so
// each distinct frame gets a stable rune and color.
func DefaultGlyph(_ Image, src image.Rectangle) (rune, tcell.Style) {
	h := src.Min.X*31 + src.Min.Y*17
	if h < 0 {
		h = -h
	}
	p := terminalPalette[h%len(terminalPalette)]
	return p.r, tcell.StyleDefault.Foreground(p.c)
}

// Size returns the screen size in surface pixels, suitable for
// Drawer.SetWindowSize.
func (s *TerminalSurface) Size() Vec2i {
	if s.Screen == nil {
		return Vec2i{}
	}
	w, h := s.Screen.Size()
	return Vec2i{int(float64(w) * s.CellWidth), int(float64(h) * s.CellHeight)}
}

// DrawTile implements Surface.
func (s *TerminalSurface) DrawTile(img Image, src image.Rectangle, dst Rect) {
	if s.Screen == nil || s.CellWidth <= 0 || s.CellHeight <= 0 {
		return
	}
	glyph := s.Glyph
	if glyph == nil {
		glyph = DefaultGlyph
	}
	r, style := glyph(img, src)

	w, h := s.Screen.Size()
	x0 := max(int(math.Floor(dst.X/s.CellWidth)), 0)
	y0 := max(int(math.Floor(dst.Y/s.CellHeight)), 0)
	x1 := min(int(math.Ceil((dst.X+dst.Width)/s.CellWidth)), w)
	y1 := min(int(math.Ceil((dst.Y+dst.Height)/s.CellHeight)), h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Screen.SetContent(x, y, r, nil, style)
		}
	}
}
