package inkwash

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/anthonynsimon/bild/blur"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/inkwash/cache"
)

// DefaultShape is the brush shape every unknown name falls back to.
const DefaultShape = "round"

// shapeAssets maps shape names to their asset file names.
var shapeAssets = map[string]string{
	"round": "brush_round.png",
	"flat":  "brush_flat.png",
}

// fallbackSide is the side length of synthesized fallback masks.
const fallbackSide = 128

// ShapeLibrary owns the named brush opacity masks and serves scaled,
// rotated variants of them. It is populated by Load: each named asset is
// read from the library's filesystem, and any name whose asset is missing
// or invalid is synthesized procedurally, so the required defaults always
// exist.
//
// A ShapeLibrary is safe for concurrent use; Watch may swap the base
// masks from a background goroutine while strokes look shapes up.
type ShapeLibrary struct {
	fsys fs.FS  // nil means no assets, synthesize everything
	dir  string // set by NewShapeLibraryDir, enables Watch

	mu    sync.RWMutex
	bases map[string]*Mask

	variants *cache.Sharded[string, *Mask]
}

// NewShapeLibrary creates a shape library reading assets from fsys.
// Pass nil to skip asset loading entirely and use synthesized shapes.
// Call Load before the first ScaledRotated lookup.
func NewShapeLibrary(fsys fs.FS) *ShapeLibrary {
	return &ShapeLibrary{
		fsys:     fsys,
		bases:    make(map[string]*Mask),
		variants: cache.NewSharded[string, *Mask](0, cache.StringHasher),
	}
}

// Load populates the library. Asset failures are never fatal: each name
// that cannot be loaded is logged and, for the required defaults, replaced
// by a synthesized mask (a soft disc for "round", a soft ellipse for
// "flat"). Load may be called again to re-read changed assets; cached
// scaled/rotated variants are invalidated.
func (l *ShapeLibrary) Load() {
	bases := make(map[string]*Mask, len(shapeAssets))

	if l.fsys != nil {
		for name, file := range shapeAssets {
			m, err := loadShapeAsset(l.fsys, file)
			if err != nil {
				Logger().Warn("brush shape asset unusable, will synthesize",
					"shape", name, "file", file, "error", err)
				continue
			}
			bases[name] = m
		}
	}

	if bases["round"] == nil {
		Logger().Info("synthesizing round brush shape")
		bases["round"] = synthRound(fallbackSide)
	}
	if bases["flat"] == nil {
		Logger().Info("synthesizing flat brush shape")
		bases["flat"] = synthFlat(fallbackSide)
	}

	l.mu.Lock()
	l.bases = bases
	l.mu.Unlock()
	l.variants.Clear()

	Logger().Info("brush shapes loaded", "count", len(bases))
}

// Names returns the names with a valid mask, DefaultShape first.
func (l *ShapeLibrary) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.bases))
	for name, m := range l.bases {
		if name == DefaultShape || m == nil || m.Side() == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if m := l.bases[DefaultShape]; m != nil && m.Side() > 0 {
		names = append([]string{DefaultShape}, names...)
	}
	return names
}

// ScaledRotated returns the named mask resized to size×size and rotated
// about its center by angleDeg degrees (positive counter-clockwise).
// Unknown names fall back to DefaultShape; the result is always exactly
// size×size, all-zero only in the catastrophic case that even the default
// shape is unusable. Results are cached; callers must treat the returned
// mask as read-only.
func (l *ShapeLibrary) ScaledRotated(name string, size int, angleDeg float64) *Mask {
	if size < 1 {
		size = 1
	}

	base := l.base(name)
	if base == nil {
		Logger().Warn("no usable brush shape, returning empty mask", "shape", name)
		return NewMask(size)
	}

	// Angles quantized to 0.1 degree keep the variant cache effective
	// without visible stepping.
	tenths := int(math.Round(angleDeg*10)) % 3600
	if tenths < 0 {
		tenths += 3600
	}
	key := fmt.Sprintf("%s/%d/%d", name, size, tenths)

	return l.variants.GetOrCreate(key, func() *Mask {
		return base.scaled(size).rotated(float64(tenths) / 10)
	})
}

// base resolves a shape name to its base mask, falling back to
// DefaultShape. Returns nil only if the fallback itself is missing.
func (l *ShapeLibrary) base(name string) *Mask {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if m := l.bases[name]; m != nil && m.Side() > 0 {
		return m
	}
	if name != DefaultShape {
		Logger().Debug("unknown brush shape, falling back", "shape", name, "fallback", DefaultShape)
	}
	if m := l.bases[DefaultShape]; m != nil && m.Side() > 0 {
		return m
	}
	return nil
}

// loadShapeAsset reads and decodes one brush asset into a square mask.
// Sources with an alpha channel use it directly as opacity; fully opaque
// sources are interpreted as ink on paper, dark meaning opaque.
func loadShapeAsset(fsys fs.FS, file string) (*Mask, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetInvalid, err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrAssetInvalid, file, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrAssetInvalid, file)
	}

	gray := opacityGray(img)

	if w != h {
		Logger().Warn("brush shape is not square, resampling", "file", file, "width", w, "height", h)
		side := min(w, h)
		sq := image.NewGray(image.Rect(0, 0, side, side))
		xdraw.CatmullRom.Scale(sq, sq.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)
		gray = sq
	}

	return maskFromGray(gray), nil
}

// opacityGray extracts a grayscale opacity image from a decoded asset:
// the alpha channel when the image has transparency, otherwise inverted
// luminance (dark strokes on light paper become opaque deposit).
func opacityGray(img image.Image) *image.Gray {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	hasAlpha := false
	for i := 3; i < len(nrgba.Pix); i += 4 {
		if nrgba.Pix[i] != 255 {
			hasAlpha = true
			break
		}
	}

	gray := image.NewGray(nrgba.Bounds())
	for i, j := 0, 0; i < len(nrgba.Pix); i, j = i+4, j+1 {
		if hasAlpha {
			gray.Pix[j] = nrgba.Pix[i+3]
		} else {
			lum := (299*int(nrgba.Pix[i]) + 587*int(nrgba.Pix[i+1]) + 114*int(nrgba.Pix[i+2])) / 1000
			gray.Pix[j] = uint8(255 - lum)
		}
	}
	return gray
}

// synthRound synthesizes the default round brush: a soft-edged disc with
// a little grain so flat fills do not look mechanical.
func synthRound(side int) *Mask {
	gray := image.NewGray(image.Rect(0, 0, side, side))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}

	center := float64(side) / 2
	radius := float64(side) * 0.4
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy <= radius*radius {
				gray.Pix[y*side+x] = 50
			}
		}
	}

	m := blurredInverted(gray)
	for i, v := range m.data {
		m.data[i] = float32(clampF(float64(v)+rand.Float64()*0.05, 0, 1))
	}
	return m
}

// synthFlat synthesizes the flat brush: a soft horizontal ellipse.
func synthFlat(side int) *Mask {
	gray := image.NewGray(image.Rect(0, 0, side, side))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}

	center := float64(side) / 2
	ax := float64(side) * 0.45
	ay := float64(side) * 0.15
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx := (float64(x) - center) / ax
			dy := (float64(y) - center) / ay
			if dx*dx+dy*dy <= 1 {
				gray.Pix[y*side+x] = 50
			}
		}
	}

	return blurredInverted(gray)
}

// blurredInverted softens a synthetic ink-on-paper drawing with a Gaussian
// blur and inverts it into an opacity mask.
func blurredInverted(gray *image.Gray) *Mask {
	soft := blur.Gaussian(gray, 4)

	side := gray.Bounds().Dx()
	m := NewMask(side)
	for i := range m.data {
		// Gaussian output is RGBA with equal channels for gray input.
		m.data[i] = 1 - float32(soft.Pix[i*4])/255
	}
	return m
}
