// Package fontbook keeps font families by name and resolves them to faces.
//
// The default family is built from the embedded Go fonts, so resolution
// always has something to fall back to. Additional families are parsed from
// .ttf/.otf data; their family and subfamily names come from the font's name
// table, and the subfamily decides the weight slot.
package fontbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// DefaultFamily is the family used when none is requested or the requested
// one is unknown.
const DefaultFamily = "Go"

// ErrAlreadyLoaded is returned when a family already has a face for the weight.
var ErrAlreadyLoaded = errors.New("font already loaded")

type face struct {
	font   *opentype.Font
	italic bool
}

type family struct {
	name  string
	faces map[overlay.FontWeight]face
}

// Book is a collection of font families. It is safe for concurrent use.
type Book struct {
	mu       sync.RWMutex
	families map[string]*family // keyed by lowercase name
}

// New creates a Book holding only the default family.
func New() *Book {
	b := &Book{families: make(map[string]*family)}
	defaults := []struct {
		weight overlay.FontWeight
		ttf    []byte
	}{
		{overlay.WeightRegular, goregular.TTF},
		{overlay.WeightMedium, gomedium.TTF},
		{overlay.WeightBold, gobold.TTF},
	}
	for _, d := range defaults {
		f, err := opentype.Parse(d.ttf)
		if err != nil {
			// embedded fonts always parse
			panic(fmt.Sprintf("parse embedded Go font: %v", err))
		}
		b.put(DefaultFamily, d.weight, face{font: f})
	}
	return b
}

func (b *Book) put(name string, w overlay.FontWeight, f face) error {
	key := strings.ToLower(name)
	fam, ok := b.families[key]
	if !ok {
		fam = &family{name: name, faces: make(map[overlay.FontWeight]face)}
		b.families[key] = fam
	}
	if existing, ok := fam.faces[w]; ok {
		// upright faces win over italic ones in the same slot
		if existing.italic && !f.italic {
			fam.faces[w] = f
			return nil
		}
		return ErrAlreadyLoaded
	}
	fam.faces[w] = f
	return nil
}

// AddFont parses TrueType/OpenType data and registers it under the family
// named in its name table. It returns the family name.
func (b *Book) AddFont(data []byte) (string, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse font: %w", err)
	}

	var buf sfnt.Buffer
	name := fontName(f, &buf, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
	if name == "" {
		return "", errors.New("font has no family name")
	}
	sub := fontName(f, &buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
	weight, italic := weightFromSubfamily(sub)

	b.mu.Lock()
	defer b.mu.Unlock()
	return name, b.put(name, weight, face{font: f, italic: italic})
}

// LoadDir adds every .ttf and .otf file directly inside dir. It returns the
// number of fonts added and the number skipped because their slot was taken.
func (b *Book) LoadDir(fs ports.FileSystem, dir string) (loaded, skipped int, err error) {
	files, err := fs.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("read font dir: %w", err)
	}
	for _, name := range files {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".ttf", ".otf":
		default:
			continue
		}
		path := filepath.Join(dir, name)
		data, err := fs.ReadFile(path)
		if err != nil {
			return loaded, skipped, fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := b.AddFont(data); err != nil {
			if errors.Is(err, ErrAlreadyLoaded) {
				skipped++
				continue
			}
			return loaded, skipped, fmt.Errorf("%s: %w", path, err)
		}
		loaded++
	}
	return loaded, skipped, nil
}

// Has reports whether a family is registered. Names are case-insensitive.
func (b *Book) Has(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.families[strings.ToLower(name)]
	return ok
}

// Families returns the registered family names, sorted.
func (b *Book) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.families))
	for _, fam := range b.families {
		names = append(names, fam.name)
	}
	sort.Strings(names)
	return names
}

// Weights returns the weights registered for a family, lightest first.
func (b *Book) Weights(name string) []overlay.FontWeight {
	b.mu.RLock()
	defer b.mu.RUnlock()
	fam, ok := b.families[strings.ToLower(name)]
	if !ok {
		return nil
	}
	out := make([]overlay.FontWeight, 0, len(fam.faces))
	for w := range fam.faces {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve returns a new face for the family at size pixels. Unknown or empty
// families use the default family and report ok == false for the unknown case.
func (b *Book) Resolve(name string, weight overlay.FontWeight, size float64) (font.Face, bool) {
	b.mu.RLock()
	fam, ok := b.families[strings.ToLower(name)]
	if !ok {
		fam = b.families[strings.ToLower(DefaultFamily)]
	}
	f := nearest(fam, weight)
	b.mu.RUnlock()

	ok = ok || name == ""
	if f == nil {
		return basicfont.Face7x13, ok
	}
	if size <= 0 {
		size = overlay.DefaultFontSize
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return basicfont.Face7x13, ok
	}
	return face, ok
}

// nearest picks the registered weight closest to want. Ties go heavier for
// requests above regular and lighter otherwise.
func nearest(fam *family, want overlay.FontWeight) *opentype.Font {
	if fam == nil || len(fam.faces) == 0 {
		return nil
	}
	return fam.faces[nearestWeight(fam, want)].font
}

func nearestWeight(fam *family, want overlay.FontWeight) overlay.FontWeight {
	if _, ok := fam.faces[want]; ok {
		return want
	}
	best := overlay.FontWeight(-1)
	bestDist := 0
	for w := range fam.faces {
		d := int(w) - int(want)
		if d < 0 {
			d = -d
		}
		switch {
		case best < 0, d < bestDist:
			best, bestDist = w, d
		case d == bestDist:
			if want > overlay.WeightRegular && w > best {
				best = w
			} else if want <= overlay.WeightRegular && w < best {
				best = w
			}
		}
	}
	return best
}

func fontName(f *opentype.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) string {
	for _, id := range ids {
		name, err := f.Name(buf, id)
		if err == nil && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// weightFromSubfamily maps names like "SemiBold Italic" to a weight.
func weightFromSubfamily(sub string) (overlay.FontWeight, bool) {
	s := strings.ToLower(sub)
	italic := strings.Contains(s, "italic") || strings.Contains(s, "oblique")
	s = strings.NewReplacer("italic", "", "oblique", "", "-", "", "_", "", " ", "").Replace(s)

	if w, err := overlay.ParseFontWeight(s); err == nil {
		return w, italic
	}
	keywords := []struct {
		key    string
		weight overlay.FontWeight
	}{
		{"extralight", overlay.WeightUltraLight},
		{"ultralight", overlay.WeightUltraLight},
		{"semibold", overlay.WeightSemibold},
		{"demibold", overlay.WeightSemibold},
		{"extrabold", overlay.WeightHeavy},
		{"ultrabold", overlay.WeightHeavy},
		{"black", overlay.WeightBlack},
		{"heavy", overlay.WeightHeavy},
		{"bold", overlay.WeightBold},
		{"medium", overlay.WeightMedium},
		{"light", overlay.WeightLight},
		{"thin", overlay.WeightThin},
	}
	for _, k := range keywords {
		if strings.Contains(s, k.key) {
			return k.weight, italic
		}
	}
	return overlay.WeightRegular, italic
}

// Ensure Book implements ports.FontResolver
var _ ports.FontResolver = (*Book)(nil)
