package text

import (
	"slices"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/paragraph/internal/logger"
)

type faceKey struct {
	family string
	weight Weight
	slant  Slant
}

// Collection is a Resolver over registered glyph sources.
//
// Resolve tries, in order: an exact (family, weight, slant) match; the
// same family and slant with the nearest weight; the same family with the
// nearest weight; the fallback source. Every registered source is wrapped
// with Cached.
//
// Collection is safe for concurrent use.
type Collection struct {
	mu       sync.RWMutex
	faces    map[faceKey]GlyphSource
	families map[string][]faceKey
	fallback GlyphSource
}

// NewCollection creates a collection resolving unknown families to
// fallback. A nil fallback uses a MonoSource with DefaultMonoMetrics.
func NewCollection(fallback GlyphSource) *Collection {
	if fallback == nil {
		fallback = NewMonoSource(DefaultMonoMetrics)
	}
	return &Collection{
		faces:    make(map[faceKey]GlyphSource),
		families: make(map[string][]faceKey),
		fallback: Cached(fallback),
	}
}

// Add registers src for the given family and style, replacing any source
// registered under the same key.
func (c *Collection) Add(family string, weight Weight, slant Slant, src GlyphSource) error {
	if src == nil {
		return ErrNilSource
	}
	key := faceKey{family: family, weight: weight, slant: slant}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.faces[key]; !ok {
		c.families[family] = append(c.families[family], key)
	}
	c.faces[key] = Cached(src)
	return nil
}

// AddFont registers src under the style declared with WithStyle.
func (c *Collection) AddFont(family string, src *FontSource) error {
	if src == nil {
		return ErrNilSource
	}
	weight, slant := src.Style()
	return c.Add(family, weight, slant, src)
}

// Resolve implements Resolver.
func (c *Collection) Resolve(family string, weight Weight, slant Slant) GlyphSource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if src, ok := c.faces[faceKey{family: family, weight: weight, slant: slant}]; ok {
		return src
	}
	keys := c.families[family]
	if len(keys) == 0 {
		return c.fallback
	}
	best, found := nearestWeight(keys, weight, func(k faceKey) bool { return k.slant == slant })
	if !found {
		best, _ = nearestWeight(keys, weight, func(faceKey) bool { return true })
	}
	return c.faces[best]
}

// Families returns the registered family names in sorted order.
func (c *Collection) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.families))
	for name := range c.families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fallback returns the source used for unknown families.
func (c *Collection) Fallback() GlyphSource {
	return c.fallback
}

// nearestWeight picks the key accepted by keep whose weight is closest to
// want. Ties go to the heavier face.
func nearestWeight(keys []faceKey, want Weight, keep func(faceKey) bool) (faceKey, bool) {
	var best faceKey
	found := false
	bestDist := 0
	for _, k := range keys {
		if !keep(k) {
			continue
		}
		d := int(k.weight - want)
		if d < 0 {
			d = -d
		}
		if !found || d < bestDist || (d == bestDist && k.weight > best.weight) {
			best, bestDist, found = k, d, true
		}
	}
	return best, found
}

// Families registered by DefaultResolver.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

// DefaultResolver returns a shared collection of the Go fonts: family
// "Go" in regular, bold, italic and bold italic, and "Go Mono". Unknown
// families resolve to Go Regular.
var DefaultResolver = sync.OnceValue(newDefaultCollection)

func newDefaultCollection() *Collection {
	regular, err := NewFontSource(goregular.TTF)
	if err != nil {
		logger.Get().Warn("text: Go Regular failed to parse, using mono fallback", "err", err)
		return NewCollection(nil)
	}
	c := NewCollection(regular)
	_ = c.AddFont(FamilyGo, regular)

	faces := []struct {
		family string
		data   []byte
		weight Weight
		slant  Slant
	}{
		{FamilyGo, gobold.TTF, WeightBold, SlantNormal},
		{FamilyGo, goitalic.TTF, WeightNormal, SlantItalic},
		{FamilyGo, gobolditalic.TTF, WeightBold, SlantItalic},
		{FamilyGoMono, gomono.TTF, WeightNormal, SlantNormal},
	}
	for _, f := range faces {
		src, err := NewFontSource(f.data, WithStyle(f.weight, f.slant))
		if err != nil {
			logger.Get().Warn("text: skipping Go font", "family", f.family, "weight", f.weight, "err", err)
			continue
		}
		_ = c.AddFont(f.family, src)
	}
	return c
}
