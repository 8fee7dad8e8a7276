// Package atlas implements a multi-page texture-atlas packer grounded on
// the reference AtlasBuilder/AtlasRef design, wrapping a guillotine
// rectangle packer per page and opening a new page when the current ones
// are full.
package atlas

import "fmt"

// Ref records where a packed rectangle landed: which page, and its
// placement within that page.
type Ref struct {
	PageID uint32
	W, H   int32
	X, Y   int32
}

type rect struct {
	X, Y, W, H int32
}

// page is one DensePacker-equivalent: a guillotine free-rectangle packer.
type page struct {
	free []rect
}

func newPage(size int32) *page {
	return &page{free: []rect{{0, 0, size, size}}}
}

// pack finds the free rectangle that wastes the least area, places (w, h)
// in its corner, and splits the remainder into up to two new free
// rectangles.
func (p *page) pack(w, h int32) (rect, bool) {
	best := -1
	var bestRect rect
	var bestWaste int64 = -1
	for i, fr := range p.free {
		if fr.W < w || fr.H < h {
			continue
		}
		waste := int64(fr.W-w)*int64(fr.H) + int64(fr.H-h)*int64(w)
		if bestWaste < 0 || waste < bestWaste {
			bestWaste = waste
			best = i
			bestRect = fr
		}
	}
	if best < 0 {
		return rect{}, false
	}
	placed := rect{bestRect.X, bestRect.Y, w, h}
	p.free = append(p.free[:best], p.free[best+1:]...)
	if rem := bestRect.W - w; rem > 0 {
		p.free = append(p.free, rect{bestRect.X + w, bestRect.Y, rem, bestRect.H})
	}
	if rem := bestRect.H - h; rem > 0 {
		p.free = append(p.free, rect{bestRect.X, bestRect.Y + h, w, rem})
	}
	return placed, true
}

// Builder is the multi-page packer: add(w, h) tries every existing page
// in order before opening a new max_size×max_size one.
type Builder struct {
	maxSize int32
	pages   []*page
}

// NewBuilder constructs a Builder whose pages are maxWH×maxWH squares.
func NewBuilder(maxWH int32) *Builder {
	return &Builder{maxSize: maxWH}
}

// Add places a w×h rectangle, opening a new page if none of the existing
// ones fit it. A rectangle larger than the page size fails with an error
// rather than panicking.
func (b *Builder) Add(w, h int32) (Ref, error) {
	for i, pg := range b.pages {
		if r, ok := pg.pack(w, h); ok {
			return Ref{PageID: uint32(i), W: r.W, H: r.H, X: r.X, Y: r.Y}, nil
		}
	}
	if w > b.maxSize || h > b.maxSize {
		return Ref{}, fmt.Errorf("atlas: rectangle %dx%d exceeds max page size %d", w, h, b.maxSize)
	}
	b.pages = append(b.pages, newPage(b.maxSize))
	return b.Add(w, h)
}

// PageCount reports how many pages have been opened so far.
func (b *Builder) PageCount() int { return len(b.pages) }
