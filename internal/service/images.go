package service

import (
	"net/url"
	"strconv"
	"strings"

	"eatery-pos/internal/domain"
)

const (
	unsplashSource = "https://source.unsplash.com/400x300/?"

	// DefaultImageURL is the terminal fallback once every other
	// candidate has failed to load.
	DefaultImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop"
)

// searchTerms maps known item names to better search terms than the
// raw name would give.
var searchTerms = map[string]string{
	"idly":   "idli indian food",
	"idli":   "idli indian food",
	"dosa":   "dosa indian food",
	"poori":  "puri indian food",
	"puri":   "puri indian food",
	"vada":   "vada indian food",
	"tea":    "tea indian chai",
	"coffee": "coffee indian filter",
	"milk":   "milk drink",
	"boost":  "energy drink",
}

// curatedImages are fixed food photos tried after the search-based
// candidates.
var curatedImages = []string{
	"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400&h=300&fit=crop",
}

// ResolveImage returns the display URL for a menu item: an explicit
// http(s) image wins, otherwise a search URL derived from the name.
// Deterministic for identical input.
func ResolveImage(item domain.MenuItem) string {
	image := strings.TrimSpace(item.Image)
	if image != "" && (strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://")) {
		return image
	}

	name := strings.ToLower(strings.TrimSpace(item.Name))
	term, ok := searchTerms[name]
	if !ok {
		term = name + " food"
	}
	return unsplashSource + url.QueryEscape(term)
}

// FallbackImages lists the alternates to try, in order, when the
// primary image fails to load. The last search-free entry is seeded
// by a character checksum of the name so it stays stable per item.
func FallbackImages(name string) []string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	searchTerm := url.QueryEscape(normalized + " food")
	simpleTerm := url.QueryEscape(normalized)

	urls := []string{
		unsplashSource + searchTerm,
		unsplashSource + "food," + simpleTerm,
		unsplashSource + "indian,food," + simpleTerm,
		unsplashSource + simpleTerm,
	}
	urls = append(urls, curatedImages...)
	urls = append(urls, "https://picsum.photos/seed/"+strconv.Itoa(nameChecksum(name))+"/400/300")
	return urls
}

// nameChecksum sums the character codes of the raw name.
func nameChecksum(name string) int {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	return sum
}

// FallbackCursor walks a fallback chain one failure at a time. Once
// the chain is exhausted every further Next returns the constant
// default image.
type FallbackCursor struct {
	chain []string
	index int
}

func NewFallbackCursor(name string) *FallbackCursor {
	return &FallbackCursor{chain: FallbackImages(name)}
}

func (c *FallbackCursor) Next() string {
	if c.index >= len(c.chain) {
		return DefaultImageURL
	}
	next := c.chain[c.index]
	c.index++
	return next
}

// Exhausted reports whether only the terminal default remains.
func (c *FallbackCursor) Exhausted() bool {
	return c.index >= len(c.chain)
}
