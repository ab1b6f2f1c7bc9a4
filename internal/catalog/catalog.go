package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrModeNotFound = errors.New("color mode not supported by device")

// ColorMode describes a single lighting effect supported by a device
type ColorMode struct {
	Name string `json:"name"`
	// Value is the device specific encoding of this mode
	Value            int  `json:"value"`
	TwoColorVariant  bool `json:"twoColorVariant"`
	FourColorVariant bool `json:"fourColorVariant"`
	MinColors        int  `json:"minColors"`
	MaxColors        int  `json:"maxColors"`
	// RingOnly modes are only rendered by the ring, the logo color is ignored
	RingOnly bool `json:"ringOnly"`
}

// AcceptsColorCount reports whether the given amount of colors is within the bounds of this mode
func (m ColorMode) AcceptsColorCount(count int) bool {
	return count >= m.MinColors && count <= m.MaxColors
}

// Catalog is an immutable, case-insensitive lookup table of the color modes of a device
type Catalog struct {
	modes map[string]ColorMode
	// order in which the device enumerated its modes
	order []string
	// preferred mode for the ring channel when no preset exists yet
	defaultRing string
}

// NewCatalog creates a catalog from the given modes, keeping their order.
// Later duplicates (compared case-insensitively) replace earlier ones in place.
func NewCatalog(modes []ColorMode, defaultRingMode string) *Catalog {
	c := &Catalog{
		modes: make(map[string]ColorMode, len(modes)),
	}
	for _, mode := range modes {
		key := normalize(mode.Name)
		mode.Name = key
		if _, exists := c.modes[key]; !exists {
			c.order = append(c.order, key)
		}
		c.modes[key] = mode
	}

	if _, ok := c.modes[normalize(defaultRingMode)]; ok {
		c.defaultRing = normalize(defaultRingMode)
	} else if len(c.order) > 0 {
		c.defaultRing = c.order[0]
	}
	return c
}

// FromMap creates a catalog from an unordered map, as reported by a device adapter.
// Modes are ordered by their encoded value, then by name.
func FromMap(modes map[string]ColorMode, defaultRingMode string) *Catalog {
	list := make([]ColorMode, 0, len(modes))
	for name, mode := range modes {
		if len(mode.Name) <= 0 {
			mode.Name = name
		}
		list = append(list, mode)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Value != list[j].Value {
			return list[i].Value < list[j].Value
		}
		return list[i].Name < list[j].Name
	})
	return NewCatalog(list, defaultRingMode)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the mode with the given name, ignoring case
func (c *Catalog) Lookup(name string) (ColorMode, error) {
	mode, ok := c.modes[normalize(name)]
	if !ok {
		return ColorMode{}, fmt.Errorf("%w: '%s'", ErrModeNotFound, name)
	}
	return mode, nil
}

// Contains reports whether the given mode name is known, ignoring case
func (c *Catalog) Contains(name string) bool {
	_, ok := c.modes[normalize(name)]
	return ok
}

// First returns the first mode enumerated by the device
func (c *Catalog) First() (ColorMode, bool) {
	if len(c.order) <= 0 {
		return ColorMode{}, false
	}
	return c.modes[c.order[0]], true
}

// DefaultRingMode returns the mode used for the ring when creating default presets
func (c *Catalog) DefaultRingMode() string {
	return c.defaultRing
}

// Names returns all mode names in enumeration order
func (c *Catalog) Names() []string {
	result := make([]string, len(c.order))
	copy(result, c.order)
	return result
}

// Modes returns all modes in enumeration order
func (c *Catalog) Modes() []ColorMode {
	result := make([]ColorMode, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.modes[name])
	}
	return result
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// MaxColors returns the largest color count accepted by any mode
func (c *Catalog) MaxColors() int {
	result := 0
	for _, mode := range c.modes {
		result = max(result, mode.MaxColors)
	}
	return result
}
