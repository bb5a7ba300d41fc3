package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dish-wheel.klederson.com/internal/carousel"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyMenu = errors.New("menu has no dishes")
	ErrBadColor  = errors.New("invalid dish color")
)

// Menu is the YAML representation of the dish list.
//
//	dishes:
//	  - name: Italian cuisine
//	    image: /dishes/italian.svg
//	    color: "#F45E5E"
type Menu struct {
	Dishes []carousel.Item `yaml:"dishes"`
}

// DefaultMenu returns the built-in dish list. Duplicates are intentional:
// the wheel has ten slots and six distinct cuisines.
func DefaultMenu() Menu {
	return Menu{Dishes: []carousel.Item{
		{Name: "Italian cuisine", Image: "/dishes/italian.svg", Color: "#F45E5E"},
		{Name: "Mexican cuisine", Image: "/dishes/mexican.svg", Color: "#FC9A63"},
		{Name: "Non veg", Image: "/dishes/non-veg.svg", Color: "#F56E2E"},
		{Name: "North Indian", Image: "/dishes/north-indian.svg", Color: "#94AC20"},
		{Name: "Healthy Salads", Image: "/dishes/salad.svg", Color: "#93AE75"},
		{Name: "South Indian Cuisine", Image: "/dishes/south-indian.svg", Color: "#F7D297"},
		{Name: "Italian cuisine", Image: "/dishes/italian.svg", Color: "#F45E5E"},
		{Name: "Mexican cuisine", Image: "/dishes/mexican.svg", Color: "#FC9A63"},
		{Name: "Non veg", Image: "/dishes/non-veg.svg", Color: "#F56E2E"},
		{Name: "North Indian", Image: "/dishes/north-indian.svg", Color: "#94AC20"},
	}}
}

// LoadMenu reads a YAML menu file. An empty path returns DefaultMenu.
// Unknown fields are rejected so typos surface early.
func LoadMenu(path string) (Menu, error) {
	if path == "" {
		return DefaultMenu(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, fmt.Errorf("read menu file: %w", err)
	}
	return ParseMenu(b)
}

// ParseMenu decodes and validates a YAML menu document.
func ParseMenu(b []byte) (Menu, error) {
	var m Menu
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Menu{}, fmt.Errorf("decode menu yaml: %w", err)
	}
	if err := dec.Decode(&yaml.Node{}); !errors.Is(err, io.EOF) {
		return Menu{}, errors.New("decode menu yaml: unexpected trailing document")
	}
	if err := m.Validate(); err != nil {
		return Menu{}, err
	}
	return m, nil
}

// Validate checks that the menu has dishes and that every color parses.
// Colors are normalized to upper-case #RRGGBB.
func (m *Menu) Validate() error {
	if len(m.Dishes) == 0 {
		return ErrEmptyMenu
	}
	for i := range m.Dishes {
		d := &m.Dishes[i]
		if strings.TrimSpace(d.Name) == "" {
			d.Name = "Food dish"
		}
		c, err := colorful.Hex(d.Color)
		if err != nil {
			return fmt.Errorf("%w: dish %d (%q): %q", ErrBadColor, i, d.Name, d.Color)
		}
		d.Color = strings.ToUpper(c.Hex())
	}
	return nil
}
