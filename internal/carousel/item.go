package carousel

// Item is one selectable dish on the wheel. The order of a list of items
// defines their angular order; the same dish may appear at several slots.
type Item struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Color string `yaml:"color"`
}

// DisplayName returns the item name, or a generic label when empty.
func (it Item) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	return "Food dish"
}
