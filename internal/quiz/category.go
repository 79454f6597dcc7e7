package quiz

import "fmt"

// Category is one of the wizard profiles a quiz resolves to.
type Category uint8

const (
	Elementalist Category = iota
	Necromancer
	Illusionist
	Healer

	// NumCategories is the number of declared categories.
	NumCategories = int(Healer) + 1
)

var categoryNames = [NumCategories]string{
	Elementalist: "Elementalist",
	Necromancer:  "Necromancer",
	Illusionist:  "Illusionist",
	Healer:       "Healer",
}

// AllCategories returns all categories in declaration order.
func AllCategories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	return int(c) < NumCategories
}

// String returns the canonical name of the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a canonical name back to its category.
// Matching is exact and case-sensitive.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}
