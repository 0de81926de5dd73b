package pickup

import (
	"errors"
	"fmt"

	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Category classifies a piece of electronic waste.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	UnknownCategory Category = iota

	Computer
	Mobile
	TV
	Printer
	Other
)

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		Computer: "computer",
		Mobile:   "mobile",
		TV:       "tv",
		Printer:  "printer",
		Other:    "other",
	}
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the lowercase category name as used in API payloads.
func (c Category) String() string {
	if str, ok := getValidCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// CategoryFromString parses the lowercase category name used in API payloads.
func CategoryFromString(s string) (Category, error) {
	for c, name := range getValidCategoryStrings() {
		if name == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%q is not a valid category", s))
}

// Item is one line of a pickup request: a category of e-waste, how many
// units of it, and an optional free-text description.
//
// Item is an immutable value object validated at construction.
type Item struct {
	category    Category
	quantity    int
	description string

	guard guard.ConstructorGuard
}

// NewItem creates an item line. The category must be valid and the quantity
// at least 1; the description is optional.
func NewItem(category Category, quantity int, description string) (Item, error) {
	if err := category.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		category:    category,
		quantity:    quantity,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Category returns the e-waste category of this line.
func (i Item) Category() Category {
	return i.category
}

// Quantity returns the number of units, always >= 1.
func (i Item) Quantity() int {
	return i.quantity
}

// Description returns the optional free-text description.
func (i Item) Description() string {
	return i.description
}
