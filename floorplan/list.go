package floorplan

import (
	"errors"
	"fmt"
)

// ErrMissingLocation indicates a shopping-list product has no registered shelf location.
var ErrMissingLocation = errors.New("floorplan: product has no registered location")

// Item is one requested product. Quantity is carried for callers but ignored
// by route planning.
type Item struct {
	ProductID string `json:"productId" yaml:"product_id"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Quantity  int    `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Location  *Point `json:"location,omitempty" yaml:"location,omitempty"`
}

// ShoppingList is a shopper's requested products for one store.
type ShoppingList struct {
	StoreID string `json:"storeId,omitempty" yaml:"store_id,omitempty"`
	Items   []Item `json:"products" yaml:"products"`
}

// Targets converts the list into ShelfTargets, in list order.
// Returns ErrMissingLocation (naming the product) for the first item without a location.
func (sl *ShoppingList) Targets() ([]ShelfTarget, error) {
	out := make([]ShelfTarget, 0, len(sl.Items))
	for _, it := range sl.Items {
		if it.Location == nil {
			return nil, fmt.Errorf("%w: product %q", ErrMissingLocation, it.ProductID)
		}
		out = append(out, ShelfTarget{ProductID: it.ProductID, Location: *it.Location})
	}

	return out, nil
}
