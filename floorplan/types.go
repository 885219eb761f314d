package floorplan

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for floorplan operations.
var (
	// ErrNoFloorPlan indicates the store has no registered floor plan.
	ErrNoFloorPlan = errors.New("floorplan: store has no registered floor plan")
	// ErrNoEntrance indicates no cell of type entrance is registered.
	ErrNoEntrance = errors.New("floorplan: no entrance registered")
	// ErrCellType indicates an unknown cell-type label.
	ErrCellType = errors.New("floorplan: unknown cell type")
	// ErrDimensions indicates a non-positive grid width or height.
	ErrDimensions = errors.New("floorplan: grid dimensions must be positive")
)

// DefaultWidth and DefaultHeight are the grid dimensions of the reference deployment.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Point is a grid coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CellType classifies a registered floor-plan cell.
type CellType string

const (
	// Entrance is the single walkable registered cell where every route starts.
	Entrance CellType = "entrance"
	// Shelf holds products.
	Shelf CellType = "shelf"
	// Fridge holds refrigerated products.
	Fridge CellType = "fridge"
	// CheckoutCounter is a till.
	CheckoutCounter CellType = "checkout_counter"
	// Obstacle is anything else that blocks the floor.
	Obstacle CellType = "obstacle"
)

// cellTypeAliases maps every accepted label (canonical names and the labels
// used by the store back-office) to its CellType.
var cellTypeAliases = map[string]CellType{
	"entrance":         Entrance,
	"entrada":          Entrance,
	"shelf":            Shelf,
	"prateleira":       Shelf,
	"fridge":           Fridge,
	"frios":            Fridge,
	"checkout_counter": CheckoutCounter,
	"checkoutcounter":  CheckoutCounter,
	"caixa":            CheckoutCounter,
	"obstacle":         Obstacle,
	"obstáculo":        Obstacle,
	"obstaculo":        Obstacle,
}

// ParseCellType resolves a label into a CellType, case-insensitively.
// Returns ErrCellType for unknown labels.
func ParseCellType(label string) (CellType, error) {
	if ct, ok := cellTypeAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return ct, nil
	}

	return "", fmt.Errorf("%w: %q", ErrCellType, label)
}

// MarshalText implements encoding.TextMarshaler.
func (ct CellType) MarshalText() ([]byte, error) {
	return []byte(ct), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting every alias.
func (ct *CellType) UnmarshalText(text []byte) error {
	parsed, err := ParseCellType(string(text))
	if err != nil {
		return err
	}
	*ct = parsed

	return nil
}

// Walkable reports whether a registered cell of this type can be walked on.
// Only the entrance is; every other registered cell blocks the floor.
func (ct CellType) Walkable() bool {
	return ct == Entrance
}

// Cell is a registered floor-plan cell.
type Cell struct {
	X    int      `json:"x" yaml:"x"`
	Y    int      `json:"y" yaml:"y"`
	Type CellType `json:"type" yaml:"type"`
}

// Point returns the cell coordinates.
func (c Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// FloorPlan is a store's registered cells on a Width×Height grid.
// Cells keeps insertion order; Entrance depends on it.
type FloorPlan struct {
	StoreID string `json:"storeId" yaml:"store_id"`
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
	Cells   []Cell `json:"items" yaml:"cells"`
}

// Dimensions returns Width and Height, substituting the reference 10×10 for
// unset (zero) values.
func (fp *FloorPlan) Dimensions() (w, h int) {
	w, h = fp.Width, fp.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}

	return w, h
}

// ShelfTarget binds a product to its registered shelf location.
type ShelfTarget struct {
	ProductID string `json:"productId" yaml:"product_id"`
	Location  Point  `json:"location" yaml:"location"`
}

// AccessPoint is the walkable cell next to (or on) a ShelfTarget's location.
type AccessPoint struct {
	ProductID string `json:"productId"`
	Point
}
