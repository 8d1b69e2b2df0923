package entity

// Category categoria de produtos do catálogo.
type Category struct {
	ID   int64
	Name string
}
