package catalog

func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 50000, Color: "#ff6b6b"},
		{ID: 2, Name: "Mobile", Price: 20000, Color: "#4dabf7"},
		{ID: 3, Name: "Headphones", Price: 2000, Color: "#51cf66"},
		{ID: 4, Name: "Smart Watch", Price: 8000, Color: "#f59f00"},
	}
}

// NewSeeded returns the built-in demo catalog.
func NewSeeded() *Catalog {
	c, err := New(SeedProducts())
	if err != nil {
		panic(err)
	}
	return c
}
