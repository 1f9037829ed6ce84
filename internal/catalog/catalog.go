package catalog

// Product is a single catalog entry. Prices are whole currency units.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// products is the canonical catalog. It is defined once at startup and
// never mutated at runtime; callers only ever see copies.
var products = []Product{
	{ID: 1, Name: "Watermelon Rations", Price: 300, Image: "watermelon.png"},
	{ID: 2, Name: "Skipper's Straw Hat", Price: 120, Image: "straw_hat.png"},
	{ID: 3, Name: "Lifebuoy Ring", Price: 150, Image: "pool_ring.png"},
	{ID: 4, Name: "Deckside Cucumber Snack", Price: 50, Image: "cucumber_snack.png"},
	{ID: 5, Name: "Sun Sail Parasol", Price: 200, Image: "sun_umbrella.png"},
	{ID: 6, Name: "Deck Hammock", Price: 300, Image: "hammock.png"},
	{ID: 7, Name: "Comfort & Care Kit", Price: 250, Image: "spa_set.png"},
	{ID: 8, Name: "Portable Water Slide", Price: 500, Image: "waterslide.png"},
	{ID: 9, Name: "Pet Deck Lounger", Price: 400, Image: "pet_couch.png"},
	{ID: 10, Name: "All-Weather Deck Blanket", Price: 180, Image: "blanket.png"},
	{ID: 11, Name: "Waterproof Phone Case", Price: 500, Image: "phone_case.png"},
	{ID: 12, Name: "Anchor", Price: 15000, Image: "anchor.png"},
}

// List returns the full catalog in construction order.
// The returned slice is a copy, so callers cannot modify the catalog.
func List() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Find returns the product with the given id.
func Find(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
