package catalog

type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"image_url"`
	IsFeatured     bool     `json:"is_featured"`
	AvailableSizes []string `json:"available_sizes,omitempty"`
}

// Store is the product data-access surface. Exactly one implementation is
// selected at startup: PostgresStore when the remote database is configured,
// MemoryStore otherwise.
type Store interface {
	List() ([]Product, error)
	// Create assigns the new product's id; any id on p is ignored.
	Create(p Product) (Product, error)
	Update(p Product) (Product, error)
	Delete(id int) error
	// Reseed wipes the catalog and restores the demo products.
	Reseed() ([]Product, error)
}

// The demo catalog used in fallback mode, and as the masking value when a
// remote catalog read fails.
var seedProducts = []Product{
	{
		ID:             1,
		Name:           "قميص رجالي أنيق",
		Description:    "قميص قطني عالي الجودة بتصميم عصري وأنيق",
		Price:          150,
		Category:       "قمصان",
		ImageURL:       "https://images.unsplash.com/photo-1594938298605-cd64d190e6bc?w=400&h=400&fit=crop",
		IsFeatured:     true,
		AvailableSizes: []string{"S", "M", "L", "XL", "XXL"},
	},
	{
		ID:             2,
		Name:           "بنطلون جينز كلاسيكي",
		Description:    "بنطلون جينز أزرق بتصميم كلاسيكي ومريح",
		Price:          200,
		Category:       "بناطيل",
		ImageURL:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=400&fit=crop",
		IsFeatured:     true,
		AvailableSizes: []string{"28", "30", "32", "34", "36", "38"},
	},
	{
		ID:             3,
		Name:           "حذاء رياضي مريح",
		Description:    "حذاء رياضي عالي الجودة للمشي والرياضة",
		Price:          300,
		Category:       "أحذية",
		ImageURL:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop",
		IsFeatured:     false,
		AvailableSizes: []string{"38", "39", "40", "41", "42", "43", "44", "45"},
	},
	{
		ID:             4,
		Name:           "جاكيت شتوي دافئ",
		Description:    "جاكيت شتوي أنيق ومريح للطقس البارد",
		Price:          400,
		Category:       "جاكيتات",
		ImageURL:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=400&fit=crop",
		IsFeatured:     false,
		AvailableSizes: []string{"S", "M", "L", "XL", "XXL", "XXXL"},
	},
	{
		ID:             5,
		Name:           "قميص بولو أنيق",
		Description:    "قميص بولو قطني بتصميم أنيق ومريح",
		Price:          180,
		Category:       "قمصان",
		ImageURL:       "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=400&h=400&fit=crop",
		IsFeatured:     false,
		AvailableSizes: []string{"S", "M", "L", "XL"},
	},
	{
		ID:             6,
		Name:           "بنطلون رسمي",
		Description:    "بنطلون رسمي أنيق للمناسبات الخاصة",
		Price:          250,
		Category:       "بناطيل",
		ImageURL:       "https://images.unsplash.com/photo-1506629905607-9b4a4b4b4b4b?w=400&h=400&fit=crop",
		IsFeatured:     true,
		AvailableSizes: []string{"28", "30", "32", "34", "36"},
	},
}

// SeedProducts returns a fresh copy of the demo catalog.
func SeedProducts() []Product {
	products := make([]Product, len(seedProducts))
	copy(products, seedProducts)
	for i := range products {
		sizes := make([]string, len(seedProducts[i].AvailableSizes))
		copy(sizes, seedProducts[i].AvailableSizes)
		products[i].AvailableSizes = sizes
	}
	return products
}
