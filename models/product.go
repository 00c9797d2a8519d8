package models

type Category string

const (
	CategoryClassic Category = "classic"
	CategoryGift    Category = "gift"
	CategoryHealthy Category = "healthy"
	CategorySweet   Category = "sweet"
	CategorySavory  Category = "savory"
)

// ProductImage is an opaque display reference; no cart logic depends on it.
type ProductImage struct {
	ID  string `json:"id"`
	Alt string `json:"alt"`
}

type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	LongDescription string         `json:"longDescription"`
	Images          []ProductImage `json:"images"`
	Price           float64        `json:"price"`
	Tags            []string       `json:"tags"`
	PackSizes       []string       `json:"packSizes"`
	Category        Category       `json:"category"`
}
