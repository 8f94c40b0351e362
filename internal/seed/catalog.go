package seed

import (
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/shopspring/decimal"
)

// Catalog returns the demo products. Slugs are derived from titles.
func Catalog() []service.CreateProductInput {
	return []service.CreateProductInput{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Description: "Introducing a crew neck sweatshirt made from 60% cotton and 40% recycled polyester.",
			Price:       decimal.RequireFromString("75.00"),
			Stock:       7,
			Gender:      domain.GenderMen,
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Description: "A versatile quilted jacket for layering in cool weather.",
			Price:       decimal.RequireFromString("200.00"),
			Stock:       5,
			Gender:      domain.GenderMen,
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Description: "A cropped puffer with a relaxed fit and water repellent finish.",
			Price:       decimal.RequireFromString("225.00"),
			Stock:       3,
			Gender:      domain.GenderWomen,
			Images:      []string{"1740535-00-A_0_2000.jpg"},
		},
		{
			Title:       "Kids Cybertruck Long Sleeve Tee",
			Description: "A soft long sleeve tee for kids, printed with an angular truck graphic.",
			Price:       decimal.RequireFromString("30.00"),
			Stock:       12,
			Gender:      domain.GenderKid,
			Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
		},
		{
			Title:       "Relaxed T Logo Hat",
			Description: "A six panel cap with an embroidered logo and adjustable strap.",
			Price:       decimal.RequireFromString("30.00"),
			Stock:       10,
			Gender:      domain.GenderUnisex,
			Images:      []string{"1657932-00-A_0_2000.jpg"},
		},
		{
			Title:       "Women's Raven Slouchy Crew Sweatshirt",
			Description: "A slouchy crew sweatshirt with dropped shoulders.",
			Price:       decimal.RequireFromString("110.00"),
			Stock:       9,
			Gender:      domain.GenderWomen,
			Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
		},
		{
			Title:       "Made on Earth by Humans Onesie",
			Description: "A soft cotton onesie with a snap closure.",
			Price:       decimal.RequireFromString("25.00"),
			Stock:       0,
			Gender:      domain.GenderKid,
			Images:      nil,
		},
	}
}
