package seeders

import (
	"context"

	"github.com/Rakhulsr/go-fitstore/app/helpers"
	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CatalogProduct is the seed form of a product. Price and discount are
// validated here; the cart trusts whatever the catalog holds.
type CatalogProduct struct {
	ID          string         `validate:"required,max=36"`
	Name        string         `validate:"required,max=255"`
	Description string         `validate:"max=2000"`
	Price       string         `validate:"required,numeric"`
	Discount    *int           `validate:"omitempty,min=0,max=100"`
	Images      []string       `validate:"dive,required"`
	Sizes       []models.Size  `validate:"dive,oneof=XS S M L XL XXL"`
	Colors      []models.Color `validate:"dive,oneof=black white grey red blue green pink"`
}

func percent(v int) *int { return &v }

var Catalog = []CatalogProduct{
	{
		ID:          "tee-aero-01",
		Name:        "Aero Training Tee",
		Description: "Lightweight quick-dry tee for high intensity sessions.",
		Price:       "29.99",
		Images:      []string{"/images/products/aero-tee.jpg"},
		Sizes:       []models.Size{models.SizeS, models.SizeM, models.SizeL, models.SizeXL},
		Colors:      []models.Color{models.ColorBlack, models.ColorWhite, models.ColorBlue},
	},
	{
		ID:          "legging-core-02",
		Name:        "Core Seamless Leggings",
		Description: "High-waisted squat-proof leggings.",
		Price:       "54.00",
		Discount:    percent(20),
		Images:      []string{"/images/products/core-leggings.jpg"},
		Sizes:       []models.Size{models.SizeXS, models.SizeS, models.SizeM, models.SizeL},
		Colors:      []models.Color{models.ColorBlack, models.ColorGrey, models.ColorPink},
	},
	{
		ID:          "hoodie-lift-03",
		Name:        "Lift Oversized Hoodie",
		Description: "Heavyweight fleece hoodie for warm-ups and rest days.",
		Price:       "80.00",
		Discount:    percent(25),
		Images:      []string{"/images/products/lift-hoodie.jpg"},
		Sizes:       []models.Size{models.SizeM, models.SizeL, models.SizeXL, models.SizeXXL},
		Colors:      []models.Color{models.ColorGrey, models.ColorBlack, models.ColorGreen},
	},
	{
		ID:          "short-stride-04",
		Name:        "Stride Running Shorts",
		Description: "5 inch shorts with a zip pocket.",
		Price:       "34.50",
		Images:      []string{"/images/products/stride-shorts.jpg"},
		Sizes:       []models.Size{models.SizeS, models.SizeM, models.SizeL},
		Colors:      []models.Color{models.ColorBlack, models.ColorRed},
	},
	{
		ID:          "bottle-hydro-05",
		Name:        "Hydro Steel Bottle 750ml",
		Description: "Insulated bottle, keeps water cold for 24 hours.",
		Price:       "19.95",
		Discount:    percent(10),
		Images:      []string{"/images/products/hydro-bottle.jpg"},
	},
	{
		ID:          "band-loop-06",
		Name:        "Loop Resistance Band Set",
		Description: "Five bands from light to extra heavy.",
		Price:       "15.00",
		Images:      []string{"/images/products/loop-bands.jpg"},
		Colors:      []models.Color{models.ColorGreen, models.ColorRed, models.ColorBlue},
	},
}

// ToProduct validates p and converts it into a catalog record.
func (p CatalogProduct) ToProduct(validate *validator.Validate) (*models.Product, error) {
	if err := validate.Struct(p); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog product %s", p.ID)
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid price of %s", p.ID)
	}
	if price.IsNegative() {
		return nil, errors.Errorf("negative price of %s", p.ID)
	}

	return &models.Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        helpers.GenerateSlug(p.Name),
		Description: p.Description,
		Price:       price,
		Discount:    p.Discount,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
	}, nil
}

func DBSeed(ctx context.Context, products repositories.ProductRepositoryImpl, validate *validator.Validate, log logrus.FieldLogger) error {
	for _, item := range Catalog {
		product, err := item.ToProduct(validate)
		if err != nil {
			return err
		}
		if err := products.Upsert(ctx, product); err != nil {
			return err
		}
		log.WithField("product", product.ID).Info("seeded product")
	}
	return nil
}
