package repositories

import (
	"context"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Upsert(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var (
		products []models.Product
		total    int64
	)
	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count products")
	}
	if err := p.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list products")
	}
	return products, total, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return p.first(ctx, "id = ?", id)
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return p.first(ctx, "slug = ?", slug)
}

func (p *productRepository) Upsert(ctx context.Context, product *models.Product) error {
	return errors.Wrapf(p.db.WithContext(ctx).Save(product).Error, "save product %s", product.ID)
}

func (p *productRepository) first(ctx context.Context, query string, arg string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Where(query, arg).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find product %s", arg)
	}
	return &product, nil
}
