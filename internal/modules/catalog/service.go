package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic. Mutations are scoped to the
// owning vendor.
type Service interface {
	CreateProduct(ctx context.Context, vendorID string, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, category, city string) ([]*Product, error)
	ListVendorProducts(ctx context.Context, vendorID string) ([]*Product, error)
	UpdateProduct(ctx context.Context, vendorID, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, vendorID, id string) error
}

// ProductRequest holds the data for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	City        string  `json:"city"`
	ImageURL    string  `json:"image_url"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, vendorID string, req ProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	p := &Product{
		ID:          uuid.New().String(),
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		City:        req.City,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category, city string) ([]*Product, error) {
	return s.repo.List(ctx, category, city, true)
}

func (s *service) ListVendorProducts(ctx context.Context, vendorID string) ([]*Product, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *service) UpdateProduct(ctx context.Context, vendorID, id string, req ProductRequest) (*Product, error) {
	p, err := s.owned(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.Unit = req.Unit
	p.City = req.City
	p.ImageURL = req.ImageURL
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, vendorID, id string) error {
	if _, err := s.owned(ctx, vendorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) owned(ctx context.Context, vendorID, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.VendorID != vendorID {
		return nil, fmt.Errorf("product %s does not belong to this vendor", id)
	}
	return p, nil
}
