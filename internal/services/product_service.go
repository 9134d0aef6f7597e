package services

import (
	"dashboard_api/internal/models"
	"dashboard_api/internal/repository"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Percentage  float64  `json:"percentage"`
	Color       string   `json:"color"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Stock       *int     `json:"stock"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

type ProductService interface {
	CreateProduct(userID uint, input ProductInput) (*models.Product, error)
	GetProductByID(userID, id uint) (*models.Product, error)
	GetProducts(userID uint) ([]models.Product, error)
	UpdateProduct(userID, id uint, input ProductInput) (*models.Product, error)
	DeleteProduct(userID, id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(userID uint, input ProductInput) (*models.Product, error) {
	product := &models.Product{
		UserID:      userID,
		Name:        input.Name,
		Percentage:  input.Percentage,
		Color:       input.Color,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductByID(userID, id uint) (*models.Product, error) {
	return s.productRepo.GetByID(userID, id)
}

func (s *productService) GetProducts(userID uint) ([]models.Product, error) {
	return s.productRepo.GetAll(userID)
}

// UpdateProduct leaves price and stock untouched when the request omits
// them, so a metadata edit cannot clobber tracked inventory.
func (s *productService) UpdateProduct(userID, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Percentage = input.Percentage
	product.Color = input.Color
	if input.Price != nil {
		product.Price = input.Price
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Stock != nil {
		product.Stock = input.Stock
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(userID, id uint) error {
	product, err := s.productRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(product.ID)
}
