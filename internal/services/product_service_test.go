package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_api/internal/apperrors"
)

func TestUpdateProductPreservesOmittedFields(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	price := 10.0
	stock := 5
	created, err := service.CreateProduct(1, ProductInput{
		Name:     "Widget",
		Price:    &price,
		Stock:    &stock,
		Category: "Tools",
	})
	require.NoError(t, err)

	updated, err := service.UpdateProduct(1, created.ID, ProductInput{Name: "Widget v2"})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 10.0, *updated.Price)
	require.NotNil(t, updated.Stock)
	assert.Equal(t, 5, *updated.Stock)
	assert.Equal(t, "Tools", updated.Category)

	newStock := 0
	updated, err = service.UpdateProduct(1, created.ID, ProductInput{Name: "Widget v2", Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 0, *updated.Stock)
}

func TestProductTenantScoping(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	created, err := service.CreateProduct(1, ProductInput{Name: "Widget"})
	require.NoError(t, err)

	_, err = service.GetProductByID(2, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	err = service.DeleteProduct(2, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, repo.products, created.ID)
}
