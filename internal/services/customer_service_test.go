package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"
)

func newCustomerFixture() (*fakeCustomerRepo, *fakeOrderRepo, CustomerService) {
	customers := newFakeCustomerRepo()
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(customers, products)
	return customers, orders, NewCustomerService(customers, orders)
}

func TestCreateCustomerDefaultsStatus(t *testing.T) {
	_, _, service := newCustomerFixture()

	customer, err := service.CreateCustomer(1, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, string(models.CustomerActive), customer.Status)
	assert.Equal(t, uint(1), customer.UserID)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	_, _, service := newCustomerFixture()

	_, err := service.CreateCustomer(1, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = service.CreateCustomer(1, CustomerInput{Name: "Other", Email: "alice@example.com"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreateCustomerSameEmailOtherUser(t *testing.T) {
	_, _, service := newCustomerFixture()

	_, err := service.CreateCustomer(1, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// duplicate detection is scoped per account
	_, err = service.CreateCustomer(2, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	assert.NoError(t, err)
}

func TestUpdateCustomerEmailCollision(t *testing.T) {
	_, _, service := newCustomerFixture()

	first, err := service.CreateCustomer(1, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	second, err := service.CreateCustomer(1, CustomerInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = service.UpdateCustomer(1, second.ID, CustomerInput{Name: "Bob", Email: first.Email})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	updated, err := service.UpdateCustomer(1, second.ID, CustomerInput{
		Name:   "Bobby",
		Email:  "bob@example.com",
		Status: string(models.CustomerVIP),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bobby", updated.Name)
	assert.Equal(t, string(models.CustomerVIP), updated.Status)
}

func TestDeleteCustomerWithOrders(t *testing.T) {
	customers, orders, service := newCustomerFixture()

	customer, err := service.CreateCustomer(1, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	orders.orders[1] = &models.Order{ID: 1, UserID: 1, CustomerID: customer.ID, Status: string(models.OrderPending)}

	err = service.DeleteCustomer(1, customer.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStateConflict))
	assert.Contains(t, customers.customers, customer.ID)

	delete(orders.orders, 1)
	require.NoError(t, service.DeleteCustomer(1, customer.ID))
	assert.NotContains(t, customers.customers, customer.ID)
}

func TestCustomerAnalytics(t *testing.T) {
	customers, _, service := newCustomerFixture()

	for _, c := range []*models.Customer{
		{UserID: 1, Name: "a", Email: "a@example.com", Status: "active", TotalSpent: 100},
		{UserID: 1, Name: "b", Email: "b@example.com", Status: "vip", TotalSpent: 900},
		{UserID: 1, Name: "c", Email: "c@example.com", Status: "inactive"},
		{UserID: 2, Name: "d", Email: "d@example.com", Status: "active", TotalSpent: 50},
	} {
		require.NoError(t, customers.Create(c))
	}

	analytics, err := service.GetCustomerAnalytics(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), analytics.TotalCustomers)
	assert.Equal(t, int64(1), analytics.ActiveCustomers)
	assert.Equal(t, int64(1), analytics.VIPCustomers)
	assert.Equal(t, 1000.00, analytics.TotalRevenue)
}
