package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_api/internal/models"
)

func newUserFixture() (*fakeUserRepo, *fakeSettingsRepo, UserService) {
	users := newFakeUserRepo()
	settings := newFakeSettingsRepo()
	customers := newFakeCustomerRepo()
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(customers, products)
	service := NewUserService(users, settings, products, customers, orders)
	return users, settings, service
}

func TestUpdateProfile(t *testing.T) {
	users, _, service := newUserFixture()
	require.NoError(t, users.Create(&models.User{Name: "Alice", Email: "alice@example.com"}))

	updated, err := service.UpdateProfile(1, ProfileInput{Name: "Alicia", Avatar: "avatar.png"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "avatar.png", updated.Avatar)

	// omitted avatar keeps the stored one
	updated, err = service.UpdateProfile(1, ProfileInput{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", updated.Avatar)
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	_, store, service := newUserFixture()

	settings, err := service.GetSettings(1)
	require.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, "en", settings.Language)
	assert.True(t, settings.EmailNotifications)
	assert.True(t, settings.PushNotifications)
	assert.JSONEq(t, models.DefaultDashboardLayout, settings.DashboardLayout)
	assert.Contains(t, store.settings, uint(1))

	again, err := service.GetSettings(1)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateAndResetSettings(t *testing.T) {
	_, _, service := newUserFixture()

	dark := false
	layout := json.RawMessage(`{"widgets":["revenue"]}`)
	updated, err := service.UpdateSettings(1, SettingsInput{
		Theme:              "dark",
		Language:           "nl",
		EmailNotifications: &dark,
		DashboardLayout:    layout,
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "nl", updated.Language)
	assert.False(t, updated.EmailNotifications)
	assert.True(t, updated.PushNotifications)
	assert.JSONEq(t, string(layout), updated.DashboardLayout)

	reset, err := service.ResetSettings(1)
	require.NoError(t, err)
	assert.Equal(t, "light", reset.Theme)
	assert.Equal(t, "en", reset.Language)
	assert.True(t, reset.EmailNotifications)
	assert.JSONEq(t, models.DefaultDashboardLayout, reset.DashboardLayout)
}

func TestGetStatistics(t *testing.T) {
	_, _, service := newUserFixture()

	stats, err := service.GetStatistics(1)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalRevenue)
}
