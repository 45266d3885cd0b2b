package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarhub-backend/internal/model"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Solar Panel 300W", Category: "Solar Panels", Price: "₹12,000", Stock: 45},
		{ID: 2, Name: "Inverter 5kW", Category: "Inverters", Price: "₹45,000", Stock: 12},
		{ID: 3, Name: "Battery 200Ah", Category: "Batteries", Price: "₹18,000", Stock: 23},
		{ID: 4, Name: "Mounting Structure", Category: "Accessories", Price: "₹8,500", Stock: 34},
	}
}

func TestProductSortByPriceIsNumeric(t *testing.T) {
	svc := NewProductService(fixtureProducts(), nil)

	_, err := svc.Sort("price")
	require.NoError(t, err)

	view := svc.View()
	// "₹8,500" sorts below "₹12,000" numerically despite the string order
	assert.Equal(t, "Mounting Structure", view.Records[0].Name)
	assert.Equal(t, "Inverter 5kW", view.Records[3].Name)
}

func TestProductCreateValidatesPrice(t *testing.T) {
	svc := NewProductService(nil, nil)
	stock := 10

	_, err := svc.Create(CreateProductRequest{Name: "Cable Kit", Category: "Accessories", Price: "cheap", Stock: &stock})
	assert.Error(t, err)

	product, err := svc.Create(CreateProductRequest{Name: "Cable Kit", Category: "Accessories", Price: "₹2,500", Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, 10, product.Stock)
}

func TestProductDeleteAnnouncesRemoval(t *testing.T) {
	notifications := NewNotificationService(nil, nil)
	svc := NewProductService(fixtureProducts(), notifications)

	require.NoError(t, svc.Delete(2))
	assert.ErrorIs(t, svc.Delete(2), ErrNotFound)

	feed := notifications.List(model.NotificationInventory)
	require.Len(t, feed, 1)
	assert.Contains(t, feed[0].Message, "Inverter 5kW")
}

func TestProductSearchMatchesCategory(t *testing.T) {
	svc := NewProductService(fixtureProducts(), nil)

	svc.Search("invert")
	view := svc.View()
	require.Len(t, view.Records, 1)
	assert.Equal(t, "Inverter 5kW", view.Records[0].Name)
}
