// internal/pkg/email/templates_test.go
package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$0.00", formatPrice(0))
	assert.Equal(t, "$19.99", formatPrice(1999))
	assert.Equal(t, "$4500.00", formatPrice(450000))
}

func TestRenderOrderConfirmation(t *testing.T) {
	data := OrderEmailData{
		SiteName:     "Teromix",
		OrderNumber:  "TMX-20260830-00042",
		CustomerName: "Nino K.",
		Items: []OrderItemData{
			{ProductName: "Live Edge Dining Table", DimensionLabel: "180cm, seats 6", Quantity: 1, UnitPrice: 195000, TotalPrice: 195000},
			{ProductName: "Beech Work Desk", Quantity: 2, UnitPrice: 86000, TotalPrice: 172000},
		},
		TotalAmount: 367000,
		SubmittedAt: time.Now(),
	}

	html, err := renderTemplate("order_confirmation", data)
	require.NoError(t, err)

	assert.Contains(t, html, "TMX-20260830-00042")
	assert.Contains(t, html, "Nino K.")
	assert.Contains(t, html, "Live Edge Dining Table")
	assert.Contains(t, html, "180cm, seats 6")
	assert.Contains(t, html, "$3670.00")
}

func TestRenderInquiryNotification(t *testing.T) {
	data := InquiryEmailData{
		Kind:     "custom_order",
		Name:     "David M.",
		Email:    "david@example.com",
		Message:  "Looking for a built-in wardrobe under a sloped ceiling.",
		WoodType: "Walnut",
		Budget:   "$3000-5000",
	}

	html, err := renderTemplate("inquiry_notification", data)
	require.NoError(t, err)

	assert.Contains(t, html, "Custom Order")
	assert.Contains(t, html, "David M.")
	assert.Contains(t, html, "Walnut")

	// Contact inquiries get the generic heading
	data.Kind = "contact"
	html, err = renderTemplate("inquiry_notification", data)
	require.NoError(t, err)
	assert.Contains(t, html, "Contact")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := renderTemplate("no_such_template", nil)
	assert.Error(t, err)
}
