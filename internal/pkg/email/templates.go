// internal/pkg/email/templates.go
package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Templates are compiled in rather than loaded from disk so the binary is
// self-contained.

var templateFuncs = template.FuncMap{
	"price": formatPrice,
}

// formatPrice renders an amount in cents as a dollar string
func formatPrice(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

const orderConfirmationTemplate = `
<h2>Thank you for your pre-order!</h2>
<p>Dear {{.CustomerName}},</p>
<p>We have received your pre-order and will contact you shortly to finalize your purchase.</p>

<h3>Order {{.OrderNumber}}</h3>
<table cellpadding="6" cellspacing="0" border="1">
  <tr><th>Product</th><th>Dimension</th><th>Quantity</th><th>Price</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.ProductName}}</td>
    <td>{{if .DimensionLabel}}{{.DimensionLabel}}{{else}}&mdash;{{end}}</td>
    <td>{{.Quantity}}</td>
    <td>{{price .UnitPrice}}</td>
  </tr>
  {{end}}
</table>

<p><strong>Total Amount:</strong> {{price .TotalAmount}}</p>

<p>If you have any questions, please don't hesitate to contact us.</p>

<p>Best regards,<br>The {{.SiteName}} Team</p>
`

const orderNotificationTemplate = `
<h2>New Pre-Order Received</h2>

<h3>Customer Information</h3>
<p>Name: {{.CustomerName}}</p>
<p>Email: {{.CustomerEmail}}</p>
<p>Phone: {{.CustomerPhone}}</p>
{{if .CustomerMessage}}<p>Additional Notes: {{.CustomerMessage}}</p>{{end}}

<h3>Order {{.OrderNumber}}</h3>
<table cellpadding="6" cellspacing="0" border="1">
  <tr><th>Product</th><th>Dimension</th><th>Quantity</th><th>Price</th><th>Line Total</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.ProductName}}</td>
    <td>{{if .DimensionLabel}}{{.DimensionLabel}}{{else}}&mdash;{{end}}</td>
    <td>{{.Quantity}}</td>
    <td>{{price .UnitPrice}}</td>
    <td>{{price .TotalPrice}}</td>
  </tr>
  {{end}}
</table>

<p><strong>Total Amount:</strong> {{price .TotalAmount}}</p>
`

const inquiryNotificationTemplate = `
<h2>New {{if eq .Kind "custom_order"}}Custom Order{{else}}Contact{{end}} Inquiry</h2>

<p>Name: {{.Name}}</p>
<p>Email: {{.Email}}</p>
{{if .Phone}}<p>Phone: {{.Phone}}</p>{{end}}
{{if .Subject}}<p>Subject: {{.Subject}}</p>{{end}}
{{if .WoodType}}<p>Wood Type: {{.WoodType}}</p>{{end}}
{{if .Budget}}<p>Budget: {{.Budget}}</p>{{end}}

<h3>Message</h3>
<p>{{.Message}}</p>
`

const newsletterNotificationTemplate = `
<h2>New Newsletter Subscription</h2>
<p>A new user has subscribed to the newsletter:</p>
<p><strong>Email:</strong> {{.SubscriberEmail}}</p>
`

var templates = map[string]*template.Template{
	"order_confirmation":      template.Must(template.New("order_confirmation").Funcs(templateFuncs).Parse(orderConfirmationTemplate)),
	"order_notification":      template.Must(template.New("order_notification").Funcs(templateFuncs).Parse(orderNotificationTemplate)),
	"inquiry_notification":    template.Must(template.New("inquiry_notification").Funcs(templateFuncs).Parse(inquiryNotificationTemplate)),
	"newsletter_notification": template.Must(template.New("newsletter_notification").Funcs(templateFuncs).Parse(newsletterNotificationTemplate)),
}

// renderTemplate renders a named template with the given data
func renderTemplate(name string, data interface{}) (string, error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
