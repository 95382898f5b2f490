package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// OrderDetails is the data rendered into both notification emails.
type OrderDetails struct {
	OrderID     int64
	FirstName   string
	SecondName  string
	Phone       string
	Email       string
	City        string
	Town        string
	Address1    string
	Address2    string
	ProductName string
	Quantity    int
	Total       float64
}

var customerTemplate = template.Must(template.New("customer").Parse(`
<h2>Thank you for your order!</h2>
<p>Hi {{.FirstName}} {{.SecondName}},</p>
<p><strong>Order ID:</strong> {{.OrderID}}</p>
<p><strong>Product:</strong> {{.ProductName}} ({{.Quantity}}x)</p>
<p><strong>Total Price:</strong> Kshs{{printf "%.2f" .Total}}</p>
<p><strong>Shipping Address:</strong></p>
<p>{{.Address1}}<br />
{{- if .Address2}}
   {{.Address2}}<br />
{{- end}}
   {{.Town}}, {{.City}}</p>
<p><strong>Contact:</strong> {{.Phone}}</p>
<p>We'll ship your order within 2-3 business days and send you a tracking number.</p>
<p>Thank you for supporting Bloom&amp;Shine!</p>
`))

var ownerTemplate = template.Must(template.New("owner").Parse(`
<h3>New Order Received!</h3>
<p><strong>Order ID:</strong> {{.OrderID}}</p>
<p><strong>Customer:</strong> {{.FirstName}} {{.SecondName}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Quantity:</strong> {{.Quantity}}</p>
<p><strong>Total:</strong> Kshs{{printf "%.2f" .Total}}</p>
<p><strong>Address:</strong> {{.Address1}}, {{if .Address2}}{{.Address2}}, {{end}}{{.Town}}, {{.City}}</p>
`))

// CustomerConfirmation builds the confirmation email addressed to the buyer.
func CustomerConfirmation(order OrderDetails) (Message, error) {
	var body bytes.Buffer
	if err := customerTemplate.Execute(&body, order); err != nil {
		return Message{}, fmt.Errorf("rendering customer confirmation: %w", err)
	}

	return Message{
		To:       order.Email,
		Subject:  fmt.Sprintf("Order Confirmation - %s", order.ProductName),
		HTMLBody: body.String(),
	}, nil
}

// OwnerNotification builds the new-order alert addressed to the shop
// operator's mailbox.
func OwnerNotification(order OrderDetails, ownerEmail string) (Message, error) {
	var body bytes.Buffer
	if err := ownerTemplate.Execute(&body, order); err != nil {
		return Message{}, fmt.Errorf("rendering owner notification: %w", err)
	}

	return Message{
		To:       ownerEmail,
		Subject:  fmt.Sprintf("New Order - %s %s", order.FirstName, order.SecondName),
		HTMLBody: body.String(),
	}, nil
}
