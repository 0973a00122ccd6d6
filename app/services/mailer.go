package services

import (
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/utils/format"
	"github.com/pkg/errors"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config Config
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		config: cfg,
		send:   smtp.SendMail,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	headers := []string{
		"From: " + m.config.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := m.send(addr, auth, m.config.From, []string{to}, []byte(msg))
	return errors.Wrapf(err, "send email to %s", to)
}

func (m *Mailer) SendOrderConfirmation(_ context.Context, order *models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}
	body, err := BuildOrderEmailBody(order)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Your FitStore order %s", order.OrderCode)
	return m.SendHTMLEmail(order.CustomerEmail, subject, body)
}

var orderEmailTemplate = template.Must(template.New("order").Funcs(template.FuncMap{
	"money": format.FormatMoney,
	"variant": func(item models.OrderItem) string {
		return strings.TrimSpace(string(item.Size) + " " + string(item.Color))
	},
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thanks for your order, {{.CustomerName}}!</h2>
  <p>Order <strong>{{.OrderCode}}</strong></p>
  <table>{{range .OrderItems}}<tr><td>{{.ProductName}} {{variant .}}</td><td>{{.Qty}}</td><td>{{money .LineTotal}}</td></tr>{{end}}</table>
  <p>Subtotal: {{money .Subtotal}}<br>Shipping: {{money .Shipping}}<br>Tax: {{money .Tax}}<br><strong>Total: {{money .Total}}</strong></p>
</body>
</html>`))

// BuildOrderEmailBody renders the confirmation mail; customer and product
// text is HTML-escaped.
func BuildOrderEmailBody(order *models.Order) (string, error) {
	var body strings.Builder
	if err := orderEmailTemplate.Execute(&body, order); err != nil {
		return "", errors.Wrap(err, "render order email")
	}
	return body.String(), nil
}
