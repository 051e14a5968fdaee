package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"fast-food/pkg/mailer"
	"fast-food/pkg/metrics"
	"fast-food/pkg/utils"

	"go.uber.org/zap"
)

const defaultSendTimeout = 10 * time.Second

var statusEmailTemplate = template.Must(template.New("status").Parse(`<h2>Hello {{.CustomerName}}!</h2>
<p>Your order #{{.OrderID}} has been <strong>{{.Status}}</strong>.</p>
<p>Total Amount: Rs. {{printf "%.2f" .TotalAmount}}</p>
<p>We'll notify you when your order is ready for delivery.</p>
<br>
<p>Thank you for choosing {{.Brand}}!</p>
`))

type statusEmailData struct {
	CustomerName string
	OrderID      int64
	Status       string
	TotalAmount  float64
	Brand        string
}

// NotificationService delivers best-effort customer emails. Failures are
// logged and counted, never returned.
type NotificationService interface {
	SendStatusUpdate(ctx context.Context, toEmail, customerName string, orderID int64, status string, totalAmount float64)
}

type notificationService struct {
	sender  mailer.Sender
	from    string
	brand   string
	timeout time.Duration
	log     *zap.Logger
}

func NewNotificationService(sender mailer.Sender, config utils.EmailConfig, log *zap.Logger) NotificationService {
	brand := config.FromName
	if brand == "" {
		brand = "Flavor Feast"
	}
	return &notificationService{
		sender:  sender,
		from:    config.From,
		brand:   brand,
		timeout: defaultSendTimeout,
		log:     log.With(zap.String("service", "notification")),
	}
}

func statusSubject(orderID int64, brand string) string {
	return fmt.Sprintf("Order #%d Status Update - %s", orderID, brand)
}

func (s *notificationService) SendStatusUpdate(ctx context.Context, toEmail, customerName string, orderID int64, status string, totalAmount float64) {
	var body bytes.Buffer
	err := statusEmailTemplate.Execute(&body, statusEmailData{
		CustomerName: customerName,
		OrderID:      orderID,
		Status:       status,
		TotalAmount:  totalAmount,
		Brand:        s.brand,
	})
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		s.log.Error("Failed to render status email", zap.Error(err), zap.Int64("order_id", orderID))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err = s.sender.Send(ctx, mailer.Message{
		From:     s.from,
		FromName: s.brand,
		To:       toEmail,
		Subject:  statusSubject(orderID, s.brand),
		HTMLBody: body.String(),
	})
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		s.log.Warn("Status email not delivered",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.String("to", toEmail))
		return
	}

	metrics.Notifications.WithLabelValues("sent").Inc()
	s.log.Info("Status email sent",
		zap.Int64("order_id", orderID),
		zap.String("status", status))
}
