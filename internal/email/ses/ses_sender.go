package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"leskita/internal/domain"
	"leskita/internal/port"
	"leskita/internal/report"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendPaymentReminder(ctx context.Context, toEmail, toName string, payment *domain.PaymentRecord) error {
	amount := report.FormatIDR(payment.Amount)
	date := report.FormatDate(payment.PaymentDate)
	if payment.DueDate != nil {
		date = report.FormatDate(*payment.DueDate)
	}

	subject := fmt.Sprintf("Pengingat Pembayaran Les - %s", amount)
	htmlBody := buildReminderHTML(toName, payment.StudentSubject, amount, date, s.fromName)
	textBody := fmt.Sprintf(
		"Halo %s,\n\nIni adalah pengingat pembayaran les %s sebesar %s dengan jatuh tempo %s.\n\nMohon abaikan email ini jika pembayaran sudah dilakukan.\n\nTerima kasih,\n%s",
		toName, payment.StudentSubject, amount, date, s.fromName,
	)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReminderHTML(name, subject, amount, date, senderName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="id">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Pengingat Pembayaran</h2>
  <p>Halo %s,</p>
  <p>Ini adalah pengingat pembayaran les <strong>%s</strong>:</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 6px 12px; color: #666;">Jumlah</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Jatuh Tempo</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
  <p>Mohon abaikan email ini jika pembayaran sudah dilakukan.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, name, subject, amount, date, senderName)
}
