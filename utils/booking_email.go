package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendBookingConfirmationEmail sends a best-effort confirmation email after a
// booking is created. Without SMTP configuration it logs a mock email instead
// of failing, so booking creation never depends on a mail server.
func SendBookingConfirmationEmail(recipientEmail, fullName, bookingRef, itemName, startDate, endDate string, totalAmount float64) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] booking confirmation to:%s ref:%s item:%s", MaskEmail(recipientEmail), bookingRef, itemName)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	fullName = safe(fullName)
	itemName = safe(itemName)
	bookingRef = safe(bookingRef)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Booking confirmed - %s", bookingRef)

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your booking %s for %s has been received.\n"+
			"Dates: %s to %s\n"+
			"Total amount: %.2f\n\n"+
			"Payment is pending; you will be notified once it is processed.\n",
		fullName, bookingRef, itemName, startDate, endDate, totalAmount,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", MaskEmail(recipientEmail), err)
		return err
	}

	log.Printf("Booking confirmation sent to %s", MaskEmail(recipientEmail))
	return nil
}
