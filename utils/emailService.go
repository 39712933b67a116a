package utils

import (
	"bookwise/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Bookwise <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F7F5F0; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2F4830; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #2F3B2F; line-height: 1.6; }
			.content h2 { color: #2F4830; margin-top: 0; }
			.footer { background-color: #F7F5F0; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #EDF3ED; padding: 15px; border-radius: 4px; border-left: 4px solid #8BA888; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>BOOKWISE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; %d Bookwise. All rights reserved.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent, time.Now().Year())
}

// SendSubscriptionActiveEmail notifies a user that their subscription started.
func SendSubscriptionActiveEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your Bookwise subscription is now active. You have full access to every
		book summary, chapter guide and implementation plan in the library.</p>
		<div class="info-box">You can manage your plan any time from the billing portal.</div>`, name)

	if err := SendEmail([]string{email}, "Your subscription is active", getEmailTemplate("Welcome aboard!", body)); err != nil {
		log.Printf("[EMAIL] Failed to send activation email to %s: %v", email, err)
	}
}

// SendSubscriptionCanceledEmail notifies a user that their subscription ended.
func SendSubscriptionCanceledEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your Bookwise subscription has been canceled. Your reading progress and
		notes are kept, and you can resubscribe whenever you like.</p>`, name)

	if err := SendEmail([]string{email}, "Your subscription was canceled", getEmailTemplate("Sorry to see you go", body)); err != nil {
		log.Printf("[EMAIL] Failed to send cancellation email to %s: %v", email, err)
	}
}
