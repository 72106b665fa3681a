package mailer

import (
	"fmt"
	"html"
	"strings"
)

// OTPMessage builds the admin login code email.
func OTPMessage(to, otp string) Message {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2>Admin Login Verification</h2>
			<p>Your One-Time Password (OTP) for admin login is:</p>
			<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; text-align: center;">
				<h1 style="letter-spacing: 5px; margin: 0;">%s</h1>
			</div>
			<p>This OTP is valid for 10 minutes only. Do not share it with anyone.</p>
		</div>`, otp)

	return Message{
		To:      to,
		Subject: "Admin Login OTP",
		HTML:    body,
	}
}

// ContactNotification builds the email sent to the company inbox; Reply-To
// is set to the submitter so staff can answer directly.
func ContactNotification(to, name, email, phone, subject, message string) Message {
	if phone == "" {
		phone = "Not provided"
	}

	body := fmt.Sprintf(`
		<h2>New Contact Form Submission</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(phone),
		html.EscapeString(subject),
		htmlMessage(message))

	return Message{
		To:      to,
		ReplyTo: email,
		Subject: "New Contact Form: " + subject,
		HTML:    body,
	}
}

// ContactAutoReply builds the confirmation sent back to the submitter.
func ContactAutoReply(to, name, subject, message string) Message {
	body := fmt.Sprintf(`
		<h2>Thank you for contacting us!</h2>
		<p>Dear %s,</p>
		<p>We have received your message and will get back to you within 24 hours during business days.</p>
		<h3>Your Message Summary:</h3>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>`,
		html.EscapeString(name),
		html.EscapeString(subject),
		htmlMessage(message))

	return Message{
		To:      to,
		Subject: "Thank you for contacting us - " + subject,
		HTML:    body,
	}
}

func htmlMessage(message string) string {
	return strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
}
