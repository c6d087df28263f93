package notify

import (
	"fmt"
	"net/smtp"

	"abstract-portal/config"

	"go.uber.org/zap"
)

// Submission carries everything the confirmation mail needs. The access
// token is embedded in the magic link and nowhere else.
type Submission struct {
	ID          string
	Title       string
	Authors     string
	Category    string
	Department  string
	Status      string
	Email       string
	AccessToken string
	HasPDF      bool
}

// Sender is the notification capability injected into the submission
// workflow. Implementations are best-effort: the caller never fails a
// submission on a send error.
type Sender interface {
	SendSubmissionConfirmation(sub Submission) error
}

// NewSender picks the SMTP sender when mail is configured, otherwise a no-op
// that just logs what would have been sent.
func NewSender(logger *zap.Logger) Sender {
	if config.SMTP_HOST == "" || config.SMTP_FROM == "" {
		logger.Info("SMTP not configured, submission emails disabled")
		return &noopSender{logger: logger}
	}
	return &smtpSender{
		host:      config.SMTP_HOST,
		port:      config.SMTP_PORT,
		from:      config.SMTP_FROM,
		password:  config.SMTP_PASSWORD,
		publicURL: config.PUBLIC_URL,
	}
}

type smtpSender struct {
	host      string
	port      string
	from      string
	password  string
	publicURL string
}

func (s *smtpSender) SendSubmissionConfirmation(sub Submission) error {
	auth := smtp.PlainAuth("", s.from, s.password, s.host)

	link := fmt.Sprintf("%s/api/abstracts/view/%s", s.publicURL, sub.AccessToken)
	subject := "Research Forum - Abstract Submission Confirmation"

	pdfLine := ""
	if sub.HasPDF {
		pdfLine = "<li>PDF: Uploaded ✓</li>"
	}
	body := fmt.Sprintf(`<h2>Thank you for your submission!</h2>
<p>Dear Author,</p>
<p>Your abstract titled "<strong>%s</strong>" has been successfully submitted.</p>
<p><strong>Submission Details:</strong></p>
<ul>
  <li>Abstract ID: %s</li>
  <li>Title: %s</li>
  <li>Authors: %s</li>
  <li>Category: %s</li>
  <li>Department: %s</li>
  <li>Status: %s</li>
  %s
</ul>
<p>You can check your submission status at any time using your personal link:</p>
<p><a href="%s">%s</a></p>
<p>Keep this link private; anyone who has it can see your submission status.</p>
<p>Best regards,<br>Research Forum Team</p>`,
		sub.Title, sub.ID, sub.Title, sub.Authors, sub.Category, sub.Department,
		sub.Status, pdfLine, link, link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + s.from + "\r\n" +
		"To: " + sub.Email + "\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{sub.Email}, message)
}

type noopSender struct {
	logger *zap.Logger
}

func (n *noopSender) SendSubmissionConfirmation(sub Submission) error {
	// Token deliberately left out of the log line.
	n.logger.Info("skipping confirmation email",
		zap.String("abstract_id", sub.ID),
		zap.String("to", sub.Email),
	)
	return nil
}
