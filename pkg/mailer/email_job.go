package mailer

// EmailJob is the JSON payload put on the RabbitMQ email queue. The email
// worker renders and sends it; producers enqueue fire-and-forget.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// VerificationEmail builds the registration verification email job.
func VerificationEmail(to, verifyLink string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Verify your email address",
		Text:    "Please verify your email: " + verifyLink,
		HTML: "<h2>Email Verification</h2>" +
			"<p>Click the link below to verify your email:</p>" +
			`<a href="` + verifyLink + `">Verify Email</a>`,
	}
}
