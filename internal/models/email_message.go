package models

// Email message kinds published to the notifications topic.
const (
	EmailKindRegistrationConfirmed = "registration_confirmed"
	EmailKindRegistrationCancelled = "registration_cancelled"
	EmailKindOtp                   = "otp"
)

// EmailMessage is the payload published to the email notifications topic.
// Delivery is best-effort; a downstream consumer renders and sends the mail.
type EmailMessage struct {
	MessageID string            `json:"message_id"` // Unique id, doubles as the Kafka key
	Kind      string            `json:"kind"`       // One of the EmailKind values
	To        string            `json:"to"`         // Recipient address
	Subject   string            `json:"subject"`    // Rendered subject line
	Data      map[string]string `json:"data"`       // Template values (event title, otp code, ...)
	Timestamp int64             `json:"timestamp"`  // Unix seconds at publish time
}
