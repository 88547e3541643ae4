// Package mail provides the outbound notification transport.
package mail

import "context"

// Attachment is a file carried inline with a message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a single outbound email. Body is plain text; the sender
// address defaults to the configured from address when Sender is empty.
type Message struct {
	Subject     string
	To          []string
	Body        string
	Sender      string
	ReplyTo     string
	Attachments []Attachment
}

// Attach appends an attachment to the message
func (m *Message) Attach(filename, contentType string, data []byte) {
	m.Attachments = append(m.Attachments, Attachment{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	})
}

// HasAttachments reports whether the message carries any attachment
func (m *Message) HasAttachments() bool { return len(m.Attachments) > 0 }

// Mailer is any service that can deliver a message. Send blocks until the
// transport accepts or rejects the message; there is no retry or queueing.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
