package entity

import (
	"time"

	"github.com/douanani/rihladz-admin/pkg/status"
)

// Message is an inbound contact message.
type Message struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email,omitempty"`
	Subject    string           `json:"subject,omitempty"`
	Body       string           `json:"body,omitempty"`
	Status     status.ReadState `json:"status"`
	ReceivedAt time.Time        `json:"receivedAt,omitempty"`
}

// EntityID implements Record.
func (m Message) EntityID() string { return m.ID }

// Field implements Record.
func (m Message) Field(name string) string {
	switch name {
	case "id":
		return m.ID
	case "name":
		return m.Name
	case "email":
		return m.Email
	case "subject":
		return m.Subject
	case "body":
		return m.Body
	case "status":
		return string(m.Status)
	}
	return ""
}

// Unread reports whether the message has never been opened.
func (m Message) Unread() bool {
	return m.Status != status.Read
}

// MergeMessage folds form fields into a message. The status key only
// moves the message forward; read is never undone.
func MergeMessage(m Message, fields map[string]string) Message {
	for name, value := range fields {
		switch name {
		case "name":
			m.Name = value
		case "email":
			m.Email = value
		case "subject":
			m.Subject = value
		case "body":
			m.Body = value
		case "status":
			if next, err := status.ParseReadState(value); err == nil && m.Status.CanTransition(next) == nil {
				m.Status = next
			}
		}
	}
	return m
}
