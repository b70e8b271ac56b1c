// Package lead contains the public marketing-site capture records: contact
// inquiries and newsletter subscriptions.
package lead

import (
	"fmt"
	"strings"
	"time"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

var validInquiryStatuses = map[InquiryStatus]bool{
	InquiryStatusNew:       true,
	InquiryStatusContacted: true,
	InquiryStatusClosed:    true,
}

func (s InquiryStatus) IsValid() bool {
	return validInquiryStatuses[s]
}

func (s InquiryStatus) String() string {
	return string(s)
}

// Inquiry is a contact-form submission from the public site. Message text is
// sanitized by the usecase before it reaches the aggregate.
type Inquiry struct {
	id         uint
	name       string
	email      string
	phone      string
	subject    string
	message    string
	sourcePage string
	status     InquiryStatus
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInquiry(name, email, phone, subject, message, sourcePage string) (*Inquiry, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(strings.TrimSpace(message)) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Inquiry{
		name:       name,
		email:      email,
		phone:      phone,
		subject:    subject,
		message:    message,
		sourcePage: sourcePage,
		status:     InquiryStatusNew,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructInquiry(
	id uint,
	name, email, phone, subject, message, sourcePage string,
	status InquiryStatus,
	createdAt, updatedAt time.Time,
) (*Inquiry, error) {
	if id == 0 {
		return nil, fmt.Errorf("inquiry ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Inquiry{
		id:         id,
		name:       name,
		email:      email,
		phone:      phone,
		subject:    subject,
		message:    message,
		sourcePage: sourcePage,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (i *Inquiry) ID() uint              { return i.id }
func (i *Inquiry) Name() string          { return i.name }
func (i *Inquiry) Email() string         { return i.email }
func (i *Inquiry) Phone() string         { return i.phone }
func (i *Inquiry) Subject() string       { return i.subject }
func (i *Inquiry) Message() string       { return i.message }
func (i *Inquiry) SourcePage() string    { return i.sourcePage }
func (i *Inquiry) Status() InquiryStatus { return i.status }
func (i *Inquiry) CreatedAt() time.Time  { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time  { return i.updatedAt }

func (i *Inquiry) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("inquiry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("inquiry ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Inquiry) SetStatus(status InquiryStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	i.status = status
	i.updatedAt = time.Now()
	return nil
}
