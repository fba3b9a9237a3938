package entity

import (
	"context"
	"time"
)

// Lead is one inbound WhatsApp message from a prospective customer.
type Lead struct {
	ID        int64     `db:"id" json:"id" csv:"ID"`
	UserID    string    `db:"user_id" json:"user_id" csv:"-"`
	Phone     string    `db:"phone" json:"phone" csv:"Phone"`
	Name      string    `db:"name" json:"name" csv:"Name"`
	Message   string    `db:"message" json:"message" csv:"Message"`
	Timestamp time.Time `db:"timestamp" json:"timestamp" csv:"Timestamp"`
	Handled   int       `db:"handled" json:"handled" csv:"Handled"`
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) error
	ListByUser(ctx context.Context, userID string) ([]*Lead, error)
}

func NewLead(userID, phone, name, message string) *Lead {
	return &Lead{
		UserID:    userID,
		Phone:     phone,
		Name:      name,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Handled:   0,
	}
}
