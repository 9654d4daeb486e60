package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackCategory classifies a piece of user feedback.
type FeedbackCategory string

const (
	FeedbackProblemaTecnico  FeedbackCategory = "problema_tecnico"
	FeedbackSugestaoMelhoria FeedbackCategory = "sugestao_melhoria"
	FeedbackElogio           FeedbackCategory = "elogio"
)

// FeedbackMode controls whether a feedback entry is publicly listable.
type FeedbackMode string

const (
	FeedbackModePublic  FeedbackMode = "public"
	FeedbackModePrivate FeedbackMode = "private"
)

// Feedback is a star rating with an optional comment left by a user.
type Feedback struct {
	Base
	UserID   string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Stars    int              `gorm:"not null" json:"stars"`
	Comment  string           `gorm:"size:500" json:"comment,omitempty"`
	Category FeedbackCategory `gorm:"size:20;not null" json:"category"`
	Mode     FeedbackMode     `gorm:"size:10;not null;default:'private'" json:"feedback_mode"`
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"size:1000;not null" json:"message"`
	Viewed    bool      `gorm:"default:false" json:"viewed"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new messages.
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		m.ID = id.String()
	}
	return nil
}
