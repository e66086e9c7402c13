package models

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionReceived  SubmissionStatus = "received"
	SubmissionRejected  SubmissionStatus = "rejected"
	SubmissionFailed    SubmissionStatus = "failed"
	SubmissionCompleted SubmissionStatus = "completed"
)

// Submission is an audit record of one upload. It never carries analysis results.
type Submission struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OriginalFileName string           `gorm:"type:text" json:"original_filename"`
	FileType         string           `gorm:"type:text" json:"file_type"`
	FileSize         int64            `json:"file_size"`
	Status           SubmissionStatus `gorm:"not null;default:'received'" json:"status"`
	ErrorMessage     *string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
