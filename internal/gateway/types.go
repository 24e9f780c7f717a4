package gateway

import "time"

// User represents an account on the analysis service.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProcessingStatus describes where a document is in the remote analysis
// pipeline. It is owned by the service; the client only reads it.
type ProcessingStatus string

// Remote processing states.
const (
	ProcessingPending    ProcessingStatus = "pending"
	ProcessingInProgress ProcessingStatus = "processing"
	ProcessingCompleted  ProcessingStatus = "completed"
	ProcessingFailed     ProcessingStatus = "failed"
)

// Document represents a server-owned document record.
type Document struct {
	ID               int64            `json:"id"`
	Filename         string           `json:"filename"`
	OriginalFilename string           `json:"original_filename"`
	FileSize         int64            `json:"file_size"`
	ContentType      string           `json:"content_type"`
	Processed        bool             `json:"processed"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

// RegisterRequest contains the fields required to create an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials contains the fields required to authenticate.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// ProcessAck acknowledges a start-processing request.
type ProcessAck struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	DocumentID int64  `json:"document_id"`
}

// StatusReport is the response of the processing status endpoint.
type StatusReport struct {
	Status    ProcessingStatus `json:"status"`
	Processed bool             `json:"processed"`
}

// Sentiment classifies the overall tone of a processed document.
type Sentiment string

// Sentiment values.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Insights is the structured analysis output for a processed document.
type Insights struct {
	Summary   string    `json:"summary"`
	KeyPoints []string  `json:"key_points"`
	Entities  []string  `json:"entities"`
	Sentiment Sentiment `json:"sentiment"`
	WordCount int       `json:"word_count"`
}
