package reply

import "time"

type CreateReplyRequest struct {
	ThreadID uint64  `json:"threadId" binding:"required"`
	Content  string  `json:"content" binding:"required,notblank"`
	Image    *string `json:"image" binding:"omitempty,max=255"`
}

// ReplyRecord is the mutation response shape; no UpdatedAt outward.
type ReplyRecord struct {
	ID        uint64    `json:"id"`
	ThreadID  uint64    `json:"threadId"`
	AuthorID  uint64    `json:"authorId"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
