package thread

import (
	"time"

	"circle-backend/internal/app/user"
)

// Thread is the raw store record, expanded with author, likes and replies on
// fetch. UpdatedAt never appears in an outward view.
type Thread struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	Content          string    `gorm:"not null" json:"content"`
	Image            *string   `json:"image"`
	AuthorID         uint64    `gorm:"not null;index" json:"authorId"`
	ModerationLabels []string  `gorm:"serializer:json" json:"badLabels"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`

	Author  user.User `gorm:"foreignKey:AuthorID" json:"-"`
	Likes   []Like    `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"-"`
	Replies []Reply   `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"-"`
}

// Like marks "author liked thread". Uniqueness per (thread, author) is a
// store constraint.
type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ThreadID  uint64    `gorm:"not null;uniqueIndex:idx_likes_thread_author" json:"threadId"`
	AuthorID  uint64    `gorm:"not null;uniqueIndex:idx_likes_thread_author" json:"authorId"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// Reply is a thread-scoped child record.
type Reply struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ThreadID  uint64    `gorm:"not null;index" json:"threadId"`
	AuthorID  uint64    `gorm:"not null" json:"authorId"`
	Content   string    `gorm:"not null" json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// ThreadView is the viewer-independent slice of a feed entry: redacted
// author, counts, no UpdatedAt. Safe to share between viewers.
type ThreadView struct {
	ID           uint64       `json:"id"`
	Content      string       `json:"content"`
	Image        *string      `json:"image"`
	AuthorID     uint64       `json:"authorId"`
	CreatedAt    time.Time    `json:"createdAt"`
	Author       user.Profile `json:"author"`
	TotalReplies int          `json:"totalReplies"`
	TotalLikes   int          `json:"totalLikes"`
}

// CachedThread is what the feed cache stores: the shared view plus the liker
// set the per-viewer overlay is derived from. IsLiked itself is never cached.
type CachedThread struct {
	ThreadView
	LikerIDs []uint64 `json:"likerIds"`
}

// FeedItem is one feed response entry: shared view plus the viewer-dependent
// overlay.
type FeedItem struct {
	ThreadView
	IsLiked bool `json:"isLiked"`
}

// LikeView strips the like's own timestamps.
type LikeView struct {
	ID       uint64 `json:"id"`
	ThreadID uint64 `json:"threadId"`
	AuthorID uint64 `json:"authorId"`
}

type ReplyView struct {
	ID        uint64    `json:"id"`
	ThreadID  uint64    `json:"threadId"`
	AuthorID  uint64    `json:"authorId"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// ThreadDetail is the single-thread view: enumerated likes, replies sorted
// newest-first. Always computed fresh, never cached.
type ThreadDetail struct {
	ThreadView
	Likes   []LikeView  `json:"likes"`
	Replies []ReplyView `json:"replies"`
	IsLiked bool        `json:"isLiked"`
}

// AuthorThreadItem is one entry of the per-author listing: thread plus counts,
// no author body, no viewer-dependent fields.
type AuthorThreadItem struct {
	ID           uint64    `json:"id"`
	Content      string    `json:"content"`
	Image        *string   `json:"image"`
	AuthorID     uint64    `json:"authorId"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalReplies int       `json:"totalReplies"`
	TotalLikes   int       `json:"totalLikes"`
}

// ThreadRecord is the mutation response shape (posted / deleted thread).
type ThreadRecord struct {
	ID               uint64    `json:"id"`
	Content          string    `json:"content"`
	Image            *string   `json:"image"`
	AuthorID         uint64    `json:"authorId"`
	ModerationLabels []string  `json:"badLabels"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateThreadRequest struct {
	Content          string   `json:"content" binding:"required,notblank"`
	Image            *string  `json:"image" binding:"omitempty,max=255"`
	ModerationLabels []string `json:"badLabels"`
}
