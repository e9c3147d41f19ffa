package thread

import (
	"fmt"
	"slices"
	"sort"

	"circle-backend/internal/apperr"
	"circle-backend/internal/app/user"
)

// View aggregation. Pure functions: no I/O, and raw store records are never
// mutated, every view is a freshly built value.

func newThreadView(raw *Thread) ThreadView {
	return ThreadView{
		ID:           raw.ID,
		Content:      raw.Content,
		Image:        raw.Image,
		AuthorID:     raw.AuthorID,
		CreatedAt:    raw.CreatedAt,
		Author:       user.NewProfile(&raw.Author),
		TotalReplies: len(raw.Replies),
		TotalLikes:   len(raw.Likes),
	}
}

// buildFeedPayload produces the cacheable, viewer-independent feed listing:
// newest first, ties keep store order. LikerIDs carry what the per-viewer
// overlay needs; the overlay itself is never part of the payload.
func buildFeedPayload(raws []Thread) []CachedThread {
	payload := make([]CachedThread, 0, len(raws))
	for i := range raws {
		raw := &raws[i]
		likerIDs := make([]uint64, 0, len(raw.Likes))
		for _, like := range raw.Likes {
			likerIDs = append(likerIDs, like.AuthorID)
		}
		payload = append(payload, CachedThread{
			ThreadView: newThreadView(raw),
			LikerIDs:   likerIDs,
		})
	}

	sort.SliceStable(payload, func(i, j int) bool {
		return payload[i].CreatedAt.After(payload[j].CreatedAt)
	})

	return payload
}

// overlayFeed applies the viewer-dependent overlay to a shared payload. Runs
// on every response path, cache hit or miss, so one viewer's isLiked can
// never reach another.
func overlayFeed(payload []CachedThread, viewerID uint64) []FeedItem {
	feed := make([]FeedItem, 0, len(payload))
	for _, entry := range payload {
		feed = append(feed, FeedItem{
			ThreadView: entry.ThreadView,
			IsLiked:    slices.Contains(entry.LikerIDs, viewerID),
		})
	}
	return feed
}

// buildDetail renders a single thread for the given viewer: likes without
// their own timestamps, replies newest first.
func buildDetail(raw *Thread, viewerID uint64) (*ThreadDetail, error) {
	if raw == nil {
		return nil, fmt.Errorf("requested thread does not exist: %w", apperr.ErrNotFound)
	}

	likes := make([]LikeView, 0, len(raw.Likes))
	isLiked := false
	for _, like := range raw.Likes {
		likes = append(likes, LikeView{
			ID:       like.ID,
			ThreadID: like.ThreadID,
			AuthorID: like.AuthorID,
		})
		if like.AuthorID == viewerID {
			isLiked = true
		}
	}

	replies := make([]ReplyView, 0, len(raw.Replies))
	for _, reply := range raw.Replies {
		replies = append(replies, ReplyView{
			ID:        reply.ID,
			ThreadID:  reply.ThreadID,
			AuthorID:  reply.AuthorID,
			Content:   reply.Content,
			Image:     reply.Image,
			CreatedAt: reply.CreatedAt,
		})
	}
	sort.SliceStable(replies, func(i, j int) bool {
		return replies[i].CreatedAt.After(replies[j].CreatedAt)
	})

	return &ThreadDetail{
		ThreadView: newThreadView(raw),
		Likes:      likes,
		Replies:    replies,
		IsLiked:    isLiked,
	}, nil
}

// buildAuthorThreads renders the per-author listing. An author with zero
// threads is a failure, not an empty list: long-standing API behavior, kept
// deliberately and covered by tests.
func buildAuthorThreads(raws []Thread) ([]AuthorThreadItem, error) {
	if len(raws) == 0 {
		return nil, fmt.Errorf("requested user does not have any threads: %w", apperr.ErrEmptyResult)
	}

	items := make([]AuthorThreadItem, 0, len(raws))
	for i := range raws {
		raw := &raws[i]
		items = append(items, AuthorThreadItem{
			ID:           raw.ID,
			Content:      raw.Content,
			Image:        raw.Image,
			AuthorID:     raw.AuthorID,
			CreatedAt:    raw.CreatedAt,
			TotalReplies: len(raw.Replies),
			TotalLikes:   len(raw.Likes),
		})
	}
	return items, nil
}

func newThreadRecord(raw *Thread) *ThreadRecord {
	return &ThreadRecord{
		ID:               raw.ID,
		Content:          raw.Content,
		Image:            raw.Image,
		AuthorID:         raw.AuthorID,
		ModerationLabels: raw.ModerationLabels,
		CreatedAt:        raw.CreatedAt,
	}
}
