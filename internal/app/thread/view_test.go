package thread

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"circle-backend/internal/apperr"
	"circle-backend/internal/app/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func rawThread(id uint64, createdAt time.Time, likes []Like, replies []Reply) Thread {
	return Thread{
		ID:        id,
		Content:   "content",
		AuthorID:  1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(time.Hour),
		Author: user.User{
			ID:        1,
			Username:  "ayesha",
			FullName:  "Ayesha Rahman",
			Email:     "ayesha@circle.dev",
			Password:  "super-secret-hash",
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		},
		Likes:   likes,
		Replies: replies,
	}
}

func TestBuildFeedPayload(t *testing.T) {
	t.Run("sorts newest first", func(t *testing.T) {
		raws := []Thread{
			rawThread(1, baseTime, nil, nil),
			rawThread(2, baseTime.Add(2*time.Minute), nil, nil),
			rawThread(3, baseTime.Add(time.Minute), nil, nil),
		}

		payload := buildFeedPayload(raws)

		require.Len(t, payload, 3)
		assert.Equal(t, uint64(2), payload[0].ID)
		assert.Equal(t, uint64(3), payload[1].ID)
		assert.Equal(t, uint64(1), payload[2].ID)
	})

	t.Run("equal timestamps keep store order", func(t *testing.T) {
		raws := []Thread{
			rawThread(10, baseTime, nil, nil),
			rawThread(11, baseTime, nil, nil),
			rawThread(12, baseTime, nil, nil),
		}

		payload := buildFeedPayload(raws)

		require.Len(t, payload, 3)
		assert.Equal(t, uint64(10), payload[0].ID)
		assert.Equal(t, uint64(11), payload[1].ID)
		assert.Equal(t, uint64(12), payload[2].ID)
	})

	t.Run("computes counts and liker ids", func(t *testing.T) {
		raws := []Thread{
			rawThread(1, baseTime,
				[]Like{{ID: 1, ThreadID: 1, AuthorID: 7}, {ID: 2, ThreadID: 1, AuthorID: 8}},
				[]Reply{{ID: 1, ThreadID: 1, AuthorID: 7, Content: "hi"}},
			),
		}

		payload := buildFeedPayload(raws)

		require.Len(t, payload, 1)
		assert.Equal(t, 2, payload[0].TotalLikes)
		assert.Equal(t, 1, payload[0].TotalReplies)
		assert.Equal(t, []uint64{7, 8}, payload[0].LikerIDs)
	})

	t.Run("does not mutate the raw records", func(t *testing.T) {
		raws := []Thread{rawThread(1, baseTime, []Like{{ID: 1, AuthorID: 7}}, nil)}

		buildFeedPayload(raws)

		assert.Equal(t, "super-secret-hash", raws[0].Author.Password)
		assert.False(t, raws[0].UpdatedAt.IsZero())
	})
}

func TestFeedRedaction(t *testing.T) {
	raws := []Thread{rawThread(1, baseTime, []Like{{ID: 1, AuthorID: 7}}, nil)}
	feed := overlayFeed(buildFeedPayload(raws), 7)

	data, err := json.Marshal(feed)
	require.NoError(t, err)

	body := string(data)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "super-secret-hash")
	assert.NotContains(t, body, "updatedAt")
	// The liker set stays inside the cache entry, the response only carries isLiked.
	assert.NotContains(t, body, "likerIds")
}

func TestOverlayFeed(t *testing.T) {
	raws := []Thread{
		rawThread(1, baseTime, []Like{{ID: 1, ThreadID: 1, AuthorID: 7}}, nil),
		rawThread(2, baseTime.Add(time.Minute), nil, nil),
	}
	payload := buildFeedPayload(raws)

	t.Run("isLiked true iff a like by the viewer exists", func(t *testing.T) {
		feed := overlayFeed(payload, 7)

		require.Len(t, feed, 2)
		assert.False(t, feed[0].IsLiked) // thread 2, no likes
		assert.True(t, feed[1].IsLiked)  // thread 1, liked by 7
	})

	t.Run("changing the viewer changes only isLiked", func(t *testing.T) {
		feedA := overlayFeed(payload, 7)
		feedB := overlayFeed(payload, 8)

		require.Len(t, feedB, 2)
		assert.False(t, feedB[1].IsLiked)
		for i := range feedA {
			assert.Equal(t, feedA[i].ThreadView, feedB[i].ThreadView)
		}
	})
}

func TestFeedScenario(t *testing.T) {
	// A: older, 2 likes (one by viewer 7), 1 reply. B: newer, nothing.
	a := rawThread(1, baseTime,
		[]Like{{ID: 1, ThreadID: 1, AuthorID: 7}, {ID: 2, ThreadID: 1, AuthorID: 9}},
		[]Reply{{ID: 1, ThreadID: 1, AuthorID: 9, Content: "nice"}},
	)
	b := rawThread(2, baseTime.Add(time.Hour), nil, nil)

	feed := overlayFeed(buildFeedPayload([]Thread{a, b}), 7)

	require.Len(t, feed, 2)

	assert.Equal(t, uint64(2), feed[0].ID)
	assert.False(t, feed[0].IsLiked)
	assert.Equal(t, 0, feed[0].TotalLikes)
	assert.Equal(t, 0, feed[0].TotalReplies)

	assert.Equal(t, uint64(1), feed[1].ID)
	assert.True(t, feed[1].IsLiked)
	assert.Equal(t, 2, feed[1].TotalLikes)
	assert.Equal(t, 1, feed[1].TotalReplies)
}

func TestBuildDetail(t *testing.T) {
	t.Run("absent thread is a not-found failure", func(t *testing.T) {
		detail, err := buildDetail(nil, 7)

		assert.Nil(t, detail)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
		assert.Contains(t, err.Error(), "requested thread does not exist")
	})

	t.Run("replies sorted newest first", func(t *testing.T) {
		raw := rawThread(1, baseTime, nil, []Reply{
			{ID: 1, ThreadID: 1, CreatedAt: baseTime.Add(time.Minute)},
			{ID: 2, ThreadID: 1, CreatedAt: baseTime.Add(3 * time.Minute)},
			{ID: 3, ThreadID: 1, CreatedAt: baseTime.Add(2 * time.Minute)},
		})

		detail, err := buildDetail(&raw, 7)
		require.NoError(t, err)

		require.Len(t, detail.Replies, 3)
		assert.Equal(t, uint64(2), detail.Replies[0].ID)
		assert.Equal(t, uint64(3), detail.Replies[1].ID)
		assert.Equal(t, uint64(1), detail.Replies[2].ID)
	})

	t.Run("likes carry no timestamps", func(t *testing.T) {
		raw := rawThread(1, baseTime, []Like{{ID: 1, ThreadID: 1, AuthorID: 7, CreatedAt: baseTime}}, nil)

		detail, err := buildDetail(&raw, 7)
		require.NoError(t, err)
		require.Len(t, detail.Likes, 1)

		data, err := json.Marshal(detail.Likes)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "createdAt")
		assert.NotContains(t, string(data), "updatedAt")
	})

	t.Run("isLiked follows the viewer", func(t *testing.T) {
		raw := rawThread(1, baseTime, []Like{{ID: 1, ThreadID: 1, AuthorID: 7}}, nil)

		liked, err := buildDetail(&raw, 7)
		require.NoError(t, err)
		assert.True(t, liked.IsLiked)

		notLiked, err := buildDetail(&raw, 8)
		require.NoError(t, err)
		assert.False(t, notLiked.IsLiked)
	})
}

func TestBuildAuthorThreads(t *testing.T) {
	t.Run("zero threads is a failure, not an empty list", func(t *testing.T) {
		items, err := buildAuthorThreads(nil)

		assert.Nil(t, items)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrEmptyResult))
		assert.Contains(t, err.Error(), "requested user does not have any threads")
	})

	t.Run("carries counts without author or viewer fields", func(t *testing.T) {
		raws := []Thread{
			rawThread(1, baseTime, []Like{{ID: 1, AuthorID: 7}}, []Reply{{ID: 1}, {ID: 2}}),
		}

		items, err := buildAuthorThreads(raws)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].TotalLikes)
		assert.Equal(t, 2, items[0].TotalReplies)

		data, err := json.Marshal(items)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "isLiked")
		assert.NotContains(t, string(data), "password")
	})
}
