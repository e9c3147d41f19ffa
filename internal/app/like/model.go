package like

// ToggleRequest asks to like or unlike one thread for the viewer.
type ToggleRequest struct {
	ThreadID uint64 `json:"threadId" binding:"required"`
}

// ToggleResult reports the state after the toggle.
type ToggleResult struct {
	ThreadID uint64 `json:"threadId"`
	AuthorID uint64 `json:"authorId"`
	Liked    bool   `json:"liked"`
}
