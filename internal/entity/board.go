package domain

import "time"

// Post is a bulletin-board entry. Like and report counts are
// denormalized onto the row; the per-member toggle state lives in
// separate (post_id, member_id) unique rows.
type Post struct {
	ID          int64
	AuthorID    int64
	Title       string
	Content     string
	LikeCount   int64
	ReportCount int64
	CreatedAt   time.Time
}
