package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type MySQLBoardRepo struct{ db *sql.DB }

func NewMySQLBoardRepo(db *sql.DB) *MySQLBoardRepo { return &MySQLBoardRepo{db: db} }

func (r *MySQLBoardRepo) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.QueryRowContext(ctx, `
SELECT id,author_id,title,content,like_count,report_count,created_at
FROM posts WHERE id=?`, id).
		Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.LikeCount, &p.ReportCount, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MySQLBoardRepo) ToggleLike(ctx context.Context, postID, memberID int64) (bool, int64, error) {
	return r.toggle(ctx, postID, memberID, "post_likes", "like_count")
}

func (r *MySQLBoardRepo) ToggleReport(ctx context.Context, postID, memberID int64) (bool, int64, error) {
	return r.toggle(ctx, postID, memberID, "post_reports", "report_count")
}

// toggle flips the member's row in the flag table and keeps the
// denormalized counter on posts in step, all in one transaction.
func (r *MySQLBoardRepo) toggle(ctx context.Context, postID, memberID int64, flagTable, counter string) (bool, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
DELETE FROM `+flagTable+` WHERE post_id=? AND member_id=?`, postID, memberID)
	if err != nil {
		return false, 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, 0, err
	}

	active := deleted == 0
	if active {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO `+flagTable+` (post_id,member_id,created_at) VALUES (?,?,NOW())`, postID, memberID); err != nil {
			return false, 0, err
		}
		if _, err := tx.ExecContext(ctx, `
UPDATE posts SET `+counter+` = `+counter+` + 1 WHERE id=?`, postID); err != nil {
			return false, 0, err
		}
	} else {
		if _, err := tx.ExecContext(ctx, `
UPDATE posts SET `+counter+` = GREATEST(`+counter+` - 1, 0) WHERE id=?`, postID); err != nil {
			return false, 0, err
		}
	}

	var count int64
	if err := tx.QueryRowContext(ctx, `
SELECT `+counter+` FROM posts WHERE id=?`, postID).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, 0, usecase.ErrNotFound
		}
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return active, count, nil
}

var _ usecase.BoardRepo = (*MySQLBoardRepo)(nil)
