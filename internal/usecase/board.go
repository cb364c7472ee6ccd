package usecase

import (
	"context"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// ToggleResult reports the member's state after flipping a like or a
// report, plus the post's resulting count.
type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

// BoardService handles the community board's like and report toggles.
// Both are per-member flags: the first call sets, the second clears.
type BoardService struct {
	board BoardRepo
}

func NewBoardService(board BoardRepo) *BoardService {
	return &BoardService{board: board}
}

func (uc *BoardService) Post(ctx context.Context, postID int64) (*domain.Post, error) {
	return uc.board.GetPost(ctx, postID)
}

func (uc *BoardService) ToggleLike(ctx context.Context, postID, memberID int64) (ToggleResult, error) {
	if _, err := uc.board.GetPost(ctx, postID); err != nil {
		return ToggleResult{}, err
	}
	on, count, err := uc.board.ToggleLike(ctx, postID, memberID)
	if err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Active: on, Count: count}, nil
}

func (uc *BoardService) ToggleReport(ctx context.Context, postID, memberID int64) (ToggleResult, error) {
	if _, err := uc.board.GetPost(ctx, postID); err != nil {
		return ToggleResult{}, err
	}
	on, count, err := uc.board.ToggleReport(ctx, postID, memberID)
	if err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Active: on, Count: count}, nil
}
