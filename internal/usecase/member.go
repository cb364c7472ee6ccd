package usecase

import (
	"context"
	"errors"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) bool
}

// MemberInfoView is the session-identity payload for logged-in pages.
type MemberInfoView struct {
	MemberID int64  `json:"memberId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Tel      string `json:"tel"`
	Role     string `json:"role"`
}

type MemberService struct {
	members   MemberRepo
	passwords PasswordVerifier
}

func NewMemberService(members MemberRepo, passwords PasswordVerifier) *MemberService {
	return &MemberService{members: members, passwords: passwords}
}

// Authenticate resolves credentials to a member. A missing account and
// a wrong password are indistinguishable to the caller.
func (uc *MemberService) Authenticate(ctx context.Context, email, password string) (*domain.Member, error) {
	if email == "" || password == "" {
		return nil, ErrUnauthenticated
	}
	m, err := uc.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !uc.passwords.Verify(m.PasswordHash, password) {
		return nil, ErrUnauthenticated
	}
	return m, nil
}

// Info returns the identity view for the member id carried by the
// session token.
func (uc *MemberService) Info(ctx context.Context, memberID int64) (MemberInfoView, error) {
	m, err := uc.members.GetByID(ctx, memberID)
	if err != nil {
		return MemberInfoView{}, err
	}
	return MemberInfoView{
		MemberID: m.ID,
		Email:    m.Email,
		Name:     m.Name,
		Tel:      m.Tel,
		Role:     string(m.Role),
	}, nil
}
