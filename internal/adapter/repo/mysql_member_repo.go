package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type MySQLMemberRepo struct{ db *sql.DB }

func NewMySQLMemberRepo(db *sql.DB) *MySQLMemberRepo { return &MySQLMemberRepo{db: db} }

func scanMember(row *sql.Row) (*domain.Member, error) {
	var m domain.Member
	var role string
	if err := row.Scan(&m.ID, &m.Email, &m.PasswordHash, &m.Name, &m.Tel, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	m.Role = domain.Role(role)
	return &m, nil
}

func (r *MySQLMemberRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return scanMember(r.db.QueryRowContext(ctx, `
SELECT id,email,password_hash,name,tel,role FROM members WHERE id=?`, id))
}

func (r *MySQLMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return scanMember(r.db.QueryRowContext(ctx, `
SELECT id,email,password_hash,name,tel,role FROM members WHERE email=?`, email))
}

var _ usecase.MemberRepo = (*MySQLMemberRepo)(nil)
