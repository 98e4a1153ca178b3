package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/nutrivitta/storefront/model"
)

// UserRepository backs the optional account layer; guest checkout never
// touches it.
type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO user (name, email, phone, password_hash, created_at) VALUES (?, ?, ?, ?, NOW())",
		data.Name, data.Email, data.Phone, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

// Get looks a user up by any combination of id, email and phone. A miss is
// nil, nil; the app layer decides whether that is an error.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		conds = append(conds, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		conds = append(conds, "email = ?")
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		conds = append(conds, "phone = ?")
		args = append(args, filter.Phone)
	}
	if len(conds) == 0 {
		return nil, nil
	}

	q := "SELECT id, name, email, phone, password_hash, created_at, updated_at FROM user WHERE " +
		strings.Join(conds, " AND ")

	var entity model.UserEntity
	if err := s.conn.GetContext(ctx, &entity, q, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
