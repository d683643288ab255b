package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/planner-api/internal/model"
)

// UserStore is the credential store interface consumed by the auth handler
// and middleware.  It is satisfied by *UserRepo in production and by fakes
// in tests.
type UserStore interface {
	// Create inserts a user with an already-hashed password and returns the
	// stored record without the hash.  ErrEmailExists when the email is taken.
	Create(ctx context.Context, name, email, passwordHash string) (model.User, error)
	// GetByEmail returns the full record including the password hash, for
	// credential verification.  ErrNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// GetByID returns the record without the password hash.  ErrNotFound
	// when no such user exists.
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// UserRepo implements UserStore over MySQL.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var _ UserStore = (*UserRepo)(nil)

// Create inserts a user row and reads it back by id.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES (?,?,?)",
		name, email, passwordHash)
	if err != nil {
		if isDuplicateKey(err) {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByEmail fetches a user by normalized email, password hash included.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.  The password hash column is never selected
// here, so records returned from this path are safe to hand to handlers.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// isDuplicateKey reports whether err is MySQL error 1062 (duplicate entry
// for a unique key).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
