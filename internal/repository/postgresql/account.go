package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/printhub/printhub/internal/db"
)

type AccountRepo struct {
	db db.DB
}

func NewAccountRepo(db db.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) CreateAccount(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		"INSERT INTO accounts (username, password) VALUES ($1, $2)",
		username, string(hashed))
	return err
}

func (r *AccountRepo) ValidateAccount(ctx context.Context, username, password string) (bool, error) {
	var hashed string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM accounts WHERE username = $1", username).Scan(&hashed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}
