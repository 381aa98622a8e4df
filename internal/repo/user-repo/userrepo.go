package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, password_hash, first_name, last_name, address, balance
		FROM users
		WHERE email = $1
	`
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Address, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, password_hash, first_name, last_name, address, balance
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Address, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, address, balance)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Address).
		Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `
		SELECT balance
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return decimal.Decimal{}, err
	}
	return balance, nil
}

// GetBalanceForUpdate locks the buyer's account row for the rest of the
// enclosing transaction; callers outside a transaction get a plain read.
func (repo *Repository) GetBalanceForUpdate(ctx context.Context, userID int) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `
		SELECT balance
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't lock balance", zap.Error(err))
		return decimal.Decimal{}, err
	}
	return balance, nil
}

func (repo *Repository) Credit(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2
	`
	tag, err := repo.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't credit balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

// Debit applies the deduction only while the balance covers it and
// reports whether a row changed. Sufficiency is decided by the database,
// not by a separate read.
func (repo *Repository) Debit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	query := `
		UPDATE users
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
	`
	tag, err := repo.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't debit balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, address = $4
		WHERE id = $5
	`
	_, err := repo.db.Exec(ctx, query, user.Email, user.FirstName, user.LastName, user.Address, user.ID)
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return err
	}
	return nil
}
