package repository

import (
	"context"
	"errors"
	"fmt"

	"suitax/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

type UserRepository struct {
	db Storage
}

func NewUserRepository(storage Storage) *UserRepository {
	return &UserRepository{
		db: storage,
	}
}

func (r *UserRepository) MigrateAndSeed(ctx context.Context) error {
	if err := r.db.MigrateTable(&User{}); err != nil {
		return fmt.Errorf("migrate user table: %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
	}
	if err := r.db.SeedTable(ctx, &users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneWhere(ctx, &user, "username = ?", username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
