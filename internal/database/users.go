package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"waste-management-backend/internal/models"
)

func GetUserByEmail(ctx context.Context, db *sqlx.DB, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password, name, role, created_at FROM users WHERE email = ?`
	if err := getOne(ctx, db, &user, "User", query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser hashes the password and stores a new account
func CreateUser(ctx context.Context, db *sqlx.DB, email, password, name, role string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashed),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().Unix(),
	}

	query := `INSERT INTO users (id, email, password, name, role, created_at)
		VALUES (:id, :email, :password, :name, :role, :created_at)`
	if _, err := db.NamedExecContext(ctx, query, user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return &user, nil
}

func UserExists(ctx context.Context, db *sqlx.DB, email string) (bool, error) {
	n, err := countRows(ctx, db, `SELECT COUNT(*) FROM users WHERE email = ?`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check user %s: %w", email, err)
	}
	return n > 0, nil
}
