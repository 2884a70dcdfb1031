package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"wavefm/model"

	"github.com/go-sql-driver/mysql"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUsername(username string) (*model.User, error)
}

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new mysqlUserRepository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

// CreateUser adds a new user to the database. Uniqueness of username and
// email is left to the table constraints; a violation is mapped to
// ErrDuplicateUsername or ErrDuplicateEmail.
func (r *mysqlUserRepository) CreateUser(user *model.User) error {
	query := "INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare create user statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to execute create user statement: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by their username.
func (r *mysqlUserRepository) GetUserByUsername(username string) (*model.User, error) {
	query := "SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?"
	row := r.db.QueryRow(query, username)
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for username %s: %w", username, err)
	}
	return user, nil
}

// duplicateKeyError maps a MySQL duplicate-entry error (1062) to the
// matching sentinel by constraint name, or returns nil for other errors.
func duplicateKeyError(err error) error {
	mysqlErr, ok := err.(*mysql.MySQLError)
	if !ok || mysqlErr.Number != 1062 {
		return nil
	}
	if strings.Contains(mysqlErr.Message, "uq_users_email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}
