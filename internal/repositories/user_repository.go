package repositories

import (
	"database/sql"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user account
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (
			id, name, phone, email, role, status, password, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		user.ID, user.Name, user.Phone, user.Email,
		user.Role, user.Status, user.Password, user.CreatedAt,
	)
	if err != nil {
		return apperrors.NewStoreError("insert user", err)
	}
	return nil
}

// GetByID retrieves a user by ID, without the password hash.
// Returns sql.ErrNoRows when the user does not exist.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `
		SELECT id, name, phone, email, role, status, created_at
		FROM users WHERE id = ?
	`

	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email,
		&user.Role, &user.Status, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, apperrors.NewStoreError("select user", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email. This is the only query that reads the
// password column; it exists for credential verification.
// Returns sql.ErrNoRows when no account has this email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, phone, email, role, status, password, created_at
		FROM users WHERE email = ?
	`

	user := &models.User{}
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email,
		&user.Role, &user.Status, &user.Password, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, apperrors.NewStoreError("select user by email", err)
	}
	return user, nil
}

// GetByRole retrieves all users with the given role, ordered by name.
// The password column is never selected here.
func (r *UserRepository) GetByRole(role string) ([]*models.User, error) {
	query := `
		SELECT id, name, phone, email, role, status, created_at
		FROM users WHERE role = ?
		ORDER BY name
	`

	rows, err := r.db.Query(query, role)
	if err != nil {
		return nil, apperrors.NewStoreError("select users by role", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Name, &user.Phone, &user.Email,
			&user.Role, &user.Status, &user.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewStoreError("scan user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("scan users", err)
	}

	return users, nil
}

// UpdatePassword sets the stored password hash for an account
func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	_, err := r.db.Exec(`UPDATE users SET password = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return apperrors.NewStoreError("update user password", err)
	}
	return nil
}
