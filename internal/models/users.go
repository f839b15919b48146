package models

import (
	"database/sql"
	"errors"
	"strings"

	"blog/internal/auth"
)

func CreateUser(db *sql.DB, u *User) error {
	res, err := db.Exec(
		`INSERT INTO users (username, password_hash, display_name, bio, avatar_url, email, role)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.DisplayName, u.Bio, u.AvatarURL, u.Email, string(u.Role))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return ErrDuplicateUsername
		}
		return err
	}
	u.ID, err = res.LastInsertId()
	return err
}

func GetUser(db *sql.DB, id int64) (*User, error) {
	row := db.QueryRow(
		`SELECT id, username, password_hash, COALESCE(display_name, ''), COALESCE(bio, ''),
                COALESCE(avatar_url, ''), COALESCE(email, ''), role
         FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func GetUserByUsername(db *sql.DB, username string) (*User, error) {
	row := db.QueryRow(
		`SELECT id, username, password_hash, COALESCE(display_name, ''), COALESCE(bio, ''),
                COALESCE(avatar_url, ''), COALESCE(email, ''), role
         FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func UpdateUser(db *sql.DB, u *User) error {
	res, err := db.Exec(
		`UPDATE users SET password_hash = ?, display_name = ?, bio = ?, avatar_url = ?, email = ?
         WHERE id = ?`,
		u.PasswordHash, u.DisplayName, u.Bio, u.AvatarURL, u.Email, u.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Bio,
		&u.AvatarURL, &u.Email, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Role, err = auth.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
