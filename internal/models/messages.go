package models

import (
	"database/sql"
	"strings"
)

func CreateMessage(db *sql.DB, m *Message) error {
	res, err := db.Exec(
		`INSERT INTO messages (name, email, message) VALUES (?, ?, ?)`,
		m.Name, m.Email, m.Message)
	if err != nil {
		return err
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	row := db.QueryRow(`SELECT created_at FROM messages WHERE id = ?`, m.ID)
	return row.Scan(&m.CreatedAt)
}

func ListMessages(db *sql.DB) ([]Message, error) {
	rows, err := db.Query(
		`SELECT id, name, email, message, created_at FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func DeleteMessage(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM messages WHERE id = ?`, id)
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

func CreateSubscriber(db *sql.DB, s *Subscriber) error {
	res, err := db.Exec(`INSERT INTO subscribers (email) VALUES (?)`, s.Email)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: subscribers.email") {
			return ErrDuplicateEmail
		}
		return err
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	row := db.QueryRow(`SELECT created_at FROM subscribers WHERE id = ?`, s.ID)
	return row.Scan(&s.CreatedAt)
}

func ListSubscribers(db *sql.DB) ([]Subscriber, error) {
	rows, err := db.Query(`SELECT id, email, created_at FROM subscribers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	subs := []Subscriber{}
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func DeleteSubscriber(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM subscribers WHERE id = ?`, id)
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
