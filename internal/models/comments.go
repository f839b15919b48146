package models

import (
	"database/sql"
	"errors"
)

// CreateComment validates the parent reference before writing: a reply must
// point at an existing comment on the same post, otherwise a reply could
// surface under another post's thread.
func CreateComment(db *sql.DB, c *Comment) error {
	var exists int
	err := db.QueryRow(`SELECT COUNT(1) FROM posts WHERE id = ?`, c.PostID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	if c.ParentID != nil {
		var parentPost int64
		err := db.QueryRow(`SELECT post_id FROM comments WHERE id = ?`, *c.ParentID).Scan(&parentPost)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidParent
		}
		if err != nil {
			return err
		}
		if parentPost != c.PostID {
			return ErrInvalidParent
		}
	}
	res, err := db.Exec(
		`INSERT INTO comments (post_id, parent_id, name, content) VALUES (?, ?, ?, ?)`,
		c.PostID, c.ParentID, c.Name, c.Content)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	row := db.QueryRow(`SELECT created_at FROM comments WHERE id = ?`, c.ID)
	return row.Scan(&c.CreatedAt)
}

func ListCommentsByPost(db *sql.DB, postID int64) ([]Comment, error) {
	rows, err := db.Query(
		`SELECT id, post_id, parent_id, name, content, created_at
         FROM comments WHERE post_id = ? ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := []Comment{}
	for rows.Next() {
		var c Comment
		var parent sql.NullInt64
		if err := rows.Scan(&c.ID, &c.PostID, &parent, &c.Name, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		if parent.Valid {
			c.ParentID = &parent.Int64
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func DeleteComment(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM comments WHERE id = ?`, id)
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
