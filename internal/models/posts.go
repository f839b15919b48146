package models

import (
	"database/sql"
	"errors"
	"strings"
)

const postColumns = `id, title, slug, content, COALESCE(excerpt, ''),
    COALESCE(cover_image, ''), published_at, author_id`

func CreatePost(db *sql.DB, p *Post) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	res, err := tx.Exec(
		`INSERT INTO posts (title, slug, content, excerpt, cover_image, published_at, author_id)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, p.PublishedAt, p.AuthorID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: posts.slug") {
			return ErrDuplicateSlug
		}
		return err
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	if err := insertTags(tx, "post_tags", "post_id", p.ID, p.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func UpdatePost(db *sql.DB, p *Post) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	res, err := tx.Exec(
		`UPDATE posts SET title = ?, slug = ?, content = ?, excerpt = ?, cover_image = ?,
                published_at = ?, author_id = ?
         WHERE id = ?`,
		p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, p.PublishedAt, p.AuthorID, p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: posts.slug") {
			return ErrDuplicateSlug
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(`DELETE FROM post_tags WHERE post_id = ?`, p.ID); err != nil {
		return err
	}
	if err := insertTags(tx, "post_tags", "post_id", p.ID, p.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func DeletePost(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM posts WHERE id = ?`, id)
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

func GetPost(db *sql.DB, id int64) (*Post, error) {
	row := db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(db, row)
}

func GetPostBySlug(db *sql.DB, slug string) (*Post, error) {
	row := db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	return scanPost(db, row)
}

func ListPosts(db *sql.DB) ([]Post, error) {
	return queryPosts(db, `SELECT `+postColumns+` FROM posts ORDER BY published_at DESC, id DESC`)
}

func ListPostsByTag(db *sql.DB, tag string) ([]Post, error) {
	return queryPosts(db,
		`SELECT `+postColumns+` FROM posts
         JOIN post_tags pt ON pt.post_id = posts.id AND pt.tag = ?
         ORDER BY published_at DESC, id DESC`, tag)
}

func queryPosts(db *sql.DB, q string, args ...any) ([]Post, error) {
	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
			&p.CoverImage, &p.PublishedAt, &p.AuthorID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Tags, err = listTags(db, "post_tags", "post_id", posts[i].ID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func scanPost(db *sql.DB, row *sql.Row) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
		&p.CoverImage, &p.PublishedAt, &p.AuthorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Tags, err = listTags(db, "post_tags", "post_id", p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}
