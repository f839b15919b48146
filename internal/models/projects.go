package models

import (
	"database/sql"
	"errors"
)

const projectColumns = `id, title, description, COALESCE(image_url, ''),
    COALESCE(project_url, ''), is_active`

func CreateProject(db *sql.DB, p *Project) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	res, err := tx.Exec(
		`INSERT INTO projects (title, description, image_url, project_url, is_active)
         VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.ImageURL, p.ProjectURL, p.IsActive)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	if err := insertTags(tx, "project_tags", "project_id", p.ID, p.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func UpdateProject(db *sql.DB, p *Project) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	res, err := tx.Exec(
		`UPDATE projects SET title = ?, description = ?, image_url = ?, project_url = ?, is_active = ?
         WHERE id = ?`,
		p.Title, p.Description, p.ImageURL, p.ProjectURL, p.IsActive, p.ID)
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
	if _, err := tx.Exec(`DELETE FROM project_tags WHERE project_id = ?`, p.ID); err != nil {
		return err
	}
	if err := insertTags(tx, "project_tags", "project_id", p.ID, p.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func DeleteProject(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM projects WHERE id = ?`, id)
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

func GetProject(db *sql.DB, id int64) (*Project, error) {
	row := db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Tags, err = listTags(db, "project_tags", "project_id", p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func ListProjects(db *sql.DB) ([]Project, error) {
	rows, err := db.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	projects := []Project{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL,
			&p.ProjectURL, &p.IsActive); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Tags, err = listTags(db, "project_tags", "project_id", projects[i].ID); err != nil {
			return nil, err
		}
	}
	return projects, nil
}
