package models

import "database/sql"

// Posts and projects share the same tag layout: a join table keyed by the
// owning record's id.

func insertTags(tx *sql.Tx, table, column string, id int64, tags []string) error {
	for _, tag := range tags {
		if _, err := tx.Exec(
			`INSERT INTO `+table+` (`+column+`, tag) VALUES (?, ?)`, id, tag); err != nil {
			return err
		}
	}
	return nil
}

func listTags(db *sql.DB, table, column string, id int64) ([]string, error) {
	rows, err := db.Query(`SELECT tag FROM `+table+` WHERE `+column+` = ? ORDER BY tag`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tags := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
