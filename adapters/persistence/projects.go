package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
)

// projectRow mirrors one projects row; tech stays comma-joined here and is
// split back into tags at the store boundary.
type projectRow struct {
	ID     int64
	Title  string
	Tech   string
	ImgSrc []byte
}

func listProjectRows(ctx context.Context, q querier) ([]projectRow, error) {
	sql, args, err := psql.Select("id", "title", "tech", "img_src").
		From("projects").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, apperror.NewStorage("Gagal membaca daftar proyek.", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewStorage("Gagal membaca daftar proyek.", err)
	}
	defer rows.Close()

	projects := make([]projectRow, 0)
	for rows.Next() {
		var p projectRow
		if err := rows.Scan(&p.ID, &p.Title, &p.Tech, &p.ImgSrc); err != nil {
			return nil, apperror.NewStorage("Gagal membaca daftar proyek.", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("Gagal membaca daftar proyek.", err)
	}
	return projects, nil
}

func insertProject(ctx context.Context, q querier, title, tech string, imgSrc []byte) error {
	if _, err := q.Exec(ctx,
		`INSERT INTO projects (title, tech, img_src) VALUES ($1, $2, $3)`,
		title, tech, imgSrc,
	); err != nil {
		return apperror.NewStorage("Gagal menambahkan proyek baru.", err)
	}
	return nil
}

func updateProject(ctx context.Context, q querier, id int64, title, tech string, imgSrc []byte) error {
	if _, err := q.Exec(ctx,
		`UPDATE projects SET title = $2, tech = $3, img_src = $4 WHERE id = $1`,
		id, title, tech, imgSrc,
	); err != nil {
		return apperror.NewStorage("Gagal memperbarui proyek.", err)
	}
	return nil
}

func deleteProjects(ctx context.Context, q querier, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	sql, args, err := psql.Delete("projects").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return apperror.NewStorage("Gagal menghapus proyek.", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage("Gagal menghapus proyek.", err)
	}
	return nil
}
