package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// toolRow is the flat relational shape of one tool. Icon holds UTF-8 path
// bytes in path mode or the raw image payload in inline mode.
type toolRow struct {
	ID   int64
	Name string
	Icon []byte
}

func listToolRows(ctx context.Context, q querier) ([]toolRow, error) {
	sql, args, err := psql.Select("id", "name", "icon").
		From("tools").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, apperror.NewStorage("Gagal membaca daftar tools.", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewStorage("Gagal membaca daftar tools.", err)
	}
	defer rows.Close()

	tools := make([]toolRow, 0)
	for rows.Next() {
		var t toolRow
		if err := rows.Scan(&t.ID, &t.Name, &t.Icon); err != nil {
			return nil, apperror.NewStorage("Gagal membaca daftar tools.", err)
		}
		tools = append(tools, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("Gagal membaca daftar tools.", err)
	}
	return tools, nil
}

func insertTool(ctx context.Context, q querier, name string, icon []byte) error {
	if _, err := q.Exec(ctx, `INSERT INTO tools (name, icon) VALUES ($1, $2)`, name, icon); err != nil {
		return apperror.NewStorage("Gagal menambahkan tool baru.", err)
	}
	return nil
}

func updateTool(ctx context.Context, q querier, id int64, name string, icon []byte) error {
	if _, err := q.Exec(ctx, `UPDATE tools SET name = $2, icon = $3 WHERE id = $1`, id, name, icon); err != nil {
		return apperror.NewStorage("Gagal memperbarui tool.", err)
	}
	return nil
}

func deleteTools(ctx context.Context, q querier, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	sql, args, err := psql.Delete("tools").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return apperror.NewStorage("Gagal menghapus tools.", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage("Gagal menghapus tools.", err)
	}
	return nil
}
