package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so reads can run on
// a borrowed connection while save steps share one transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// loadSettings fetches the whole key-value table in one query. Keys absent
// from the table resolve to "" at the caller.
func loadSettings(ctx context.Context, q querier) (map[string]string, error) {
	rows, err := q.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, apperror.NewStorage("Gagal membaca pengaturan profil.", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, apperror.NewStorage("Gagal membaca pengaturan profil.", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("Gagal membaca pengaturan profil.", err)
	}
	return settings, nil
}

// updateSettings writes the four profile scalars inside the save transaction.
// Update-only: a key missing from the table is not auto-created. The rows are
// seeded by the schema migration.
func updateSettings(ctx context.Context, q querier, doc *portfolio.Document) error {
	values := map[string]string{
		portfolio.SettingAboutMe:             doc.AboutMe,
		portfolio.SettingEducationUniversity: doc.Education.University,
		portfolio.SettingEducationMajor:      doc.Education.Major,
		portfolio.SettingEducationPeriod:     doc.Education.Period,
	}
	for key, value := range values {
		if _, err := q.Exec(ctx, `UPDATE settings SET value = $2 WHERE key = $1`, key, value); err != nil {
			return apperror.NewStorage("Gagal menyimpan pengaturan profil.", err)
		}
	}
	return nil
}
