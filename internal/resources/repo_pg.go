package resources

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Resource, error) {
	const query = `
SELECT skill, title, url, provider
FROM learning_resources
ORDER BY skill, title`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resource
	for rows.Next() {
		var res Resource
		var provider sql.NullString
		if err := rows.Scan(&res.Skill, &res.Title, &res.URL, &provider); err != nil {
			return nil, err
		}
		if provider.Valid {
			res.Provider = provider.String
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
