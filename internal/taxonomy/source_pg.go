package taxonomy

import (
	"context"
	"database/sql"
)

// PGSource loads the taxonomy from Postgres tables maintained by
// migrations. Role skill rows carry a position column because list
// order is the priority signal downstream.
type PGSource struct {
	DB *sql.DB
}

func (s *PGSource) Load(ctx context.Context) (Taxonomy, error) {
	tax := Taxonomy{
		Categories: make(map[string][]string),
		Roles:      make(map[string]Requirements),
		Industries: make(map[string][]string),
	}

	if err := s.loadCategories(ctx, &tax); err != nil {
		return Taxonomy{}, err
	}
	if err := s.loadRoles(ctx, &tax); err != nil {
		return Taxonomy{}, err
	}
	if err := s.loadIndustries(ctx, &tax); err != nil {
		return Taxonomy{}, err
	}
	return tax, nil
}

func (s *PGSource) loadCategories(ctx context.Context, tax *Taxonomy) error {
	const query = `
SELECT category, skill
FROM taxonomy_skills
ORDER BY category, position`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var category, skill string
		if err := rows.Scan(&category, &skill); err != nil {
			return err
		}
		tax.Categories[category] = append(tax.Categories[category], skill)
	}
	return rows.Err()
}

func (s *PGSource) loadRoles(ctx context.Context, tax *Taxonomy) error {
	const query = `
SELECT role_name, skill, requirement
FROM taxonomy_roles
ORDER BY role_name, requirement, position`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var roleName, skill, requirement string
		if err := rows.Scan(&roleName, &skill, &requirement); err != nil {
			return err
		}
		reqs := tax.Roles[roleName]
		if requirement == "preferred" {
			reqs.Preferred = append(reqs.Preferred, skill)
		} else {
			reqs.Required = append(reqs.Required, skill)
		}
		tax.Roles[roleName] = reqs
	}
	return rows.Err()
}

func (s *PGSource) loadIndustries(ctx context.Context, tax *Taxonomy) error {
	const query = `
SELECT industry, keyword
FROM taxonomy_industries
ORDER BY industry, keyword`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var industry, keyword string
		if err := rows.Scan(&industry, &keyword); err != nil {
			return err
		}
		tax.Industries[industry] = append(tax.Industries[industry], keyword)
	}
	return rows.Err()
}
