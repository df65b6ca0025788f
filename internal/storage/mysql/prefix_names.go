package mysql

import (
	"context"
	"fmt"
)

// GetPrefixNames devolve os overrides de nome de prefixo cadastrados no admin
func (s *Storage) GetPrefixNames(ctx context.Context) (map[string]string, error) {
	const op = "storage.mysql.GetPrefixNames"

	rows, err := s.db.QueryContext(ctx, `SELECT prefix, name FROM prefix_names`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var prefix, name string
		if err := rows.Scan(&prefix, &name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		names[prefix] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return names, nil
}

// UpsertPrefixName grava ou troca o nome de exibição de um prefixo
func (s *Storage) UpsertPrefixName(ctx context.Context, prefix, name string) error {
	const op = "storage.mysql.UpsertPrefixName"

	query := `INSERT INTO prefix_names (prefix, name) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE name = VALUES(name)`

	if _, err := s.db.ExecContext(ctx, query, prefix, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
