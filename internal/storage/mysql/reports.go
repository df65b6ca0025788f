package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"react-golang/internal/storage"
)

// SaveReport guarda o relatório processado no histórico. O payload inteiro
// vai como JSON, os contadores ficam em colunas para a listagem ser barata.
func (s *Storage) SaveReport(ctx context.Context, fileName string, groups []*storage.PrefixGroup) (int64, error) {
	const op = "storage.mysql.SaveReport"

	payload, err := json.Marshal(groups)
	if err != nil {
		return 0, fmt.Errorf("%s: falha ao serializar o relatório: %w", op, err)
	}

	lateCount := 0
	for _, group := range groups {
		lateCount += group.LateCount
	}

	query := `INSERT INTO reports (file_name, payload, group_count, late_count, created_at)
		VALUES (?, ?, ?, ?, NOW())`

	res, err := s.db.ExecContext(ctx, query, fileName, payload, len(groups), lateCount)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetLatestReport devolve o relatório mais recente do histórico.
// sql.ErrNoRows quando nenhum upload foi feito ainda.
func (s *Storage) GetLatestReport(ctx context.Context) (*storage.Report, error) {
	const op = "storage.mysql.GetLatestReport"

	query := `SELECT id, file_name, created_at, payload
		FROM reports ORDER BY id DESC LIMIT 1`

	var report storage.Report
	var payload []byte

	err := s.db.QueryRowContext(ctx, query).Scan(&report.ID, &report.FileName, &report.CreatedAt, &payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(payload, &report.Groups); err != nil {
		return nil, fmt.Errorf("%s: relatório %d corrompido: %w", op, report.ID, err)
	}

	return &report, nil
}

// ListReports devolve o resumo do histórico, do mais novo para o mais antigo
func (s *Storage) ListReports(ctx context.Context) ([]*storage.ReportSummary, error) {
	const op = "storage.mysql.ListReports"

	query := `SELECT id, file_name, created_at, group_count, late_count
		FROM reports ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var summaries []*storage.ReportSummary
	for rows.Next() {
		var summary storage.ReportSummary
		if err := rows.Scan(&summary.ID, &summary.FileName, &summary.CreatedAt, &summary.GroupCount, &summary.LateCount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return summaries, nil
}
