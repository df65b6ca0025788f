package generate_excel

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"react-golang/internal/storage"
)

type MockGenerateStorage struct {
	mock.Mock
}

func (m *MockGenerateStorage) GetLatestReport(ctx context.Context) (*storage.Report, error) {
	args := m.Called(ctx)
	if rep, ok := args.Get(0).(*storage.Report); ok {
		return rep, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGenerateExcel(t *testing.T) {
	deadline := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local)
	report := &storage.Report{
		ID: 7,
		Groups: []*storage.PrefixGroup{
			{
				Prefix:     "MO",
				PrefixName: "Moldes",
				Pieces: []*storage.Piece{
					{
						ProductCode: "MO-00100-A",
						ProductDesc: "MOLDE 600ML",
						IsCritical:  true,
						Orders: []*storage.ProductionOrder{
							{
								OpID:           "OP-123",
								Status:         storage.OrdemAtrasada,
								Progress:       50,
								Deadline:       &deadline,
								DaysLate:       3,
								RemainingHours: 12.5,
							},
						},
					},
				},
			},
		},
	}

	mockStorage := new(MockGenerateStorage)
	mockStorage.On("GetLatestReport", mock.Anything).Return(report, nil)

	svc := NewGenerateService(mockStorage)

	data, err := svc.GenerateExcel(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	// reabre os bytes gerados e confere o conteúdo das células
	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	sheet := "Status de Produção"
	assert.Contains(t, f.GetSheetList(), sheet)

	header, err := f.GetCellValue(sheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Grupo", header)

	cases := map[string]string{
		"A2": "Moldes",
		"B2": "MO-00100-A",
		"C2": "MOLDE 600ML",
		"D2": "OP-123",
		"E2": "atrasado",
		"F2": "50%",
		"G2": "3",
		"H2": "12.5",
		"I2": "Sim",
		"J2": "10/09/2026",
	}
	for cell, want := range cases {
		got, err := f.GetCellValue(sheet, cell)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "célula %s", cell)
	}

	mockStorage.AssertExpectations(t)
}

func TestGenerateExcelNoReport(t *testing.T) {
	mockStorage := new(MockGenerateStorage)
	mockStorage.On("GetLatestReport", mock.Anything).Return(nil, sql.ErrNoRows)

	svc := NewGenerateService(mockStorage)

	data, err := svc.GenerateExcel(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, data)
}
