package validating

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func TestValidateSessionsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockWarehouseRepository(ctrl)
	service := NewValidator(mockWarehouse)

	accountID := "ACC001"
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func()
		expected  domain.ValidationStatus
		degraded  bool
		fragments []string
	}{
		{
			name: "Sessões presentes e positivas",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{Sessions: intPtr(3200)}, nil)
			},
			expected:  domain.ValidationOK,
			degraded:  false,
			fragments: []string{"3200"},
		},
		{
			name: "View sem linha para a data",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(nil, nil)
			},
			expected:  domain.ValidationWarning,
			degraded:  true,
			fragments: []string{"2025-06-10"},
		},
		{
			name: "Sessões nulas na linha",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{}, nil)
			},
			expected: domain.ValidationWarning,
			degraded: true,
		},
		{
			name: "Sessões zeradas na linha",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{Sessions: intPtr(0)}, nil)
			},
			expected: domain.ValidationWarning,
			degraded: true,
		},
		{
			name: "Falha na consulta vira error, não pânico",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(nil, errors.New("timeout"))
			},
			expected:  domain.ValidationError,
			degraded:  true,
			fragments: []string{"timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := service.ValidateSessionsSync(accountID, date)

			assert.Equal(t, tt.expected, result.Status)
			assert.Equal(t, tt.degraded, result.Degraded())
			for _, fragment := range tt.fragments {
				assert.Contains(t, result.Message, fragment)
			}
		})
	}
}
