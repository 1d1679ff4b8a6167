package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/expense-atlas/pkg/handlers/report"
	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/dataset"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	store := dataset.NewStore()
	store.Replace([]domain.Transaction{
		{
			Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Magnitude: decimal.NewFromInt(100),
			Kind:      domain.Expense,
			Category:  "Travel",
			Title:     "Flight",
			Tags:      []string{"Trip"},
		},
		{
			Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Magnitude: decimal.NewFromInt(500),
			Kind:      domain.Income,
			Category:  "Salary",
			Title:     "Paycheck",
		},
	}, "export.csv")

	source := new(mockSource)
	source.On("Load", mock.Anything).Return([]domain.Transaction{
		{
			Date:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Magnitude: decimal.NewFromInt(25),
			Kind:      domain.Expense,
			Category:  "Food",
		},
	}, nil)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Reports: report.NewHandler(store, source, "export.csv", domain.Monthly),
			Logger:  logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	topCategory := "Travel"

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "GetSummary",
			method:         http.MethodGet,
			path:           "/api/v1/summary",
			expectedStatus: http.StatusOK,
			expected: api.SummaryMetrics{
				TotalIncome:   decimal.NewFromInt(500),
				TotalExpenses: decimal.NewFromInt(100),
				NetSavings:    decimal.NewFromInt(400),
				SavingsRate:   80,
			},
			parseResponse: unmarshalResponse[api.SummaryMetrics](),
		},
		{
			name:           "GetTrend",
			method:         http.MethodGet,
			path:           "/api/v1/trend?granularity=monthly",
			expectedStatus: http.StatusOK,
			expected: []api.TrendPoint{{
				Period:  "2025-03",
				Income:  decimal.NewFromInt(500),
				Expense: decimal.NewFromInt(100),
			}},
			parseResponse: unmarshalResponse[[]api.TrendPoint](),
		},
		{
			name:           "GetTrend_InvalidGranularity",
			method:         http.MethodGet,
			path:           "/api/v1/trend?granularity=yearly",
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid granularity. Expected one of: daily, weekly, monthly\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "GetCategories",
			method:         http.MethodGet,
			path:           "/api/v1/categories",
			expectedStatus: http.StatusOK,
			expected: []api.CategoryTotal{{
				Category: "Travel",
				Amount:   decimal.NewFromInt(100),
			}},
			parseResponse: unmarshalResponse[[]api.CategoryTotal](),
		},
		{
			name:           "ListGroups",
			method:         http.MethodGet,
			path:           "/api/v1/groups",
			expectedStatus: http.StatusOK,
			expected:       []string{"Trip"},
			parseResponse:  unmarshalResponse[[]string](),
		},
		{
			name:           "GetGroupSummaries",
			method:         http.MethodGet,
			path:           "/api/v1/groups/summaries?groups=Trip",
			expectedStatus: http.StatusOK,
			expected: []api.GroupSummary{{
				Group:            "Trip",
				TotalSpent:       decimal.NewFromInt(100),
				DurationDays:     1,
				TopCategory:      &topCategory,
				TransactionCount: 1,
			}},
			parseResponse: unmarshalResponse[[]api.GroupSummary](),
		},
		{
			name:           "GetPivot",
			method:         http.MethodGet,
			path:           "/api/v1/pivot?groups=Trip",
			expectedStatus: http.StatusOK,
			expected: api.Pivot{
				Categories: []string{"Travel"},
				Groups:     []string{"Trip"},
				Cells:      [][]decimal.Decimal{{decimal.NewFromInt(100)}},
			},
			parseResponse: unmarshalResponse[api.Pivot](),
		},
		{
			name:           "GetDrillDown_MissingGroup",
			method:         http.MethodGet,
			path:           "/api/v1/pivot/transactions?category=Travel",
			expectedStatus: http.StatusBadRequest,
			expected:       "both 'category' and 'group' parameters are required\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "Reload",
			method:         http.MethodPost,
			path:           "/api/v1/reload",
			expectedStatus: http.StatusOK,
			expected:       api.ReloadResult{Transactions: 1, Origin: "export.csv"},
			parseResponse:  unmarshalResponse[api.ReloadResult](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, nil)
			require.NoError(t, err, "Failed to build request")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_Start(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	t.Run("surfaces the listen error", func(t *testing.T) {
		api := NewWebAPI(logger, Config{
			Addr:            "127.0.0.1:-1",
			ShutdownTimeout: time.Second,
			Dependencies: Dependencies{
				Reports: report.NewHandler(dataset.NewStore(), nil, "", domain.Monthly),
				Logger:  logger,
			},
		})

		assert.Error(t, api.Start())
	})
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
