package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flexprice/playbill/internal/api/dto"
	v1 "github.com/flexprice/playbill/internal/api/v1"
	"github.com/flexprice/playbill/internal/cache"
	"github.com/flexprice/playbill/internal/config"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/pricing"
	"github.com/flexprice/playbill/internal/repository/memory"
	"github.com/flexprice/playbill/internal/sentry"
	"github.com/flexprice/playbill/internal/service"
	"github.com/flexprice/playbill/internal/testutil"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/suite"
)

const bigCoRequest = `{
	"invoice": {
		"customer": "BigCo",
		"performances": [
			{"playID": "hamlet", "audience": 55},
			{"playID": "as-like", "audience": 35}
		]
	},
	"plays": {
		"hamlet": {"name": "Hamlet", "type": "tragedy"},
		"as-like": {"name": "As You Like It", "type": "comedy"}
	}
}`

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()
	sentrySvc := sentry.NewSentryService(cfg, log)
	calculator, err := pricing.NewCalculatorFromConfig(cfg)
	s.Require().NoError(err)

	params := service.NewServiceParams(
		log,
		cfg,
		cache.NewInMemoryCache(cfg, log),
		calculator,
		sentrySvc,
		memory.NewPlayStore(),
		memory.NewInvoiceStore(),
	)

	s.router = NewRouter(Handlers{
		Health:    v1.NewHealthHandler(cfg),
		Play:      v1.NewPlayHandler(service.NewPlayService(params), log),
		Invoice:   v1.NewInvoiceHandler(service.NewInvoiceService(params), log),
		Statement: v1.NewStatementHandler(service.NewStatementService(params), log),
	}, cfg, log, sentrySvc)
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(w.Body.Bytes(), v))
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))

	var resp dto.HealthResponse
	s.decode(w, &resp)
	s.Equal("ok", resp.Status)
	s.Equal("memory", resp.Storage)
}

func (s *RouterSuite) TestCreateStatementJSON() {
	w := s.do(http.MethodPost, "/v1/statements", bigCoRequest)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.StatementResponse
	s.decode(w, &resp)
	s.Equal(testutil.BigCoStatement, resp.Text)
	s.Equal("$1,230.00", resp.TotalAmountDisplay)
	s.Equal("1230", resp.TotalAmount.String())
	s.Equal(37, resp.VolumeCredits)
}

func (s *RouterSuite) TestCreateStatementText() {
	w := s.do(http.MethodPost, "/v1/statements?format=text", bigCoRequest)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/plain")
	s.Equal(testutil.BigCoStatement, w.Body.String())
}

func (s *RouterSuite) TestCreateStatementErrors() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "malformed json",
			body:   `{"invoice":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown play",
			body:   `{"invoice":{"customer":"BigCo","performances":[{"playID":"macbeth","audience":1}]},"plays":{"hamlet":{"name":"Hamlet","type":"tragedy"}}}`,
			status: http.StatusNotFound,
		},
		{
			name:   "unknown play type",
			body:   `{"invoice":{"customer":"BigCo","performances":[{"playID":"henry-v","audience":1}]},"plays":{"henry-v":{"name":"Henry V","type":"history"}}}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "negative audience",
			body:   `{"invoice":{"customer":"BigCo","performances":[{"playID":"hamlet","audience":-1}]},"plays":{"hamlet":{"name":"Hamlet","type":"tragedy"}}}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/v1/statements", tt.body)
			s.Equal(tt.status, w.Code, w.Body.String())

			var resp ierr.ErrorResponse
			s.decode(w, &resp)
			s.False(resp.Success)
			s.NotEmpty(resp.Error.Display)
		})
	}
}

func (s *RouterSuite) TestUnknownPlayTypeDetails() {
	body := `{"invoice":{"customer":"BigCo","performances":[{"playID":"henry-v","audience":1}]},"plays":{"henry-v":{"name":"Henry V","type":"history"}}}`
	w := s.do(http.MethodPost, "/v1/statements", body)
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code)

	var resp ierr.ErrorResponse
	s.decode(w, &resp)
	s.Equal("history", resp.Error.Details["type"])
}

func (s *RouterSuite) TestStoredInvoiceStatement() {
	for _, body := range []string{
		`{"id":"hamlet","name":"Hamlet","type":"tragedy"}`,
		`{"id":"as-like","name":"As You Like It","type":"comedy"}`,
	} {
		w := s.do(http.MethodPost, "/v1/plays", body)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(http.MethodPost, "/v1/plays", `{"id":"hamlet","name":"Hamlet","type":"tragedy"}`)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/v1/invoices", `{"id":"inv_bigco","customer":"BigCo","performances":[{"playID":"hamlet","audience":55},{"playID":"as-like","audience":35}]}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/v1/invoices/inv_bigco/statement?format=text", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(testutil.BigCoStatement, w.Body.String())

	w = s.do(http.MethodGet, "/v1/invoices/inv_missing/statement", "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/v1/plays?type=tragedy", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var plays dto.ListPlaysResponse
	s.decode(w, &plays)
	s.Require().Len(plays.Items, 1)
	s.Equal("hamlet", plays.Items[0].ID)

	w = s.do(http.MethodGet, "/v1/invoices?customer=BigCo", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var invoices dto.ListInvoicesResponse
	s.decode(w, &invoices)
	s.Len(invoices.Items, 1)
}

func (s *RouterSuite) TestBulkStatements() {
	body := `{
		"invoices": [
			{"customer": "First", "performances": [{"playID": "hamlet", "audience": 31}]},
			{"customer": "Second", "performances": []}
		],
		"plays": {"hamlet": {"name": "Hamlet", "type": "tragedy"}}
	}`
	w := s.do(http.MethodPost, "/v1/statements/bulk", body)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ListStatementsResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Items, 2)
	s.Equal("First", resp.Items[0].Customer)
	s.Equal("Second", resp.Items[1].Customer)
	s.Equal("$0.00", resp.Items[1].TotalAmountDisplay)
}
