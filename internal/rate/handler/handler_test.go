package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockValidator struct{ mock.Mock }

func (m *MockValidator) ValidateCodes(from, to string) error {
	args := m.Called(from, to)
	return args.Error(0)
}

func (m *MockValidator) SupportedCodes() []string {
	args := m.Called()
	codes, _ := args.Get(0).([]string)
	return codes
}

type MockConverter struct{ mock.Mock }

func (m *MockConverter) Convert(ctx context.Context, amount float64, from, to string) (rate.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	c, _ := args.Get(0).(rate.Conversion)
	return c, args.Error(1)
}

func (m *MockConverter) ConvertMany(ctx context.Context, amounts []float64, from, to string) ([]float64, error) {
	args := m.Called(ctx, amounts, from, to)
	out, _ := args.Get(0).([]float64)
	return out, args.Error(1)
}

func (m *MockConverter) GetRate(ctx context.Context, from, to string) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

type MockRateStore struct{ mock.Mock }

func (m *MockRateStore) GetRates(ctx context.Context) domain.RateSnapshot {
	args := m.Called(ctx)
	s, _ := args.Get(0).(domain.RateSnapshot)
	return s
}

func (m *MockRateStore) Refresh(ctx context.Context) (domain.RateSnapshot, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(domain.RateSnapshot)
	return s, args.Error(1)
}

type MockTransactions struct{ mock.Mock }

func (m *MockTransactions) ConvertForDisplay(ctx context.Context, txs []domain.Transaction, displayCurrency string) ([]domain.ConvertedTransaction, domain.Totals, error) {
	args := m.Called(ctx, txs, displayCurrency)
	out, _ := args.Get(0).([]domain.ConvertedTransaction)
	totals, _ := args.Get(1).(domain.Totals)
	return out, totals, args.Error(2)
}

type MockFormatter struct{ mock.Mock }

func (m *MockFormatter) Format(amount float64, code string) string {
	return m.Called(amount, code).String(0)
}

func (m *MockFormatter) FormatWithOriginal(amount float64, code string, originalAmount float64, originalCode string) string {
	return m.Called(amount, code, originalAmount, originalCode).String(0)
}

type mocks struct {
	validator    *MockValidator
	converter    *MockConverter
	rates        *MockRateStore
	transactions *MockTransactions
	formatter    *MockFormatter
}

func newTestHandler() (*Handler, mocks) {
	m := mocks{
		validator:    new(MockValidator),
		converter:    new(MockConverter),
		rates:        new(MockRateStore),
		transactions: new(MockTransactions),
		formatter:    new(MockFormatter),
	}
	return NewRateHandler(m.validator, m.converter, m.rates, m.transactions, m.formatter), m
}

func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

type errorJSON struct {
	Error string `json:"error"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	return ej.Error
}

// --- GetRate ---

func TestHandler_GetRate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name         string
		validatorErr error
	}{
		{name: "from required", validatorErr: rate.ErrFromRequired},
		{name: "to required", validatorErr: rate.ErrToRequired},
		{name: "from unsupported", validatorErr: rate.ErrFromUnsupported},
		{name: "to unsupported", validatorErr: rate.ErrToUnsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler()
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/rates/usd/eur", nil), "from", " usd ", "to", " eur")
			rr := httptest.NewRecorder()

			m.validator.On("ValidateCodes", "USD", "EUR").Return(tc.validatorErr).Once()

			h.GetRate(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, tc.validatorErr.Error(), decodeError(t, rr))
			m.converter.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything)
			m.validator.AssertExpectations(t)
		})
	}
}

func TestHandler_GetRate_InternalError(t *testing.T) {
	h, m := newTestHandler()
	req := withURLParams(httptest.NewRequest(http.MethodGet, "/rates/usd/eur", nil), "from", "usd", "to", "eur")
	rr := httptest.NewRecorder()

	m.validator.On("ValidateCodes", "USD", "EUR").Return(nil).Once()
	m.converter.On("GetRate", mock.Anything, "USD", "EUR").Return(1.0, errors.New("boom")).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "ups, couldn't get rate this time", decodeError(t, rr))
	m.converter.AssertExpectations(t)
}

func TestHandler_GetRate_Success(t *testing.T) {
	h, m := newTestHandler()
	req := withURLParams(httptest.NewRequest(http.MethodGet, "/rates/eur/inr", nil), "from", "eur", "to", "inr")
	rr := httptest.NewRecorder()

	m.validator.On("ValidateCodes", "EUR", "INR").Return(nil).Once()
	m.converter.On("GetRate", mock.Anything, "EUR", "INR").Return(97.788, nil).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res RateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, RateResponse{From: "EUR", To: "INR", Value: 97.788}, res)
	m.validator.AssertExpectations(t)
	m.converter.AssertExpectations(t)
}

// --- GetRates / RefreshRates ---

func TestHandler_GetRates(t *testing.T) {
	h, m := newTestHandler()
	fetched := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m.rates.On("GetRates", mock.Anything).Return(domain.RateSnapshot{
		Rates:     domain.RateTable{"USD": 1, "EUR": 0.9},
		FetchedAt: fetched,
	}).Once()

	rr := httptest.NewRecorder()
	h.GetRates(rr, httptest.NewRequest(http.MethodGet, "/rates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res RatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "USD", res.Base)
	require.Equal(t, 0.9, res.Rates["EUR"])
	require.True(t, res.FetchedAt.Equal(fetched))
	require.False(t, res.Fallback)
}

func TestHandler_GetRates_Fallback(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("GetRates", mock.Anything).Return(domain.RateSnapshot{
		Rates:    domain.FallbackRates(),
		Fallback: true,
	}).Once()

	rr := httptest.NewRecorder()
	h.GetRates(rr, httptest.NewRequest(http.MethodGet, "/rates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res RatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.True(t, res.Fallback)
	require.Equal(t, 83.12, res.Rates["INR"])
}

func TestHandler_RefreshRates(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestHandler()
		m.rates.On("Refresh", mock.Anything).Return(domain.RateSnapshot{Rates: domain.RateTable{"USD": 1}}, nil).Once()

		rr := httptest.NewRecorder()
		h.RefreshRates(rr, httptest.NewRequest(http.MethodPost, "/rates/refresh", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		m.rates.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		h, m := newTestHandler()
		m.rates.On("Refresh", mock.Anything).Return(domain.RateSnapshot{}, domain.ErrRateFetch).Once()

		rr := httptest.NewRecorder()
		h.RefreshRates(rr, httptest.NewRequest(http.MethodPost, "/rates/refresh", nil))

		require.Equal(t, http.StatusBadGateway, rr.Code)
		require.Equal(t, "failed to refresh exchange rates", decodeError(t, rr))
	})
}

// --- Convert ---

func TestHandler_Convert_Success(t *testing.T) {
	h, m := newTestHandler()
	body := []byte(`{"amount":100,"from":" usd","to":"eur "}`)
	m.converter.On("Convert", mock.Anything, 100.0, "USD", "EUR").
		Return(rate.Conversion{Amount: 85, From: "USD", To: "EUR", Rate: 0.85, Converted: true}, nil).Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, ConvertResponse{Amount: 100, From: "USD", To: "EUR", Result: 85, Rate: 0.85, Converted: true}, res)
	m.converter.AssertExpectations(t)
}

func TestHandler_Convert_FailureReturnsOriginalAmount(t *testing.T) {
	h, m := newTestHandler()
	body := []byte(`{"amount":40,"from":"USD","to":"XYZ"}`)
	m.converter.On("Convert", mock.Anything, 40.0, "USD", "XYZ").
		Return(rate.Conversion{Amount: 40, From: "USD", To: "XYZ"}, domain.ErrUnsupportedCurrency).Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, 40.0, res.Result)
	require.False(t, res.Converted)
	require.Equal(t, domain.ErrUnsupportedCurrency.Error(), res.Error)
}

func TestHandler_Convert_ZeroAmountAllowed(t *testing.T) {
	h, m := newTestHandler()
	m.converter.On("Convert", mock.Anything, 0.0, "USD", "EUR").
		Return(rate.Conversion{Amount: 0, Converted: true, Rate: 0.85}, nil).Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(`{"amount":0,"from":"USD","to":"EUR"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	m.converter.AssertExpectations(t)
}

func TestHandler_Convert_BadRequests(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "malformed json", body: `{"amount":`, wantMsg: "invalid request body"},
		{name: "unknown field", body: `{"amount":1,"from":"USD","to":"EUR","x":1}`, wantMsg: "invalid request body"},
		{name: "missing amount", body: `{"from":"USD","to":"EUR"}`, wantMsg: "invalid fields: amount"},
		{name: "negative amount", body: `{"amount":-5,"from":"USD","to":"EUR"}`, wantMsg: "invalid fields: amount"},
		{name: "bad codes", body: `{"amount":5,"from":"US1","to":""}`, wantMsg: "invalid fields: from, to"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler()
			rr := httptest.NewRecorder()
			h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(tc.body)))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, tc.wantMsg, decodeError(t, rr))
			m.converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Convert_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler()
	body := `{"amount":1,"from":"USD","to":"EUR","pad":"` + strings.Repeat("x", 2048) + `"}`

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(body)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

// --- ConvertBatch ---

func TestHandler_ConvertBatch(t *testing.T) {
	h, m := newTestHandler()
	m.converter.On("ConvertMany", mock.Anything, []float64{100, 20}, "USD", "EUR").Return([]float64{85, 17}, nil).Once()

	rr := httptest.NewRecorder()
	h.ConvertBatch(rr, httptest.NewRequest(http.MethodPost, "/conversions/batch", strings.NewReader(`{"amounts":[100,20],"from":"usd","to":"eur"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertBatchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, []float64{85, 17}, res.Results)
	require.Empty(t, res.Error)
}

func TestHandler_ConvertBatch_Empty(t *testing.T) {
	h, m := newTestHandler()
	m.converter.On("ConvertMany", mock.Anything, []float64{}, "USD", "EUR").Return([]float64{}, nil).Once()

	rr := httptest.NewRecorder()
	h.ConvertBatch(rr, httptest.NewRequest(http.MethodPost, "/conversions/batch", strings.NewReader(`{"from":"USD","to":"EUR"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"results":[]`)
}

func TestHandler_ConvertBatch_NegativeElement(t *testing.T) {
	h, m := newTestHandler()

	rr := httptest.NewRecorder()
	h.ConvertBatch(rr, httptest.NewRequest(http.MethodPost, "/conversions/batch", strings.NewReader(`{"amounts":[1,-2],"from":"USD","to":"EUR"}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid fields: amounts[1]", decodeError(t, rr))
	m.converter.AssertNotCalled(t, "ConvertMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Currencies ---

func TestHandler_ListCurrencies(t *testing.T) {
	h, _ := newTestHandler()
	rr := httptest.NewRecorder()
	h.ListCurrencies(rr, httptest.NewRequest(http.MethodGet, "/currencies", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListCurrenciesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Currencies, 11)
	require.Equal(t, "AUD", res.Currencies[0].Code)
}

func TestHandler_GetCurrency(t *testing.T) {
	h, _ := newTestHandler()

	rr := httptest.NewRecorder()
	h.GetCurrency(rr, withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/btc", nil), "code", "btc"))
	require.Equal(t, http.StatusOK, rr.Code)
	var info domain.CurrencyInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	require.Equal(t, "BTC", info.Code)
	require.True(t, info.Crypto)
	require.Equal(t, 8, info.Digits)

	rr = httptest.NewRecorder()
	h.GetCurrency(rr, withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/xyz", nil), "code", "xyz"))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "currency not found", decodeError(t, rr))
}

func TestHandler_FormatAmount(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		h, m := newTestHandler()
		m.formatter.On("Format", 1234.5, "EUR").Return("€1,234.50").Once()

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/eur/format?amount=1234.5", nil), "code", "eur")
		rr := httptest.NewRecorder()
		h.FormatAmount(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var res FormatResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		require.Equal(t, FormatResponse{Code: "EUR", Amount: 1234.5, Formatted: "€1,234.50"}, res)
	})

	t.Run("with original", func(t *testing.T) {
		h, m := newTestHandler()
		m.formatter.On("Format", 85.0, "EUR").Return("€85.00").Once()
		m.formatter.On("FormatWithOriginal", 85.0, "EUR", 100.0, "USD").Return("€85.00 ($100.00)").Once()

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/EUR/format?amount=85&original_amount=100&original_currency=usd", nil), "code", "EUR")
		rr := httptest.NewRecorder()
		h.FormatAmount(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var res FormatResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		require.Equal(t, "€85.00 ($100.00)", res.Formatted)
		m.formatter.AssertExpectations(t)
	})

	t.Run("bad amount", func(t *testing.T) {
		h, m := newTestHandler()
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/EUR/format?amount=abc", nil), "code", "EUR")
		rr := httptest.NewRecorder()
		h.FormatAmount(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "amount must be a number", decodeError(t, rr))
		m.formatter.AssertNotCalled(t, "Format", mock.Anything, mock.Anything)
	})

	t.Run("bad original amount", func(t *testing.T) {
		h, m := newTestHandler()
		m.formatter.On("Format", 85.0, "EUR").Return("€85.00").Once()
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/EUR/format?amount=85&original_currency=USD", nil), "code", "EUR")
		rr := httptest.NewRecorder()
		h.FormatAmount(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, "original_amount must be a number", decodeError(t, rr))
	})
}

// --- ConvertTransactions ---

func TestHandler_ConvertTransactions(t *testing.T) {
	h, m := newTestHandler()
	body := `{"display_currency":"eur","transactions":[` +
		`{"id":"t1","type":"income","amount":100,"category":"Salary","date":"2025-01-01"},` +
		`{"id":"t2","type":"expense","amount":10,"category":"Food","date":"2025-01-02","original_currency":"gbp"}]}`

	wantTxs := []domain.Transaction{
		{ID: "t1", Type: domain.TransactionIncome, Amount: 100, Category: "Salary", Date: "2025-01-01"},
		{ID: "t2", Type: domain.TransactionExpense, Amount: 10, Category: "Food", Date: "2025-01-02", OriginalCurrency: "GBP"},
	}
	converted := []domain.ConvertedTransaction{
		{Transaction: wantTxs[0], DisplayAmount: 85, DisplayCurrency: "EUR", Converted: true},
		{Transaction: wantTxs[1], DisplayAmount: 11.64, DisplayCurrency: "EUR", Converted: true},
	}
	totals := domain.Totals{Income: 85, Expenses: 11.64, Net: 73.36}
	m.transactions.On("ConvertForDisplay", mock.Anything, wantTxs, "EUR").Return(converted, totals, nil).Once()

	rr := httptest.NewRecorder()
	h.ConvertTransactions(rr, httptest.NewRequest(http.MethodPost, "/transactions/convert", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertTransactionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "EUR", res.DisplayCurrency)
	require.Len(t, res.Transactions, 2)
	require.Equal(t, totals, res.Totals)
	require.Equal(t, 100, res.Health.Score)
	require.Equal(t, domain.HealthExcellent, res.Health.Rating)
	m.transactions.AssertExpectations(t)
}

func TestHandler_ConvertTransactions_PartialFailure(t *testing.T) {
	h, m := newTestHandler()
	body := `{"display_currency":"USD","transactions":[{"id":"t1","type":"expense","amount":5,"original_currency":"ZZZ"}]}`
	converted := []domain.ConvertedTransaction{{
		Transaction:      domain.Transaction{ID: "t1", Type: domain.TransactionExpense, Amount: 5, OriginalCurrency: "ZZZ"},
		DisplayAmount:    5,
		DisplayCurrency:  "USD",
		ConversionFailed: true,
	}}
	m.transactions.On("ConvertForDisplay", mock.Anything, mock.Anything, "USD").
		Return(converted, domain.Totals{Expenses: 5, Net: -5}, domain.ErrUnsupportedCurrency).Once()

	rr := httptest.NewRecorder()
	h.ConvertTransactions(rr, httptest.NewRequest(http.MethodPost, "/transactions/convert", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertTransactionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.True(t, res.Transactions[0].ConversionFailed)
	require.Equal(t, domain.ErrUnsupportedCurrency.Error(), res.Error)
}

func TestHandler_ConvertTransactions_Invalid(t *testing.T) {
	h, m := newTestHandler()
	body := `{"display_currency":"EUR","transactions":[{"id":"","type":"refund","amount":-1}]}`

	rr := httptest.NewRecorder()
	h.ConvertTransactions(rr, httptest.NewRequest(http.MethodPost, "/transactions/convert", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid fields: transactions[0].id, transactions[0].type, transactions[0].amount", decodeError(t, rr))
	m.transactions.AssertNotCalled(t, "ConvertForDisplay", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_FormatAmount_NonFiniteShownAsZero(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "%2BInf"} {
		t.Run(raw, func(t *testing.T) {
			h, m := newTestHandler()
			m.formatter.On("Format", 0.0, "USD").Return("$0.00").Once()

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/USD/format?amount="+raw, nil), "code", "USD")
			rr := httptest.NewRecorder()
			h.FormatAmount(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			var res FormatResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
			require.Equal(t, FormatResponse{Code: "USD", Amount: 0, Formatted: "$0.00"}, res)
			m.formatter.AssertExpectations(t)
		})
	}
}

func TestHandler_FormatAmount_NonFiniteOriginal(t *testing.T) {
	h, m := newTestHandler()
	m.formatter.On("Format", 85.0, "EUR").Return("€85.00").Once()
	m.formatter.On("FormatWithOriginal", 85.0, "EUR", 0.0, "USD").Return("€85.00 ($0.00)").Once()

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/currencies/EUR/format?amount=85&original_amount=NaN&original_currency=USD", nil), "code", "EUR")
	rr := httptest.NewRecorder()
	h.FormatAmount(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "€85.00 ($0.00)")
	m.formatter.AssertExpectations(t)
}

func TestHandler_Convert_AmountAboveLimit(t *testing.T) {
	h, m := newTestHandler()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(`{"amount":1e308,"from":"USD","to":"INR"}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid fields: amount", decodeError(t, rr))
	m.converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Convert_NonFiniteResultReturnsOriginalAmount(t *testing.T) {
	h, m := newTestHandler()
	m.converter.On("Convert", mock.Anything, 1e15, "XTS", "INR").
		Return(rate.Conversion{Amount: 1e15, From: "XTS", To: "INR"}, domain.ErrNonFiniteAmount).Once()

	rr := httptest.NewRecorder()
	h.Convert(rr, httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(`{"amount":1e15,"from":"XTS","to":"INR"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, 1e15, res.Result)
	require.False(t, res.Converted)
	require.Equal(t, domain.ErrNonFiniteAmount.Error(), res.Error)
}

func TestHandler_ConvertBatch_AmountAboveLimit(t *testing.T) {
	h, m := newTestHandler()

	rr := httptest.NewRecorder()
	h.ConvertBatch(rr, httptest.NewRequest(http.MethodPost, "/conversions/batch", strings.NewReader(`{"amounts":[1,1e308],"from":"USD","to":"INR"}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid fields: amounts[1]", decodeError(t, rr))
	m.converter.AssertNotCalled(t, "ConvertMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ConvertTransactions_AmountAboveLimit(t *testing.T) {
	h, m := newTestHandler()
	body := `{"display_currency":"INR","transactions":[{"id":"t1","type":"income","amount":1e308}]}`

	rr := httptest.NewRecorder()
	h.ConvertTransactions(rr, httptest.NewRequest(http.MethodPost, "/transactions/convert", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid fields: transactions[0].amount", decodeError(t, rr))
	m.transactions.AssertNotCalled(t, "ConvertForDisplay", mock.Anything, mock.Anything, mock.Anything)
}

func TestWriteJSON_UnencodableBodyIs500(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, ConvertResponse{Result: math.Inf(1)})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "failed to encode response", decodeError(t, rr))
}
