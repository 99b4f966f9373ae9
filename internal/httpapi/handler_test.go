package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/optimode/contactkit"
	"github.com/optimode/contactkit/types"
)

type downStore struct{ contactkit.CacheStore }

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

type HandlerSuite struct {
	suite.Suite
	validator *contactkit.Validator
	router    chi.Router
}

func (s *HandlerSuite) SetupTest() {
	s.validator = contactkit.New(contactkit.DefaultConfig())
	s.router = s.newRouter(s.validator, 3)
}

func (s *HandlerSuite) newRouter(svc *contactkit.Validator, maxBatch int) chi.Router {
	h := NewHandler(svc, HandlerConfig{MaxBatchSize: maxBatch, Locales: svc.Catalog()})
	return NewRouter(h, RouterConfig{
		MaxRequestBodyBytes: 1 << 10,
		RequestTimeout:      5 * time.Second,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics\n"))
		}),
	})
}

func (s *HandlerSuite) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var e ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func (s *HandlerSuite) TestValidate_Email() {
	rec := s.do(http.MethodPost, "/v1/validate", `{"kind":"email","value":"user@example.com"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var res contactkit.Result
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.True(res.Valid)
	s.Equal(contactkit.OutcomeValid, res.Outcome)
	s.Equal(types.KeyEmailValidFormat, res.MessageKey)
	s.Equal("user@example.com", res.Value)
}

func (s *HandlerSuite) TestValidate_InvalidInputIsNotAnError() {
	rec := s.do(http.MethodPost, "/v1/validate", `{"kind":"email","value":"john@example"}`)
	s.Equal(http.StatusOK, rec.Code)

	var res contactkit.Result
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.False(res.Valid)
	s.Equal(types.KeyEmailMissingTLD, res.MessageKey)
}

func (s *HandlerSuite) TestValidate_AcceptLanguage() {
	body := `{"kind":"phone","value":"0541234567","region":"IL"}`
	en := s.do(http.MethodPost, "/v1/validate", body)
	he := s.do(http.MethodPost, "/v1/validate", body, "Accept-Language", "he-IL,he;q=0.9")
	explicit := s.do(http.MethodPost, "/v1/validate",
		`{"kind":"phone","value":"0541234567","region":"IL","locale":"en"}`, "Accept-Language", "he")

	var enRes, heRes, explicitRes contactkit.Result
	s.Require().NoError(json.Unmarshal(en.Body.Bytes(), &enRes))
	s.Require().NoError(json.Unmarshal(he.Body.Bytes(), &heRes))
	s.Require().NoError(json.Unmarshal(explicit.Body.Bytes(), &explicitRes))
	s.Equal(enRes.MessageKey, heRes.MessageKey)
	s.NotEqual(enRes.Message, heRes.Message)
	s.Equal(enRes.Message, explicitRes.Message, "locale field wins over the header")
}

func (s *HandlerSuite) TestValidate_BadRequests() {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", ``, "request body is empty"},
		{"malformed", `{"kind":`, "invalid JSON in request body"},
		{"syntax", `{"kind" "email"}`, "malformed JSON at position"},
		{"unknown field", `{"kind":"email","value":"a@b.co","extra":1}`, `unknown field "extra"`},
		{"wrong type", `{"kind":"email","value":42}`, `invalid value for field "value"`},
		{"unknown kind", `{"kind":"fax","value":"123"}`, "unknown request kind"},
		{"two values", `{"kind":"email","value":"a@b.co"} {}`, "multiple JSON values"},
		{"too large", `{"kind":"email","value":"` + strings.Repeat("a", 2048) + `"}`, "request body too large"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPost, "/v1/validate", tt.body)
			s.Equal(http.StatusBadRequest, rec.Code)
			e := s.decodeError(rec)
			s.Equal("invalid_request", e.Error)
			s.Contains(e.Message, tt.want)
		})
	}
}

func (s *HandlerSuite) TestValidateBatch() {
	rec := s.do(http.MethodPost, "/v1/validate/batch", `{"items":[
		{"kind":"email","value":"a@example.com"},
		{"kind":"phone","value":"054-123-4567","region":"IL"},
		{"kind":"email","value":"broken"}
	]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp BatchResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Results, 3)
	s.Equal("a@example.com", resp.Results[0].Value)
	s.Equal(contactkit.KindPhone, resp.Results[1].Kind)
	s.True(resp.Results[1].Valid)
	s.False(resp.Results[2].Valid)
}

func (s *HandlerSuite) TestValidateBatch_Limits() {
	rec := s.do(http.MethodPost, "/v1/validate/batch", `{"items":[]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec).Message, "empty batch")

	item := `{"kind":"email","value":"a@example.com"}`
	rec = s.do(http.MethodPost, "/v1/validate/batch", `{"items":[`+strings.Repeat(item+",", 3)+item+`]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec).Message, "maximum of 3 items")

	rec = s.do(http.MethodPost, "/v1/validate/batch", `{"items":[{"kind":"fax","value":"1"}]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())

	down := contactkit.New(contactkit.DefaultConfig()).
		WithCache(downStore{contactkit.NewMemoryCache(10)}, time.Minute)
	s.router = s.newRouter(down, 3)
	rec = s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("unavailable", s.decodeError(rec).Error)
}

func (s *HandlerSuite) TestRoutingAndRequestID() {
	rec := s.do(http.MethodGet, "/nope", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", s.decodeError(rec).Error)
	s.Len(rec.Header().Get("X-Request-Id"), 36, "generated uuid")

	rec = s.do(http.MethodGet, "/v1/validate", "", "X-Request-ID", "abc-123")
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal("abc-123", rec.Header().Get("X-Request-Id"))

	rec = s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "# metrics")
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	go func() { done <- Serve(ctx, ln, handler, time.Second, nil) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
