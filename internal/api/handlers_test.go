package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"retailedge/app"
	"retailedge/domain/table"
	"retailedge/internal/assemble"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return s.data, s.err
}

type stubDecoder struct {
	table *table.InputTable
}

func (s *stubDecoder) Decode(data []byte, sourceName string) (*table.InputTable, error) {
	return s.table, nil
}

type noopRepo struct{}

func (noopRepo) MarkCompleted(ctx context.Context, projectID string, result *assemble.ResultPayload) error {
	return nil
}

func (noopRepo) MarkFailed(ctx context.Context, projectID string, message string) error {
	return nil
}

func newTestServer() *Server {
	decoder := &stubDecoder{table: &table.InputTable{
		Headers: []string{"SKU", "Value Sales"},
		Rows: []table.RawRow{
			{"SKU": "P1", "Value Sales": "100"},
		},
	}}
	service := app.NewAnalysisService(&stubFetcher{data: []byte("x")}, decoder, noopRepo{}, 1)
	return NewServer(service)
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	newTestServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))

	newTestServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var payload assemble.ErrorPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response not an error envelope: %v", err)
	}
	if payload.Status != "error" {
		t.Errorf("status = %q, want error", payload.Status)
	}
}

func TestHandleAnalyze_InvalidProjectID(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"project_id": "not-a-uuid", "file_url": "https://example.com/f.xlsx"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))

	newTestServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAnalyze_InvalidFileURL(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"project_id": "550e8400-e29b-41d4-a716-446655440000", "file_url": "ftp://example.com/f.xlsx"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))

	newTestServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAnalyze_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"project_id": "550e8400-e29b-41d4-a716-446655440000", "file_url": "https://example.com/f.xlsx"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))

	newTestServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload assemble.ResultPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response not a result payload: %v", err)
	}
	if payload.Status != "success" {
		t.Errorf("status = %q, want success", payload.Status)
	}
	if len(payload.RawData) != 1 {
		t.Errorf("raw_data rows = %d, want 1", len(payload.RawData))
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)

	newTestServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing permissive CORS header")
	}
}
