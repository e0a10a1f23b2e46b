package store

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*gin.Engine, *service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newTestRepository(t)
	subs := newSubscribers()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := newService(repo, subs, logger)
	api := newHTTPAPI(svc, subs)

	router := gin.New()
	api.register(router)
	return router, svc
}

const validRecordJSON = `{"road_state":"SMOOTH","accelerometer":{"x":1,"y":2,"z":3},"gps":{"latitude":10,"longitude":20},"timestamp":"2024-01-01T00:00:00Z"}`

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHTTP_Create_SingleObject_Returns201WithScalarLocation(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodPost, "/api/processed-agent-data", validRecordJSON)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/processed-agent-data/1", rec.Header().Get("Location"))
}

func TestHTTP_Create_SingleElementList_MatchesSingleObjectResponse(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodPost, "/api/processed-agent-data", "["+validRecordJSON+"]")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/processed-agent-data/1", rec.Header().Get("Location"))
}

func TestHTTP_Create_MultiElementList_ReturnsJSONArrayLocation(t *testing.T) {
	router, _ := newTestAPI(t)
	body := "[" + validRecordJSON + "," + validRecordJSON + "]"
	rec := doRequest(router, http.MethodPost, "/api/processed-agent-data", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `["/api/processed-agent-data/1","/api/processed-agent-data/2"]`, rec.Header().Get("Location"))
}

func TestHTTP_Create_EmptyList_Returns200NoBody(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodPost, "/api/processed-agent-data", "[]")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestHTTP_Create_OutOfRangeLatitude_Returns400(t *testing.T) {
	router, _ := newTestAPI(t)
	bad := `{"road_state":"SMOOTH","accelerometer":{"x":0,"y":0,"z":0},"gps":{"latitude":91.0,"longitude":0.0},"timestamp":"2024-01-01T00:00:00Z"}`
	rec := doRequest(router, http.MethodPost, "/api/processed-agent-data", bad)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_Read_NotFound(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_Read_Found(t *testing.T) {
	router, _ := newTestAPI(t)
	created := doRequest(router, http.MethodPost, "/api/processed-agent-data", validRecordJSON)
	require.Equal(t, http.StatusCreated, created.Code)

	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"road_state":"SMOOTH"`)
}

func TestHTTP_ReadList_RejectsOversizePage(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data?page=1&size=21", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_ReadList_AcceptsMaxSize(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data?page=1&size=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_ReadList_AbsentPageAndSize_UsesDefaults(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_ReadList_ExplicitZeroPage_Returns400(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data?page=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_ReadList_ExplicitZeroSize_Returns400(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodGet, "/api/processed-agent-data?size=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_Update_NotFound(t *testing.T) {
	router, _ := newTestAPI(t)
	rec := doRequest(router, http.MethodPut, "/api/processed-agent-data/999", validRecordJSON)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_Update_Found(t *testing.T) {
	router, _ := newTestAPI(t)
	doRequest(router, http.MethodPost, "/api/processed-agent-data", validRecordJSON)

	rec := doRequest(router, http.MethodPut, "/api/processed-agent-data/1", validRecordJSON)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHTTP_Delete_IsIdempotent(t *testing.T) {
	router, _ := newTestAPI(t)
	doRequest(router, http.MethodPost, "/api/processed-agent-data", validRecordJSON)

	first := doRequest(router, http.MethodDelete, "/api/processed-agent-data/1", "")
	second := doRequest(router, http.MethodDelete, "/api/processed-agent-data/1", "")

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNoContent, second.Code)
}

func TestIsJSONArray(t *testing.T) {
	assert.True(t, isJSONArray([]byte("  [1,2,3]")))
	assert.False(t, isJSONArray([]byte(`{"a":1}`)))
	assert.False(t, isJSONArray([]byte("")))
}
