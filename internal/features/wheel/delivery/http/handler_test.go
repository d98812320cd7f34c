package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "spinwheel-backend/internal/common/errors"
	"spinwheel-backend/internal/common/middleware"
	"spinwheel-backend/internal/features/wheel/models/dto"
	"spinwheel-backend/internal/features/wheel/service"
)

type stubService struct {
	drawIndex  int
	drawErr    error
	confirmMsg string
	confirmErr error

	lastContactID string
	lastPrize     dto.PrizeDescriptor
}

func (s *stubService) Draw(ctx context.Context, contactID string) (int, error) {
	s.lastContactID = contactID
	return s.drawIndex, s.drawErr
}

func (s *stubService) Confirm(ctx context.Context, contactID string, prize dto.PrizeDescriptor) (string, error) {
	s.lastContactID = contactID
	s.lastPrize = prize
	return s.confirmMsg, s.confirmErr
}

func newTestRouter(svc service.SpinService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	NewWheelHandler(svc).RegisterRoutes(api)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDraw_ReturnsSegmentIndex(t *testing.T) {
	svc := &stubService{drawIndex: 3}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/draw", `{"contactId": "u1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.DrawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Index)
	assert.Equal(t, "u1", svc.lastContactID)
}

func TestDraw_MissingContactID(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := postJSON(t, router, "/api/v1/wheel/draw", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraw_MalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := postJSON(t, router, "/api/v1/wheel/draw", `{"contactId": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraw_BusinessRejectionIsHTTP200(t *testing.T) {
	svc := &stubService{drawErr: service.ErrAlreadyParticipated}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/draw", `{"contactId": "u1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BusinessError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "already participated", resp.Message)
}

func TestDraw_NotYetOpenIsHTTP200(t *testing.T) {
	svc := &stubService{drawErr: service.ErrNotYetOpen}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/draw", `{"contactId": "u1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BusinessError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
}

func TestDraw_StoreFaultHidesDetail(t *testing.T) {
	svc := &stubService{drawErr: apperrors.NewStoreError("HasPlayed", assert.AnError)}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/draw", `{"contactId": "u1"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Internal Server Error", resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestConfirm_Success(t *testing.T) {
	svc := &stubService{confirmMsg: "Congratulations!"}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/confirm",
		`{"contactId": "u1", "prize": {"code": "0002", "text": "One free 800g tin"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "u1", svc.lastContactID)
	assert.Equal(t, dto.PrizeDescriptor{Code: "0002", Text: "One free 800g tin"}, svc.lastPrize)
}

func TestConfirm_MissingPrize(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := postJSON(t, router, "/api/v1/wheel/confirm", `{"contactId": "u1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirm_NoPendingDrawIsHTTP200(t *testing.T) {
	svc := &stubService{confirmErr: service.ErrNoPendingDraw}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/confirm",
		`{"contactId": "u1", "prize": {"code": "0002", "text": "One free 800g tin"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BusinessError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "no pending draw to confirm", resp.Message)
}

func TestConfirm_DispatchFaultIsHTTP500(t *testing.T) {
	svc := &stubService{confirmErr: apperrors.NewDispatchError("SendText", assert.AnError)}
	router := newTestRouter(svc)

	w := postJSON(t, router, "/api/v1/wheel/confirm",
		`{"contactId": "u1", "prize": {"code": "0002", "text": "One free 800g tin"}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
