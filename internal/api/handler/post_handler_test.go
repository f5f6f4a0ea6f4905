package handler

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/service"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostService struct {
	gotID  uint64
	gotReq *dto.PostPatchDTO
	err    error
}

func (s *stubPostService) Patch(ctx context.Context, postID uint64, req *dto.PostPatchDTO) error {
	s.gotID = postID
	s.gotReq = req
	return s.err
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body string) *dto.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

func newPostRouter(svc service.PostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/posts/:id", NewPostHandler(svc).Patch)
	return r
}

func TestPostHandler_Patch(t *testing.T) {
	svc := &stubPostService{}
	r := newPostRouter(svc)

	resp := doRequest(t, r, http.MethodPatch, "/api/posts/42",
		`{"draft_content": "edited", "approved": true}`)

	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, uint64(42), svc.gotID)
	require.NotNil(t, svc.gotReq.DraftContent)
	assert.Equal(t, "edited", *svc.gotReq.DraftContent)
	require.NotNil(t, svc.gotReq.Approved)
	assert.True(t, *svc.gotReq.Approved)
}

func TestPostHandler_Patch_BadID(t *testing.T) {
	r := newPostRouter(&stubPostService{})

	resp := doRequest(t, r, http.MethodPatch, "/api/posts/abc", `{"approved": true}`)
	assert.Equal(t, 400, resp.Code)
}

func TestPostHandler_Patch_EmptyBody(t *testing.T) {
	svc := &stubPostService{err: service.ErrParamInvalid}
	r := newPostRouter(svc)

	resp := doRequest(t, r, http.MethodPatch, "/api/posts/1", `{}`)
	assert.Equal(t, 400, resp.Code)
}

func TestPostHandler_Patch_StoreNotReady(t *testing.T) {
	svc := &stubPostService{err: service.ErrStoreNotReady}
	r := newPostRouter(svc)

	resp := doRequest(t, r, http.MethodPatch, "/api/posts/1", `{"approved": true}`)
	assert.Equal(t, 503, resp.Code)
	assert.Equal(t, service.ErrStoreNotReady.Error(), resp.Message)
}
