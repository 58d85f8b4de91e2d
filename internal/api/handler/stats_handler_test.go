package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/service"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	users map[uint64]*dto.UserDTO
}

func (s *fakeUserService) SyncUser(ctx context.Context, req *dto.SyncUserDTO) (*dto.UserDTO, error) {
	return nil, nil
}

func (s *fakeUserService) GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserService) CheckAuth(ctx context.Context, firebaseUID string) (*dto.AuthCheckDTO, error) {
	return &dto.AuthCheckDTO{Authenticated: false}, nil
}

func (s *fakeUserService) UpdateAvatar(ctx context.Context, userID uint64, file *multipart.FileHeader) (string, error) {
	return "", nil
}

type fakeStatsService struct {
	lastDays  int
	lastLimit int
}

func (s *fakeStatsService) GetPlatformStats(ctx context.Context, userID uint64, platformTag string, windowDays int) (*model.PlatformStats, error) {
	s.lastDays = windowDays
	if !consts.IsSupportedPlatform(platformTag) {
		return nil, service.ErrUnsupportedPlatform
	}
	return &model.PlatformStats{Platform: platformTag, Source: model.SourceSample}, nil
}

func (s *fakeStatsService) GetAllPlatformStats(ctx context.Context, userID uint64, windowDays int) ([]*model.PlatformStats, error) {
	s.lastDays = windowDays
	out := make([]*model.PlatformStats, 0, len(consts.Platforms))
	for _, platformTag := range consts.Platforms {
		out = append(out, &model.PlatformStats{Platform: platformTag, Source: model.SourceSample})
	}
	return out, nil
}

func (s *fakeStatsService) GetPosts(ctx context.Context, userID uint64, platformTag string, windowDays int, page int, limit int) (*dto.PostsPageDTO, error) {
	s.lastDays = windowDays
	s.lastLimit = limit
	return &dto.PostsPageDTO{
		Posts:      []*model.Post{},
		Pagination: &dto.Pagination{Page: page, Limit: limit},
	}, nil
}

func (s *fakeStatsService) SnapshotDailyCounters(ctx context.Context) error {
	return nil
}

func setupStatsRouter(statsSvc service.StatsService, userSvc service.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	statsHandler := NewStatsHandler(statsSvc, userSvc)
	postHandler := NewPostHandler(statsSvc, userSvc)
	r.GET("/api/stats", statsHandler.GetStats)
	r.GET("/api/posts", postHandler.GetPosts)
	return r
}

func testUsers() *fakeUserService {
	return &fakeUserService{users: map[uint64]*dto.UserDTO{
		1: {UserID: 1, IsPro: false},
		2: {UserID: 2, IsPro: true},
	}}
}

func doRequest(r *gin.Engine, target string) (*httptest.ResponseRecorder, *dto.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)

	body := &dto.Response{}
	_ = json.Unmarshal(w.Body.Bytes(), body)
	return w, body
}

func TestGetStats_FreeTierGate(t *testing.T) {
	r := setupStatsRouter(&fakeStatsService{}, testUsers())

	w, body := doRequest(r, "/api/stats?userId=1&days=30")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 403, body.Code)
	assert.True(t, body.Upgrade)
}

func TestGetStats_FreeTierWithinWindow(t *testing.T) {
	r := setupStatsRouter(&fakeStatsService{}, testUsers())

	w, body := doRequest(r, "/api/stats?userId=1&days=7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, body.Code)
	assert.False(t, body.Upgrade)
}

func TestGetStats_ProUserWideWindow(t *testing.T) {
	statsSvc := &fakeStatsService{}
	r := setupStatsRouter(statsSvc, testUsers())

	w, _ := doRequest(r, "/api/stats?userId=2&days=90")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 90, statsSvc.lastDays)
}

func TestGetStats_DefaultDays(t *testing.T) {
	statsSvc := &fakeStatsService{}
	r := setupStatsRouter(statsSvc, testUsers())

	w, _ := doRequest(r, "/api/stats?userId=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, consts.DefaultDays, statsSvc.lastDays)
}

func TestGetStats_AllPlatformsArray(t *testing.T) {
	r := setupStatsRouter(&fakeStatsService{}, testUsers())

	w, body := doRequest(r, "/api/stats?userId=1&platform=all")
	require.Equal(t, http.StatusOK, w.Code)

	entries, ok := body.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, entries, len(consts.Platforms))
}

func TestGetStats_ParamErrors(t *testing.T) {
	r := setupStatsRouter(&fakeStatsService{}, testUsers())

	w, _ := doRequest(r, "/api/stats")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(r, "/api/stats?userId=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(r, "/api/stats?userId=1&days=-3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_UserNotFound(t *testing.T) {
	r := setupStatsRouter(&fakeStatsService{}, testUsers())

	w, body := doRequest(r, "/api/stats?userId=99")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 404, body.Code)
}

func TestGetPosts_Defaults(t *testing.T) {
	statsSvc := &fakeStatsService{}
	r := setupStatsRouter(statsSvc, testUsers())

	w, _ := doRequest(r, "/api/posts?userId=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, consts.DefaultDays, statsSvc.lastDays)
	assert.Equal(t, consts.DefaultLimit, statsSvc.lastLimit)
}

func TestGetPosts_FreeTierGate(t *testing.T) {
	r := setupStatsRouter(&fakeStatsService{}, testUsers())

	w, body := doRequest(r, "/api/posts?userId=1&days=30")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, body.Upgrade)
}
