package platform

import (
	"Pulse/internal/pkg/consts"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeYoutubeServer(t *testing.T, recentPublishedAt time.Time, oldPublishedAt time.Time) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/channels":
			fmt.Fprint(w, `{"items":[{"id":"ch1",
				"statistics":{"viewCount":"1254000","subscriberCount":"78200"},
				"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}}]}`)
		case "/playlistItems":
			assert.Equal(t, "UU123", r.URL.Query().Get("playlistId"))
			fmt.Fprint(w, `{"items":[
				{"snippet":{"resourceId":{"videoId":"vid1"}}},
				{"snippet":{"resourceId":{"videoId":"vid2"}}}]}`)
		case "/videos":
			fmt.Fprintf(w, `{"items":[
				{"id":"vid1","snippet":{"title":"Recent upload","publishedAt":%q,
					"thumbnails":{"medium":{"url":"https://img/vid1.jpg"}}},
					"statistics":{"viewCount":"45200","likeCount":"3200","commentCount":"412"}},
				{"id":"vid2","snippet":{"title":"Old upload","publishedAt":%q,
					"thumbnails":{"medium":{"url":"https://img/vid2.jpg"}}},
					"statistics":{"viewCount":"99999","likeCount":"50","commentCount":"5"}}]}`,
				recentPublishedAt.Format(time.RFC3339), oldPublishedAt.Format(time.RFC3339))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestYoutubeAdapter_FetchStats(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -2)
	old := time.Now().AddDate(0, 0, -40)
	ts := fakeYoutubeServer(t, recent, old)
	defer ts.Close()

	adapter := NewYoutubeAdapter(ts.URL, 5*time.Second)
	stats, err := adapter.FetchStats(context.Background(), 1, "token-123", 7)
	require.NoError(t, err)

	assert.Equal(t, consts.PlatformYoutube, stats.Platform)
	assert.Equal(t, int64(78200), stats.Followers)
	assert.Equal(t, int64(1254000), stats.Views)

	// 窗口外的视频不计入帖子与互动
	require.Len(t, stats.Posts, 1)
	assert.Equal(t, "vid1", stats.Posts[0].ID)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", stats.Posts[0].URL)
	assert.Equal(t, int64(3200+412), stats.Engagement)
}

func TestYoutubeAdapter_FetchStats_WideWindow(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -2)
	old := time.Now().AddDate(0, 0, -40)
	ts := fakeYoutubeServer(t, recent, old)
	defer ts.Close()

	adapter := NewYoutubeAdapter(ts.URL, 5*time.Second)
	stats, err := adapter.FetchStats(context.Background(), 1, "token-123", 90)
	require.NoError(t, err)

	assert.Len(t, stats.Posts, 2)
	assert.Equal(t, int64(3200+412+50+5), stats.Engagement)
}

func TestYoutubeAdapter_FetchStats_InvalidArgs(t *testing.T) {
	adapter := NewYoutubeAdapter("http://localhost:1", time.Second)

	_, err := adapter.FetchStats(context.Background(), 1, "", 7)
	assert.ErrorIs(t, err, ErrEmptyCredential)

	_, err = adapter.FetchStats(context.Background(), 1, "token", 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestYoutubeAdapter_FetchStats_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	adapter := NewYoutubeAdapter(ts.URL, 5*time.Second)
	_, err := adapter.FetchStats(context.Background(), 1, "token-123", 7)
	assert.Error(t, err)
}
