package platform

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultYoutubeBaseURL = "https://www.googleapis.com/youtube/v3"

// 每次拉取纳入聚合的最近视频数上限
const maxRecentVideos = 10

// YoutubeAdapter 通过 YouTube Data API v3 拉取频道级计数与最近视频。
// 凭据为用户授权的 access token，以 Bearer 方式携带。
type YoutubeAdapter struct {
	client *resty.Client
}

func NewYoutubeAdapter(baseURL string, timeout time.Duration) *YoutubeAdapter {
	if baseURL == "" {
		baseURL = defaultYoutubeBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &YoutubeAdapter{client: client}
}

func (s *YoutubeAdapter) Platform() string {
	return consts.PlatformYoutube
}

type ytChannelResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount       string `json:"viewCount"`
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type ytPlaylistItemsResponse struct {
	Items []struct {
		Snippet struct {
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

type ytVideosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string    `json:"title"`
			PublishedAt time.Time `json:"publishedAt"`
			Thumbnails  struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (s *YoutubeAdapter) FetchStats(ctx context.Context, userID uint64, credential string, windowDays int) (*model.PlatformStats, error) {
	if err := validateFetchArgs(credential, windowDays); err != nil {
		return nil, err
	}

	channel, err := s.fetchChannel(ctx, credential)
	if err != nil {
		return nil, err
	}

	videoIDs, err := s.fetchUploadIds(ctx, credential, channel.uploadsPlaylist)
	if err != nil {
		return nil, err
	}

	posts, engagement, err := s.fetchVideos(ctx, credential, videoIDs, windowDays)
	if err != nil {
		return nil, err
	}

	// 增长列由调用方基于上一周期快照计算，适配器只产出当前计数
	return &model.PlatformStats{
		Platform:    consts.PlatformYoutube,
		Followers:   channel.subscribers,
		Views:       channel.views,
		Engagement:  engagement,
		Posts:       posts,
		LastUpdated: time.Now(),
		Source:      model.SourceLive,
	}, nil
}

func (s *YoutubeAdapter) FetchPosts(ctx context.Context, userID uint64, credential string, windowDays int) ([]*model.Post, error) {
	stats, err := s.FetchStats(ctx, userID, credential, windowDays)
	if err != nil {
		return nil, err
	}
	return stats.Posts, nil
}

type ytChannel struct {
	subscribers     int64
	views           int64
	uploadsPlaylist string
}

func (s *YoutubeAdapter) fetchChannel(ctx context.Context, credential string) (*ytChannel, error) {
	var body ytChannelResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetQueryParams(map[string]string{
			"part": "statistics,contentDetails",
			"mine": "true",
		}).
		SetResult(&body).
		Get("/channels")
	if err != nil {
		return nil, errors.Wrap(err, "youtube channels request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("youtube channels request returned %s", resp.Status())
	}
	if len(body.Items) == 0 {
		return nil, errors.New("youtube channels response missing items")
	}

	item := body.Items[0]
	subscribers, err := parseCount(item.Statistics.SubscriberCount)
	if err != nil {
		return nil, errors.Wrap(err, "youtube subscriberCount")
	}
	views, err := parseCount(item.Statistics.ViewCount)
	if err != nil {
		return nil, errors.Wrap(err, "youtube viewCount")
	}
	if item.ContentDetails.RelatedPlaylists.Uploads == "" {
		return nil, errors.New("youtube channels response missing uploads playlist")
	}

	return &ytChannel{
		subscribers:     subscribers,
		views:           views,
		uploadsPlaylist: item.ContentDetails.RelatedPlaylists.Uploads,
	}, nil
}

func (s *YoutubeAdapter) fetchUploadIds(ctx context.Context, credential string, playlistID string) ([]string, error) {
	var body ytPlaylistItemsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"playlistId": playlistID,
			"maxResults": strconv.Itoa(maxRecentVideos),
		}).
		SetResult(&body).
		Get("/playlistItems")
	if err != nil {
		return nil, errors.Wrap(err, "youtube playlistItems request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("youtube playlistItems request returned %s", resp.Status())
	}

	ids := make([]string, 0, len(body.Items))
	for _, item := range body.Items {
		if item.Snippet.ResourceID.VideoID != "" {
			ids = append(ids, item.Snippet.ResourceID.VideoID)
		}
	}
	return ids, nil
}

func (s *YoutubeAdapter) fetchVideos(ctx context.Context, credential string, videoIDs []string, windowDays int) ([]*model.Post, int64, error) {
	if len(videoIDs) == 0 {
		return []*model.Post{}, 0, nil
	}

	var body ytVideosResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetQueryParams(map[string]string{
			"part": "snippet,statistics",
			"id":   strings.Join(videoIDs, ","),
		}).
		SetResult(&body).
		Get("/videos")
	if err != nil {
		return nil, 0, errors.Wrap(err, "youtube videos request failed")
	}
	if resp.IsError() {
		return nil, 0, errors.Errorf("youtube videos request returned %s", resp.Status())
	}

	cutoff := time.Now().AddDate(0, 0, -windowDays)
	posts := make([]*model.Post, 0, len(body.Items))
	var engagement int64

	for _, item := range body.Items {
		views, err := parseCount(item.Statistics.ViewCount)
		if err != nil {
			return nil, 0, errors.Wrap(err, "youtube video viewCount")
		}
		likes, err := parseCount(item.Statistics.LikeCount)
		if err != nil {
			return nil, 0, errors.Wrap(err, "youtube video likeCount")
		}
		comments, err := parseCount(item.Statistics.CommentCount)
		if err != nil {
			return nil, 0, errors.Wrap(err, "youtube video commentCount")
		}

		if item.Snippet.PublishedAt.Before(cutoff) {
			continue
		}

		engagement += likes + comments
		posts = append(posts, &model.Post{
			ID:           item.ID,
			Platform:     consts.PlatformYoutube,
			Title:        item.Snippet.Title,
			ThumbnailURL: item.Snippet.Thumbnails.Medium.URL,
			Views:        views,
			Likes:        likes,
			Comments:     comments,
			DatePosted:   item.Snippet.PublishedAt,
			URL:          "https://www.youtube.com/watch?v=" + item.ID,
		})
	}

	return posts, engagement, nil
}

func parseCount(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
