package service

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"time"
)

// 未绑定凭据的用户看到的演示数据。数值固定，保证重复读取幂等。
var sampleSeedTime = time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC)

type sampleSeed struct {
	followers        int64
	followerGrowth   float64
	views            int64
	viewGrowth       float64
	engagement       int64
	engagementGrowth float64
	posts            []*model.Post
}

var sampleSeeds = map[string]sampleSeed{
	consts.PlatformYoutube: {
		followers:        78200,
		followerGrowth:   3.2,
		views:            1254000,
		viewGrowth:       5.6,
		engagement:       45800,
		engagementGrowth: 2.1,
		posts: []*model.Post{
			{
				ID:         "yt-sample-1",
				Platform:   consts.PlatformYoutube,
				Title:      "How We Grew Our Channel to 78K Subscribers",
				Views:      45200,
				Likes:      3200,
				Comments:   412,
				Shares:     180,
				DatePosted: sampleSeedTime.AddDate(0, 0, -2),
				URL:        "https://www.youtube.com/watch?v=sample1",
			},
			{
				ID:         "yt-sample-2",
				Platform:   consts.PlatformYoutube,
				Title:      "Analytics Deep Dive: What Actually Works",
				Views:      28700,
				Likes:      2100,
				Comments:   287,
				Shares:     95,
				DatePosted: sampleSeedTime.AddDate(0, 0, -5),
				URL:        "https://www.youtube.com/watch?v=sample2",
			},
		},
	},
	consts.PlatformInstagram: {
		followers:        24500,
		followerGrowth:   1.8,
		views:            386000,
		viewGrowth:       -0.7,
		engagement:       19200,
		engagementGrowth: 4.3,
		posts: []*model.Post{
			{
				ID:         "ig-sample-1",
				Platform:   consts.PlatformInstagram,
				Title:      "Behind the scenes",
				Views:      15400,
				Likes:      2800,
				Comments:   164,
				Shares:     72,
				DatePosted: sampleSeedTime.AddDate(0, 0, -1),
				URL:        "https://www.instagram.com/p/sample1",
			},
		},
	},
	consts.PlatformTwitter: {
		followers:        12800,
		followerGrowth:   0.9,
		views:            204000,
		viewGrowth:       2.4,
		engagement:       8600,
		engagementGrowth: -1.2,
		posts: []*model.Post{
			{
				ID:         "tw-sample-1",
				Platform:   consts.PlatformTwitter,
				Title:      "Thread: 10 lessons from a year of posting daily",
				Views:      38200,
				Likes:      1400,
				Comments:   96,
				Shares:     310,
				DatePosted: sampleSeedTime.AddDate(0, 0, -3),
				URL:        "https://twitter.com/sample/status/1",
			},
		},
	},
	consts.PlatformFacebook: {
		followers:        8930,
		followerGrowth:   0.4,
		views:            97000,
		viewGrowth:       1.1,
		engagement:       5200,
		engagementGrowth: 0.8,
		posts: []*model.Post{
			{
				ID:         "fb-sample-1",
				Platform:   consts.PlatformFacebook,
				Title:      "Community update",
				Views:      8400,
				Likes:      620,
				Comments:   58,
				Shares:     41,
				DatePosted: sampleSeedTime.AddDate(0, 0, -4),
				URL:        "https://www.facebook.com/sample/posts/1",
			},
		},
	},
}

// SampleStats 返回指定平台的演示统计，未知平台返回 nil
func SampleStats(platform string) *model.PlatformStats {
	seed, ok := sampleSeeds[platform]
	if !ok {
		return nil
	}

	posts := make([]*model.Post, len(seed.posts))
	copy(posts, seed.posts)

	return &model.PlatformStats{
		Platform:         platform,
		Followers:        seed.followers,
		FollowerGrowth:   seed.followerGrowth,
		Views:            seed.views,
		ViewGrowth:       seed.viewGrowth,
		Engagement:       seed.engagement,
		EngagementGrowth: seed.engagementGrowth,
		Posts:            posts,
		LastUpdated:      sampleSeedTime,
		Source:           model.SourceSample,
	}
}
