package consts

// 支持的平台，封闭集合
const (
	PlatformYoutube   = "youtube"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"

	PlatformAll = "all"
)

// Platforms 固定的平台遍历顺序
var Platforms = []string{
	PlatformYoutube,
	PlatformInstagram,
	PlatformTwitter,
	PlatformFacebook,
}

// IsSupportedPlatform 判断平台标识是否在封闭集合内
func IsSupportedPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// 订阅计划
const (
	PlanMonthly = "monthly"
	PlanAnnual  = "annual"
)

// PlanPrices 计划价格表，单位为最小货币单位（paise）
var PlanPrices = map[string]int64{
	PlanMonthly: 49900,
	PlanAnnual:  499900,
}

const (
	SubscriptionStatusActive = "active"
)

// 免费档与分页默认值
const (
	FreeTierMaxDays = 7
	DefaultDays     = 7
	DefaultPage     = 1
	DefaultLimit    = 10
)

const (
	DefaultAvatarURL = "default_avatar.png"
)
