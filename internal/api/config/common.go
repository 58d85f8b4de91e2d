package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Identity  IdentityConfig  `mapstructure:"identity"`
	Platforms PlatformsConfig `mapstructure:"platforms"`
	Stats     StatsConfig     `mapstructure:"stats"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	AvatarBucket  string `mapstructure:"avatar_bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	UsePublicLink bool   `mapstructure:"use_public_link"`
}

// PaymentConfig 支付网关配置，缺失时仅降级订阅购买功能
type PaymentConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

// IdentityConfig 外部身份源（Firebase）配置
type IdentityConfig struct {
	ProjectID string `mapstructure:"project_id"`
}

// PlatformsConfig 各平台 API 基础地址，便于测试时指向本地假服务
type PlatformsConfig struct {
	YoutubeBaseURL string `mapstructure:"youtube_base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// StatsConfig 统计缓存行为配置
type StatsConfig struct {
	FreshnessSeconds int `mapstructure:"freshness_seconds"`
}
