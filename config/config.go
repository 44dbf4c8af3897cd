package config

import "time"

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

// StoreDriver 数据后端类型
type StoreDriver string

const (
	DriverRest   StoreDriver = "rest"   // 托管数据库的 REST 接口（默认）
	DriverMysql  StoreDriver = "mysql"  // 自建 MySQL
	DriverSqlite StoreDriver = "sqlite" // 本地文件，开发/演示用
)

// PhotoMode 照片的存放方式
type PhotoMode string

const (
	PhotoInline PhotoMode = "inline" // data URI 直接写进记录
	PhotoLocal  PhotoMode = "local"  // 保存到本地目录，记录里存访问路径
	PhotoS3     PhotoMode = "s3"     // 上传到对象存储，记录里存访问 URL
)

type Config struct {
	Host    string  `mapstructure:"host" envconfig:"HOST"`
	Port    string  `mapstructure:"port" envconfig:"PORT"`
	Prefix  string  `mapstructure:"prefix" envconfig:"PREFIX"`
	Mode    Mode    `mapstructure:"mode" envconfig:"MODE"`
	Store   Store   `mapstructure:"store" envconfig:"STORE"`
	Mysql   Mysql   `mapstructure:"mysql" envconfig:"MYSQL"`
	Admin   Admin   `mapstructure:"admin" envconfig:"ADMIN"`
	Board   Board   `mapstructure:"board" envconfig:"BOARD"`
	Redis   Redis   `mapstructure:"redis" envconfig:"REDIS"`
	Session Session `mapstructure:"session" envconfig:"SESSION"`
	JWT     JWT     `mapstructure:"jwt" envconfig:"JWT"`
	Photos  Photos  `mapstructure:"photos" envconfig:"PHOTOS"`
	Storage Storage `mapstructure:"storage" envconfig:"STORAGE"`
	S3      S3      `mapstructure:"s3" envconfig:"S3"`
	Log     Log     `mapstructure:"log" envconfig:"LOG"`
	Sentry  Sentry  `mapstructure:"sentry" envconfig:"SENTRY"`
	OTel    OTel    `mapstructure:"otel" envconfig:"OTEL"`
}

type Store struct {
	Driver     StoreDriver   `mapstructure:"driver" envconfig:"DRIVER"`
	URL        string        `mapstructure:"url" envconfig:"URL"`         // 托管服务地址，如 https://xxx.supabase.co
	APIKey     string        `mapstructure:"api_key" envconfig:"API_KEY"` // 同时作为 apikey 头和 Bearer 凭证
	Timeout    time.Duration `mapstructure:"timeout" envconfig:"TIMEOUT"`
	SqlitePath string        `mapstructure:"sqlite_path" envconfig:"SQLITE_PATH"`
}

type Mysql struct {
	Host     string `mapstructure:"host" envconfig:"HOST"`
	Port     string `mapstructure:"port" envconfig:"PORT"`
	Username string `mapstructure:"username" envconfig:"USERNAME"`
	Password string `mapstructure:"password" envconfig:"PASSWORD"`
	DBName   string `mapstructure:"db_name" envconfig:"DB_NAME"`
}

type Admin struct {
	Secret string `mapstructure:"secret" envconfig:"SECRET"` // 删除记录用的共享管理员密码
}

type Board struct {
	Timezone string `mapstructure:"timezone" envconfig:"TIMEZONE"` // 留言显示时间所用时区
}

type Redis struct {
	Host     string `mapstructure:"host" envconfig:"HOST"` // 为空时会话存放在进程内存
	Port     string `mapstructure:"port" envconfig:"PORT"`
	Password string `mapstructure:"password" envconfig:"PASSWORD"`
	DB       int    `mapstructure:"db" envconfig:"DB"`
}

type Session struct {
	TTL time.Duration `mapstructure:"ttl" envconfig:"TTL"`
}

type JWT struct {
	AccessSecret string `mapstructure:"access_secret" envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `mapstructure:"access_expire" envconfig:"ACCESS_EXPIRE"` // 秒
}

type Photos struct {
	Mode     PhotoMode `mapstructure:"mode" envconfig:"MODE"`
	MaxBytes int64     `mapstructure:"max_bytes" envconfig:"MAX_BYTES"` // 单张图片大小上限
}

type Storage struct {
	Home    string `mapstructure:"home" envconfig:"HOME"`         // local 模式下的图片目录
	BaseURL string `mapstructure:"base_url" envconfig:"BASE_URL"` // local 模式下的图片访问前缀
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint" envconfig:"ENDPOINT"`
	BaseURL         string `mapstructure:"base_url" envconfig:"BASE_URL"`
	Bucket          string `mapstructure:"bucket" envconfig:"BUCKET"`
	Region          string `mapstructure:"region" envconfig:"REGION"`
	AccessKey       string `mapstructure:"access_key" envconfig:"ACCESS_KEY"`
	SecretAccessKey string `mapstructure:"secret_key" envconfig:"SECRET_KEY"`
	Prefix          string `mapstructure:"prefix" envconfig:"PREFIX"`
	UsePathStyle    bool   `mapstructure:"path_style" envconfig:"PATH_STYLE"`
}

type Log struct {
	FilePath   string `mapstructure:"file_path" envconfig:"FILE_PATH"`     // 日志文件路径
	Level      string `mapstructure:"level" envconfig:"LEVEL"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `mapstructure:"max_size" envconfig:"MAX_SIZE"`       // 日志文件最大大小（MB）
	MaxBackups int    `mapstructure:"max_backups" envconfig:"MAX_BACKUPS"` // 保留的旧日志文件数
	MaxAge     int    `mapstructure:"max_age" envconfig:"MAX_AGE"`         // 日志文件保留天数
	Compress   bool   `mapstructure:"compress" envconfig:"COMPRESS"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string        `mapstructure:"dsn" envconfig:"DSN"`
	Environment string        `mapstructure:"environment" envconfig:"ENVIRONMENT"`
	SampleRate  float64       `mapstructure:"sample_rate" envconfig:"SAMPLE_RATE"`
	Tracing     SentryTracing `mapstructure:"tracing" envconfig:"TRACING"`
}

type SentryTracing struct {
	TraceHTTPCalls       bool `mapstructure:"trace_http_calls" envconfig:"TRACE_HTTP_CALLS"`
	DBSlowThresholdMs    int  `mapstructure:"db_slow_threshold_ms" envconfig:"DB_SLOW_THRESHOLD_MS"`
	RedisSlowThresholdMs int  `mapstructure:"redis_slow_threshold_ms" envconfig:"REDIS_SLOW_THRESHOLD_MS"`
}

type OTel struct {
	Enable      bool   `mapstructure:"enable" envconfig:"ENABLE"`
	ServiceName string `mapstructure:"service_name" envconfig:"SERVICE_NAME"`
	AgentHost   string `mapstructure:"agent_host" envconfig:"AGENT_HOST"`
	AgentPort   string `mapstructure:"agent_port" envconfig:"AGENT_PORT"`
}

// Default 返回未读取任何配置文件时的默认值
func Default() Config {
	return Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		Store: Store{
			Driver:     DriverRest,
			Timeout:    10 * time.Second,
			SqlitePath: "board.db",
		},
		Mysql: Mysql{
			Host: "127.0.0.1",
			Port: "3306",
		},
		Board:   Board{Timezone: "Local"},
		Session: Session{TTL: 24 * time.Hour},
		JWT:     JWT{AccessExpire: 7 * 24 * 3600},
		Photos: Photos{
			Mode:     PhotoInline,
			MaxBytes: 5 << 20,
		},
		Storage: Storage{
			Home:    "./upload/photos",
			BaseURL: "/static/photos",
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		OTel: OTel{ServiceName: "volunteer-board"},
	}
}
