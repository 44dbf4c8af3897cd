package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrSetupRequired 配置缺失或仍是占位值，此时不允许访问数据后端
var ErrSetupRequired = errors.New("setup required")

// SetupError 列出需要补全的配置项
type SetupError struct {
	Missing []string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSetupRequired.Error(), strings.Join(e.Missing, ", "))
}

func (e *SetupError) Is(target error) bool {
	return target == ErrSetupRequired
}

// 整个值等于这些词时视为占位
var placeholderValues = map[string]bool{
	"changeme": true, "change-me": true, "change_me": true, "placeholder": true, "todo": true,
}

var placeholderPrefixes = []string{"your-", "your_"}

// IsPlaceholder 判断配置值是否为空或仍是模板里的占位内容。
// 只匹配整个值、your- 前缀或 <...> 形式，真实值中间恰好含有这些词不算占位。
func IsPlaceholder(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return true
	}
	if strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">") {
		return true
	}
	if placeholderValues[v] || (len(v) >= 3 && strings.Trim(v, "x*") == "") {
		return true
	}
	if hasPlaceholderPrefix(v) {
		return true
	}
	// 模板地址，如 https://your-project.supabase.co
	if u, err := url.Parse(v); err == nil && u.Host != "" {
		host := u.Hostname()
		if hasPlaceholderPrefix(host) || host == "example.com" || strings.HasSuffix(host, ".example.com") {
			return true
		}
	}
	return false
}

func hasPlaceholderPrefix(v string) bool {
	for _, p := range placeholderPrefixes {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return false
}

// Validate 检查数据后端地址、凭证和管理员密码是否已配置
func (c *Config) Validate() error {
	var missing []string

	switch c.Store.Driver {
	case DriverRest, "":
		if IsPlaceholder(c.Store.URL) {
			missing = append(missing, "store.url")
		} else if u, err := url.Parse(c.Store.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			missing = append(missing, "store.url")
		}
		if IsPlaceholder(c.Store.APIKey) {
			missing = append(missing, "store.api_key")
		}
	case DriverMysql:
		if IsPlaceholder(c.Mysql.Host) {
			missing = append(missing, "mysql.host")
		}
		if IsPlaceholder(c.Mysql.DBName) {
			missing = append(missing, "mysql.db_name")
		}
	case DriverSqlite:
		if strings.TrimSpace(c.Store.SqlitePath) == "" {
			missing = append(missing, "store.sqlite_path")
		}
	default:
		missing = append(missing, "store.driver")
	}

	if IsPlaceholder(c.Admin.Secret) {
		missing = append(missing, "admin.secret")
	}

	if len(missing) > 0 {
		return &SetupError{Missing: missing}
	}
	return nil
}
