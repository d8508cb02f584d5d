package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xaddr/internal/listwatch"
	"github.com/omeyang/xaddr/pkg/addr/xregex"
	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

// Config 是 xaddrctl 的配置文件结构。命令行参数优先于配置文件。
//
//	log:
//	  level: info
//	  format: text
//	  file: /var/log/xaddrctl.log
//	output: text
//	regex:
//	  cache_size: 1024
//	  cache_ttl: 10m
//	watch:
//	  debounce: 200ms
type Config struct {
	Log    LogConfig   `koanf:"log"`
	Output string      `koanf:"output"`
	Regex  RegexConfig `koanf:"regex"`
	Watch  WatchConfig `koanf:"watch"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	File      string `koanf:"file"`
	MaxSizeMB int    `koanf:"max_size_mb"`
}

// RegexConfig 正则缓存配置
type RegexConfig struct {
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// WatchConfig 列表文件监视配置
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

func defaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "warn", Format: "text"},
		Output: outputText,
		Regex:  RegexConfig{CacheSize: xregex.DefaultCacheSize},
		Watch:  WatchConfig{Debounce: listwatch.DefaultDebounce},
	}
}

// loadConfig 读取配置文件，按扩展名识别 YAML 或 JSON。path 为空时返回默认配置。
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, &usageError{msg: fmt.Sprintf("unsupported config format %q (want .yaml, .yml or .json)", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := xlog.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := xlog.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	if c.Output != outputText && c.Output != outputJSON {
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.Regex.CacheSize < 0 || c.Regex.CacheTTL < 0 {
		return fmt.Errorf("negative regex cache setting")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("negative watch debounce")
	}
	return nil
}
