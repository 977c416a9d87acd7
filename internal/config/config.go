// Package config собирает настройки сервиса из переменных окружения.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config настройки HTTP-сервера и клиента бэкенда мерчанта
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// UpstreamBaseURL адрес бэкенда мерчанта ({base}/{storeId})
	UpstreamBaseURL string
	// UpstreamProxies HTTP-прокси, перебираются по порядку до первого 2xx
	UpstreamProxies []string
	UpstreamTimeout time.Duration

	// RedisAddr пустой — корзины живут в памяти процесса
	RedisAddr string
	CartTTL   time.Duration

	// PageSize размер страницы витрины по умолчанию
	PageSize int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// posenv как atoienv, но значение должно быть положительным
func posenv(key string, def int) int {
	if n := atoienv(key, def); n > 0 {
		return n
	}
	return def
}

func durenvms(key string, defMs int) time.Duration {
	return time.Duration(atoienv(key, defMs)) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

func listenv(key string) []string {
	v := getenv(key, "")
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load читает окружение, отсутствующие значения заменяет умолчаниями
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":9091"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 5),
		UpstreamBaseURL: getenv("UPSTREAM_BASE_URL", "http://45.94.209.80:8003"),
		UpstreamProxies: listenv("UPSTREAM_PROXIES"),
		UpstreamTimeout: durenvms("UPSTREAM_TIMEOUT_MS", 10000),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		CartTTL:         durenvs("CART_TTL_SEC", 1800),
		PageSize:        posenv("PAGE_SIZE", 8),
	}
}
