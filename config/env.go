package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Configuration is resolved in order: process environment, .env file,
// config/app.json, then the built-in default.
var defaults = map[string]string{
	"APP_NAME":           "ridewithme",
	"APP_ENV":            "local",
	"APP_PORT":           "8080",
	"MONGO_URI":          "mongodb://localhost:27017",
	"MONGO_DB":           "ridewithme",
	"REDIS_ADDR":         "localhost:6379",
	"REDIS_PASSWORD":     "",
	"JWT_SECRET":         "change-me-in-production",
	"PRICE_CEILING":      "500",
	"LOG_TO_MONGO":       "false",
	"STORAGE_DEFAULT":    "local",
	"STORAGE_LOCAL_ROOT": "storage/uploads",
	"STORAGE_URL":        "http://localhost:8080/uploads",
}

var (
	loadOnce sync.Once
	values   map[string]string
)

// Load reads the optional config files once. Safe to call from anywhere;
// accessors call it themselves.
func Load() {
	loadOnce.Do(func() {
		values = map[string]string{}
		mergeJSONConfig("config/app.json")
		mergeDotEnv(".env")
	})
}

func mergeJSONConfig(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return
	}
	for k, v := range doc {
		switch val := v.(type) {
		case string:
			values[k] = val
		case float64:
			values[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			values[k] = strconv.FormatBool(val)
		}
	}
}

func mergeDotEnv(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		val = strings.Trim(val, `"'`)
		values[key] = val
	}
}

func get(key string) string {
	Load()
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if v, ok := values[key]; ok {
		return v
	}
	return defaults[key]
}

// Get returns the raw string value for key, or the optional fallback
// when the key is unset everywhere.
func Get(key string, fallback ...string) string {
	if v := get(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

func AppName() string { return get("APP_NAME") }
func AppEnv() string  { return get("APP_ENV") }
func AppPort() string { return get("APP_PORT") }

func MongoURI() string      { return get("MONGO_URI") }
func MongoDatabase() string { return get("MONGO_DB") }

func RedisAddr() string     { return get("REDIS_ADDR") }
func RedisPassword() string { return get("REDIS_PASSWORD") }

func JWTSecret() string { return get("JWT_SECRET") }

// PriceCeiling is the catalog's default per-day price cap when the
// caller does not supply one.
func PriceCeiling() int {
	n, err := strconv.Atoi(get("PRICE_CEILING"))
	if err != nil || n <= 0 {
		return 500
	}
	return n
}

// LogToMongo enables the asynchronous log sink collection.
func LogToMongo() bool {
	v, _ := strconv.ParseBool(get("LOG_TO_MONGO"))
	return v
}

func StorageDefault() string   { return get("STORAGE_DEFAULT") }
func StorageLocalRoot() string { return get("STORAGE_LOCAL_ROOT") }
func StorageURL() string       { return get("STORAGE_URL") }

func StorageS3Bucket() string   { return get("S3_BUCKET") }
func StorageS3Region() string   { return get("S3_REGION") }
func StorageS3Key() string      { return get("S3_KEY") }
func StorageS3Secret() string   { return get("S3_SECRET") }
func StorageS3Endpoint() string { return get("S3_ENDPOINT") }
func StorageS3URL() string      { return get("S3_URL") }
