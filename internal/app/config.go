package app

import (
	"strings"
	"time"

	"github.com/skillone/skillpath-backend/internal/platform/envutil"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type Config struct {
	Port            string
	CORSOrigins     []string
	MaxPathCourses  int
	ShutdownTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:            envutil.String("PORT", "8080"),
		CORSOrigins:     splitCSV(envutil.String("CORS_ALLOW_ORIGINS", "")),
		MaxPathCourses:  envutil.Int("PATH_MAX_COURSES", 12),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	log.Info("Loaded config",
		"port", cfg.Port,
		"max_path_courses", cfg.MaxPathCourses,
		"cors_origins", len(cfg.CORSOrigins),
	)
	return cfg
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
