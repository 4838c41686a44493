package middleware

import (
	"testing"

	"stayflow/config"
)

func TestRequestsPerMinuteFollowsConfig(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 30
	if got := requestsPerMinute(); got != 30 {
		t.Errorf("requestsPerMinute() = %d, want 30", got)
	}

	config.AppConfig.MaxRequestsPerMin = 0
	if got := requestsPerMinute(); got != 100 {
		t.Errorf("requestsPerMinute() = %d, want default 100", got)
	}
}
