package config

import (
	"errors"
	"os"
	"strconv"
)

// ErrMissingJWTSecret is returned when JWT_SECRET_KEY is unset. There is no
// fallback secret; the server refuses to start without one.
var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY must be set")

type Config struct {
	ServerPort         int    `json:"server_port"`
	JWTSecretKey       string `json:"jwt_secret_key"`
	JWTExpirationHours int    `json:"jwt_expiration_hours"`
	FreePlanNoteLimit  int    `json:"free_plan_note_limit"`
	DefaultRateLimit   int    `json:"default_rate_limit"`
	GlobalRateLimit    int    `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	jwtSecretKey := os.Getenv("JWT_SECRET_KEY")
	if jwtSecretKey == "" {
		return nil, ErrMissingJWTSecret
	}

	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 1
	}

	freePlanNoteLimit, _ := strconv.Atoi(os.Getenv("FREE_PLAN_NOTE_LIMIT"))
	if freePlanNoteLimit == 0 {
		freePlanNoteLimit = 3 // Free Plan note ceiling for member users
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per tenant
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	return &Config{
		ServerPort:         serverPort,
		JWTSecretKey:       jwtSecretKey,
		JWTExpirationHours: jwtExpirationHours,
		FreePlanNoteLimit:  freePlanNoteLimit,
		DefaultRateLimit:   defaultRateLimit,
		GlobalRateLimit:    globalRateLimit,
	}, nil
}
