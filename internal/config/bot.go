package config

import "time"

type Bot struct {
	Token        string        `env:"BOT_TOKEN" json:"-" validate:"required"`
	AllowedUsers []int64       `env:"BOT_ALLOWED_USERS" envSeparator:","`
	SessionTTL   time.Duration `env:"BOT_SESSION_TTL" envDefault:"30m" validate:"min=1m"`
	PollTimeout  int           `env:"BOT_POLL_TIMEOUT" envDefault:"60" validate:"min=0,max=300"`
}
