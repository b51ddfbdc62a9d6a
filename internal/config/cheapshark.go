package config

import "time"

type CheapShark struct {
	BaseURL        string        `env:"CHEAPSHARK_BASE_URL" envDefault:"https://www.cheapshark.com/api/1.0"`
	Timeout        time.Duration `env:"CHEAPSHARK_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen int           `env:"CHEAPSHARK_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Browser struct {
	SearchLimit int    `env:"BROWSER_SEARCH_LIMIT" envDefault:"20" validate:"min=1,max=60"`
	Language    string `env:"BROWSER_LANGUAGE" envDefault:"es" validate:"oneof=es en"`
}
