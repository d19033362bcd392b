package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	Pagination     PaginationConfig     `xml:"PAGINATION"`
	DB             DBConfig             `xml:"DB"`
	Redis          RedisConfig          `xml:"REDIS"`
	Quiz           QuizConfig           `xml:"QUIZ"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
}

// AuthenticationConfig holds authentication settings.
type AuthenticationConfig struct {
	EnableTokenAuth bool `xml:"ENABLE_TOKEN_AUTH"`
	SessionTimeout  int  `xml:"SESSION_TIMEOUT"`
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Name       string       `xml:"NAME"`
	SSLMode    string       `xml:"SSL_MODE"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPassword holds password details. Type selects where the value comes
// from: "literal" (the element text), "env" (the text names an env var)
// or "prompt" (read interactively at startup).
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// RedisConfig holds the leaderboard cache settings. With Enabled false the
// leaderboard is served straight from the relational store.
type RedisConfig struct {
	Enabled bool   `xml:"ENABLED"`
	Host    string `xml:"HOST"`
	Port    int    `xml:"PORT"`
	DB      int    `xml:"DB"`
}

// QuizConfig holds quiz evaluation settings.
type QuizConfig struct {
	MapToleranceDegrees float64 `xml:"MAP_TOLERANCE_DEGREES"`
	RandomQuizSize      int     `xml:"RANDOM_QUIZ_SIZE"`
	LeaderboardSize     int     `xml:"LEADERBOARD_SIZE"`
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}
		newCfg.applyDefaults()

		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}

func (c *APIConfig) applyDefaults() {
	if c.Quiz.MapToleranceDegrees <= 0 {
		c.Quiz.MapToleranceDegrees = 5.0
	}
	if c.Quiz.RandomQuizSize <= 0 {
		c.Quiz.RandomQuizSize = 5
	}
	if c.Quiz.LeaderboardSize <= 0 {
		c.Quiz.LeaderboardSize = 20
	}
	if c.Pagination.PageSize <= 0 {
		c.Pagination.PageSize = 25
	}
}
