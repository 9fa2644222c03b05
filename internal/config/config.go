package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/vbelov/wedding-invite/internal/domain"
)

type Config struct {
	Env    string                  `yaml:"env" env:"ENV" env-default:"local"`
	HTTP   HTTPConfig              `yaml:"http"`
	Site   SiteConfig              `yaml:"site"`
	Sheet  SheetConfig             `yaml:"sheet"`
	Event  EventConfig             `yaml:"event"`
	Survey []domain.SurveyQuestion `yaml:"survey"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:""`
}

// SiteConfig covers the public-facing surface: the origin baked into QR
// payloads and the third-party QR image endpoint kept as an alternative to
// the locally rendered PNGs.
type SiteConfig struct {
	BaseURL             string   `yaml:"base_url" env:"SITE_BASE_URL" env-default:""`
	QRImageBase         string   `yaml:"qr_image_base" env-default:""`
	QRSize              int      `yaml:"qr_size" env-default:"200"`
	ConfirmMessageLimit int      `yaml:"confirm_message_limit" env-default:"500"`
	AllowedOrigins      []string `yaml:"allowed_origins"`
}

// SheetConfig locates the externally managed guest table. Reads go through
// the public JSON proxy, writes through the deployed script URL. The script
// URL may stay empty; submissions then fail with a configuration error.
type SheetConfig struct {
	ProxyBase     string        `yaml:"proxy_base" env-default:""`
	SpreadsheetID string        `yaml:"spreadsheet_id" env:"SPREADSHEET_ID"`
	SheetName     string        `yaml:"sheet_name" env-default:""`
	ScriptURL     string        `yaml:"script_url" env:"APP_SCRIPT_URL" env-default:""`
	HeaderRows    int           `yaml:"header_rows" env-default:"1"`
	Affirmative   string        `yaml:"affirmative" env-default:""`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
	Columns       ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig lists acceptable header spellings per logical field, in
// priority order. The sheet is hand-edited, so headers drift.
type ColumnsConfig struct {
	Name      []string `yaml:"name"`
	Code      []string `yaml:"code"`
	Confirmed []string `yaml:"confirmed"`
}

type EventConfig struct {
	GroomName string      `yaml:"groom_name"`
	BrideName string      `yaml:"bride_name"`
	Date      string      `yaml:"date"`
	Time      string      `yaml:"time"`
	Ceremony  string      `yaml:"ceremony_time"`
	Banquet   string      `yaml:"banquet_time"`
	Place     string      `yaml:"place"`
	StartsAt  time.Time   `yaml:"starts_at"`
	Timing    []string    `yaml:"timing"`
	DressCode string      `yaml:"dress_code"`
	Blocks    []InfoBlock `yaml:"blocks"`
}

type InfoBlock struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	cfg.setDefaults()

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Site.QRImageBase == "" {
		c.Site.QRImageBase = "https://api.qrserver.com/v1/create-qr-code/"
	}
	if c.Sheet.ProxyBase == "" {
		c.Sheet.ProxyBase = "https://opensheet.elk.sh"
	}
	if c.Sheet.SheetName == "" {
		c.Sheet.SheetName = "Лист1"
	}
	if c.Sheet.Affirmative == "" {
		c.Sheet.Affirmative = "да"
	}
	if len(c.Sheet.Columns.Name) == 0 {
		c.Sheet.Columns.Name = []string{"ФИО", "ФИО гостей"}
	}
	if len(c.Sheet.Columns.Code) == 0 {
		c.Sheet.Columns.Code = []string{"КОД", "Код"}
	}
	if len(c.Sheet.Columns.Confirmed) == 0 {
		c.Sheet.Columns.Confirmed = []string{"Подтвердили", "Подтвердили "}
	}
}
