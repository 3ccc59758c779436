package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/generator"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "INCIDENTSEED"

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"seed":       "seed",
	"output-dir": "output_dir",
	"workers":    "workers",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func setDefaults(v *viper.Viper) {
	d := generator.DefaultOptions()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("output_dir", "incident_management_data")
	v.SetDefault("workers", d.Workers)
	v.SetDefault("reference_time", d.ReferenceTime.Format(entity.TimestampLayout))
	v.SetDefault("snapshot_time", d.SnapshotTime.Format(entity.TimestampLayout))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("population.clients", d.Population.Clients)
	v.SetDefault("population.vendors", d.Population.Vendors)
	v.SetDefault("population.internal_users", d.Population.InternalUsers)
	v.SetDefault("population.min_rows", d.Population.MinRows)
	v.SetDefault("population.inactive_vendor_products", d.Population.InactiveVendorProducts)
	v.SetDefault("population.change_request_limit", d.Population.ChangeRequestLimit)
	v.SetDefault("population.kb_incident_limit", d.Population.KBIncidentLimit)

	v.SetDefault("export.json.enabled", true)
	v.SetDefault("export.dynamodb.enabled", false)
	v.SetDefault("export.dynamodb.table", "incident_fixtures")
	v.SetDefault("export.dynamodb.region", "")
	v.SetDefault("export.dynamodb.endpoint", "")
	v.SetDefault("notify.slack.webhook_url", "")
	v.SetDefault("notify.confluence.domain", "")
	v.SetDefault("notify.confluence.space", "")
	v.SetDefault("notify.confluence.ancestor_id", "")
}

// NewConfigRepository reads path when given, then layers INCIDENTSEED_* env vars
// and any changed flags on top of the defaults.
func NewConfigRepository(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	valid := validator.New()
	if err := valid.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config error: %w", err)
	}
	if err := c.parseTimes(); err != nil {
		return nil, fmt.Errorf("validate config error: %w", err)
	}
	return &c, nil
}

type Config struct {
	Seed             uint64           `mapstructure:"seed"`
	OutputDir        string           `mapstructure:"output_dir" validate:"required"`
	Workers          int              `mapstructure:"workers" validate:"min=1"`
	ReferenceTimeRaw string           `mapstructure:"reference_time" validate:"required"`
	SnapshotTimeRaw  string           `mapstructure:"snapshot_time" validate:"required"`
	Log              LogConfig        `mapstructure:"log"`
	Population       PopulationConfig `mapstructure:"population"`
	Export           ExportConfig     `mapstructure:"export"`
	Notify           NotifyConfig     `mapstructure:"notify"`

	referenceTime time.Time
	snapshotTime  time.Time
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type PopulationConfig struct {
	Clients                int `mapstructure:"clients" validate:"min=1"`
	Vendors                int `mapstructure:"vendors" validate:"min=1"`
	InternalUsers          int `mapstructure:"internal_users" validate:"min=1"`
	MinRows                int `mapstructure:"min_rows" validate:"min=0"`
	InactiveVendorProducts int `mapstructure:"inactive_vendor_products" validate:"min=0"`
	ChangeRequestLimit     int `mapstructure:"change_request_limit" validate:"min=0"`
	KBIncidentLimit        int `mapstructure:"kb_incident_limit" validate:"min=0"`
}

type ExportConfig struct {
	JSON     JSONExportConfig     `mapstructure:"json"`
	DynamoDB DynamoDBExportConfig `mapstructure:"dynamodb"`
}

type JSONExportConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DynamoDBExportConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Table    string `mapstructure:"table" validate:"required_if=Enabled true"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}

type NotifyConfig struct {
	Slack      SlackNotifyConfig `mapstructure:"slack"`
	Confluence ConfluenceConfig  `mapstructure:"confluence"`
}

type SlackNotifyConfig struct {
	WebhookURL string `mapstructure:"webhook_url" validate:"omitempty,url"`
}

// ConfluenceConfig enables the run report page. Credentials come from
// CONFLUENCE_USERNAME and CONFLUENCE_PASSWORD.
type ConfluenceConfig struct {
	AncestorID string `mapstructure:"ancestor_id"`
	Space      string `mapstructure:"space"`
	Domain     string `mapstructure:"domain"`
}

func (c *Config) parseTimes() error {
	ref, err := time.Parse(entity.TimestampLayout, c.ReferenceTimeRaw)
	if err != nil {
		return fmt.Errorf("reference_time: %w", err)
	}
	snap, err := time.Parse(entity.TimestampLayout, c.SnapshotTimeRaw)
	if err != nil {
		return fmt.Errorf("snapshot_time: %w", err)
	}
	if snap.Before(ref) {
		return errors.New("snapshot_time must not precede reference_time")
	}
	c.referenceTime, c.snapshotTime = ref, snap
	return nil
}

func (c *Config) ReferenceTime() time.Time {
	return c.referenceTime
}

// SnapshotTime is the dataset's notion of "now".
func (c *Config) SnapshotTime() time.Time {
	return c.snapshotTime
}

// GeneratorOptions converts the config into generator options.
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Seed:          c.Seed,
		Workers:       c.Workers,
		ReferenceTime: c.referenceTime,
		SnapshotTime:  c.snapshotTime,
		Population: generator.Population{
			Clients:                c.Population.Clients,
			Vendors:                c.Population.Vendors,
			InternalUsers:          c.Population.InternalUsers,
			MinRows:                c.Population.MinRows,
			InactiveVendorProducts: c.Population.InactiveVendorProducts,
			ChangeRequestLimit:     c.Population.ChangeRequestLimit,
			KBIncidentLimit:        c.Population.KBIncidentLimit,
		},
	}
}
