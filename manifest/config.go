package manifest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/skosovsky/tooldef"
)

// EnvPrefix prefixes environment overrides, e.g. TOOLDEF_STRICT=false.
const EnvPrefix = "TOOLDEF"

// Config holds generator settings read from a config file and the environment.
// Precedence (highest first): environment, config file, defaults.
type Config struct {
	Strict           bool              `mapstructure:"strict" yaml:"strict"`
	DocumentDefaults bool              `mapstructure:"document_defaults" yaml:"document_defaults"`
	TypeMap          map[string]string `mapstructure:"type_map" yaml:"type_map,omitempty" validate:"omitempty,dive,keys,typename,endkeys,required"`
	NameMappings     []NameMapping     `mapstructure:"name_mappings" yaml:"name_mappings,omitempty" validate:"dive"`
}

// NameMapping is one entry of name_mappings.
type NameMapping struct {
	From string `mapstructure:"from" yaml:"from" validate:"required"`
	To   string `mapstructure:"to" yaml:"to" validate:"required"`
}

// LoadConfig reads the config file at path (any format viper understands; skipped when
// path is empty) and applies TOOLDEF_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("strict", true)
	v.SetDefault("document_defaults", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"strict", "document_defaults"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: could not read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: error unmarshaling: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation error: %w", err)
	}
	return &cfg, nil
}

// Options converts the config to generator options. An absent type_map keeps the
// generator default; a present one replaces it entirely.
func (c *Config) Options() ([]tooldef.Option, error) {
	opts := []tooldef.Option{
		tooldef.WithStrict(c.Strict),
		tooldef.WithDocumentDefaults(c.DocumentDefaults),
	}
	if c.TypeMap != nil {
		tm := make(map[reflect.Type]string, len(c.TypeMap))
		for name, schemaType := range c.TypeMap {
			t, err := lookupType(name)
			if err != nil {
				return nil, fmt.Errorf("config: type_map: %w", err)
			}
			tm[t] = schemaType
		}
		opts = append(opts, tooldef.WithTypeMap(tm))
	}
	if len(c.NameMappings) > 0 {
		mappings := make([]tooldef.NameMapping, len(c.NameMappings))
		for i, m := range c.NameMappings {
			mappings[i] = tooldef.NameMapping{From: m.From, To: m.To}
		}
		opts = append(opts, tooldef.WithNameMappings(mappings...))
	}
	return opts, nil
}

// Generator is tooldef.New with the config's options.
func (c *Config) Generator() (*tooldef.Generator, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return tooldef.New(opts...), nil
}
