package config

import (
	_ "embed"
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ErrNoEventLog is returned when opening the event log of a configuration
// that doesn't define one.
var ErrNoEventLog = errors.New("no event_log configured")

type Configuration struct {
	configFs afero.Fs

	ShellName     string  `json:"shell_name"`
	Prompt        string  `json:"prompt"`
	MaxCommands   int     `json:"max_commands" validate:"gte=1"`
	MaxArgs       int     `json:"max_args" validate:"gte=1"`
	AliasCapacity int     `json:"alias_capacity" validate:"gte=1"`
	EventLog      string  `json:"event_log"`
	Color         string  `json:"color" validate:"oneof=always auto never"`
	Aliases       []Alias `json:"aliases" validate:"unique=Name,dive"`
}

type Alias struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewOsFs()
	}
	return c.configFs
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration. Relative paths resolve against
// the working directory.
func Default() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewOsFs()
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
