package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mgpai22/transkripto/internal/export"
	"github.com/mgpai22/transkripto/internal/timecode"
)

// setting keys, also the YAML field names
const (
	KeyExportFormat      = "default_export_format"
	KeyIncludeTimestamps = "include_timestamps"
	KeyTimestampFormat   = "timestamp_format"
)

const (
	appName   = "transkripto"
	envPrefix = "TRANSKRIPTO"
)

// Preferences are the persisted display and export defaults.
type Preferences struct {
	DefaultExportFormat string `mapstructure:"default_export_format" validate:"required,export_format"`
	IncludeTimestamps   bool   `mapstructure:"include_timestamps"`
	TimestampFormat     string `mapstructure:"timestamp_format" validate:"required,oneof=clock compact"`
}

// Defaults mirror a first run: text export with clock timestamps.
func Defaults() Preferences {
	return Preferences{
		DefaultExportFormat: string(export.FormatText),
		IncludeTimestamps:   true,
		TimestampFormat:     string(timecode.StyleClock),
	}
}

// Format returns the default export format.
func (p Preferences) Format() export.Format {
	return export.Format(p.DefaultExportFormat)
}

// Policy returns the display policy described by p.
func (p Preferences) Policy() export.Policy {
	return export.Policy{
		IncludeTimestamps: p.IncludeTimestamps,
		Style:             timecode.Style(p.TimestampFormat),
	}
}

// canonicalize accepts labels like "TXT" or "HH:MM:SS"; unknown values are
// left for Validate to reject
func (p *Preferences) canonicalize() {
	if f, err := export.ParseFormat(p.DefaultExportFormat); err == nil {
		p.DefaultExportFormat = string(f)
	}
	if s, err := timecode.ParseStyle(p.TimestampFormat); err == nil {
		p.TimestampFormat = string(s)
	}
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("mapstructure")
		})
		// accepted formats come from the export dispatch table
		_ = validate.RegisterValidation("export_format", func(fl validator.FieldLevel) bool {
			return export.Format(fl.Field().String()).Extension() != ""
		})
	})
	return validate
}

// Validate reports every invalid setting in one error.
func (p Preferences) Validate() error {
	err := getValidator().Struct(p)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "export_format":
			messages = append(messages, fmt.Sprintf(
				"%s must be one of [%s] (got: %v)",
				e.Field(), formatNames(), e.Value(),
			))
		case "oneof":
			messages = append(messages, fmt.Sprintf(
				"%s must be one of [%s] (got: %v)",
				e.Field(), e.Param(), e.Value(),
			))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return fmt.Errorf("invalid preferences: %s", strings.Join(messages, "; "))
}

func formatNames() string {
	formats := export.Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.Join(names, " ")
}

// Store loads and saves preferences in a YAML file, with TRANSKRIPTO_*
// environment overrides.
type Store struct {
	v      *viper.Viper
	path   string
	logger *zap.SugaredLogger
}

type options struct {
	envFile string
	logger  *zap.SugaredLogger
}

type Option func(*options)

// WithEnvFile loads a .env file into the process environment before
// reading settings. Missing files are ignored.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// DefaultPath is config.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

// Open prepares a store backed by path. A missing file is not an error.
func Open(path string, opts ...Option) (*Store, error) {
	o := options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile != "" && fileExists(o.envFile) {
		if err := godotenv.Load(o.envFile); err != nil {
			o.logger.Warnw("Failed to load env file",
				"path", o.envFile,
				"error", err,
			)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault(KeyExportFormat, defaults.DefaultExportFormat)
	v.SetDefault(KeyIncludeTimestamps, defaults.IncludeTimestamps)
	v.SetDefault(KeyTimestampFormat, defaults.TimestampFormat)

	if fileExists(path) {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read preferences %s: %w", path, err)
		}
		o.logger.Debugw("Loaded preferences", "path", path)
	}

	return &Store{v: v, path: path, logger: o.logger}, nil
}

// Viper exposes the underlying settings so command flags can be bound to
// the same keys.
func (s *Store) Viper() *viper.Viper {
	return s.v
}

func (s *Store) Path() string {
	return s.path
}

// Load resolves preferences from flags, environment, file and defaults,
// in that order of precedence.
func (s *Store) Load() (Preferences, error) {
	var p Preferences
	if err := s.v.Unmarshal(&p); err != nil {
		return Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	p.canonicalize()
	if err := p.Validate(); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// Save persists p to the store's file, creating its directory.
func (s *Store) Save(p Preferences) error {
	p.canonicalize()
	if err := p.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.v.Set(KeyExportFormat, p.DefaultExportFormat)
	s.v.Set(KeyIncludeTimestamps, p.IncludeTimestamps)
	s.v.Set(KeyTimestampFormat, p.TimestampFormat)

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	s.logger.Debugw("Saved preferences",
		"path", s.path,
		"format", p.DefaultExportFormat,
		"timestamps", p.IncludeTimestamps,
		"timestamp_format", p.TimestampFormat,
	)
	return nil
}

// Reset deletes the preferences file.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove preferences: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
