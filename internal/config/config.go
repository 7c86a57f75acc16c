// Package config provides configuration management for usdcheck using Viper.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/usdcheck/internal/errors"
	"github.com/thoreinstein/usdcheck/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "USDCHECK"

// FileName is the base name, without extension, of the config file searched
// for in the working directory and the user config directory.
const FileName = "usdcheck"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// DefaultMaxFileSize bounds how much of a layer file the engine will read.
const DefaultMaxFileSize int64 = 64 << 20

// Config represents the top-level configuration structure.
type Config struct {
	Version    int              `mapstructure:"version" yaml:"version"`
	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier"`
	Scene      SceneConfig      `mapstructure:"scene" yaml:"scene"`
	Resolver   ResolverConfig   `mapstructure:"resolver" yaml:"resolver"`
	Engine     EngineConfig     `mapstructure:"engine" yaml:"engine"`
}

// ClassifierConfig tunes the asset/scene heuristic used by validate_usd.
type ClassifierConfig struct {
	// SceneSublayerThreshold is the sublayer count above which a file is a scene.
	SceneSublayerThreshold int `mapstructure:"scene_sublayer_threshold" yaml:"scene_sublayer_threshold" validate:"gte=0"`
	// SceneNameMarkers are case-insensitive base-name substrings that mark a scene.
	SceneNameMarkers []string `mapstructure:"scene_name_markers" yaml:"scene_name_markers" validate:"dive,required"`
}

// SceneConfig tunes scene-only rules.
type SceneConfig struct {
	// AssetLayerMarkers are case-sensitive substrings that identify an asset
	// import layer. "asset" is always matched case-insensitively as well.
	AssetLayerMarkers []string `mapstructure:"asset_layer_markers" yaml:"asset_layer_markers" validate:"dive,required"`
}

// ResolverConfig tunes how bare relative asset paths are searched.
type ResolverConfig struct {
	SearchPaths []string `mapstructure:"search_paths" yaml:"search_paths" validate:"dive,required"`
}

// EngineConfig tunes the text-format engine.
type EngineConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size" yaml:"max_file_size" validate:"gte=1"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Classifier: ClassifierConfig{
			SceneSublayerThreshold: 2,
			SceneNameMarkers:       []string{"root"},
		},
		Scene: SceneConfig{
			AssetLayerMarkers: []string{"AssetImport"},
		},
		Engine: EngineConfig{
			MaxFileSize: DefaultMaxFileSize,
		},
	}
}

// Init initializes Viper with default configuration.
// It clears any state left by a previous Init or Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.AppConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("classifier.scene_sublayer_threshold", def.Classifier.SceneSublayerThreshold)
	viper.SetDefault("classifier.scene_name_markers", def.Classifier.SceneNameMarkers)
	viper.SetDefault("scene.asset_layer_markers", def.Scene.AssetLayerMarkers)
	viper.SetDefault("resolver.search_paths", []string{})
	viper.SetDefault("engine.max_file_size", def.Engine.MaxFileSize)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file uses defaults.
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	for i, p := range cfg.Resolver.SearchPaths {
		cfg.Resolver.SearchPaths[i] = paths.ExpandHome(p)
	}

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return &cfg, nil
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a Config for validity.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Version != CurrentVersion {
		return errors.Newf("unsupported config version: %d", cfg.Version)
	}
	if err := structValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.Newf("invalid value for %s: must satisfy %s", fe.Namespace(), fe.Tag())
		}
		return err
	}
	return nil
}

// YAML renders the configuration in config-file form.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encoding config")
	}
	return data, nil
}

// FileUsed returns the config file Load read, or "" when only defaults and
// environment overrides apply.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
