// Package config is responsible for building the artistinfo configuration. The
// defaults are overridden by an optional JSON file which in turn is overridden
// by environment variables. A .env file in the working directory is read as if
// its variables were part of the environment.
//
// Every environment variable carries the ARTISTINFO_ prefix. For example
// ARTISTINFO_LISTEN=:9090 sets the listen address.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/ironsmile/artistinfo/src/upstream"
	"github.com/ironsmile/artistinfo/src/version"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "ARTISTINFO_"

// DotEnvFile is the name of the file with environment variables which Load
// reads when it exists.
const DotEnvFile = ".env"

// Config contains everything which could be configured. Durations are in
// seconds.
type Config struct {
	Listen       string `json:"listen" env:"LISTEN"`
	Gzip         bool   `json:"gzip" env:"GZIP"`
	ReadTimeout  int    `json:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout int    `json:"write_timeout" env:"WRITE_TIMEOUT"`

	UserAgent      string `json:"user_agent" env:"USER_AGENT"`
	MusicBrainzURL string `json:"musicbrainz_url" env:"MUSICBRAINZ_URL"`
	WikidataURL    string `json:"wikidata_url" env:"WIKIDATA_URL"`
	WikipediaURL   string `json:"wikipedia_url" env:"WIKIPEDIA_URL"`
	CoverArtURL    string `json:"coverart_url" env:"COVERART_URL"`

	// UpstreamTimeout bounds every single request to an upstream API.
	UpstreamTimeout int `json:"upstream_timeout" env:"UPSTREAM_TIMEOUT"`

	// MusicBrainzRate is the maximum number of requests per second sent to
	// MusicBrainz.
	MusicBrainzRate float64 `json:"musicbrainz_rate" env:"MUSICBRAINZ_RATE"`

	// MaxCoverLookups limits the concurrent Cover Art Archive lookups for a
	// single artist. Zero means no limit.
	MaxCoverLookups int `json:"max_cover_lookups" env:"MAX_COVER_LOOKUPS"`

	CacheTTL  int `json:"cache_ttl" env:"CACHE_TTL"`
	CacheSize int `json:"cache_size" env:"CACHE_SIZE"`

	Debug bool `json:"debug" env:"DEBUG"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Listen:          ":8080",
		ReadTimeout:     15,
		WriteTimeout:    60,
		UserAgent:       fmt.Sprintf("artistinfo/%s ( https://github.com/ironsmile/artistinfo )", version.Version),
		MusicBrainzURL:  upstream.DefaultMusicBrainzURL,
		WikidataURL:     upstream.DefaultWikidataURL,
		WikipediaURL:    upstream.DefaultWikipediaURL,
		CoverArtURL:     upstream.DefaultCoverArtURL,
		UpstreamTimeout: 10,
		MusicBrainzRate: 1,
		CacheTTL:        300,
		CacheSize:       1000,
	}
}

// LoadOptions tell Load where to look for configuration.
type LoadOptions struct {
	// File is the path to a JSON configuration file. Empty means that there
	// is no such file.
	File string

	// DotEnv is the path to a .env file. It is fine for it not to exist.
	DotEnv string

	// Environ are the environment variables, usually env.ToMap(os.Environ()).
	// They take precedence over the ones in DotEnv.
	Environ map[string]string
}

// Load builds the configuration out of the defaults, the JSON file, the .env
// file and the environment, in this order. The result is validated.
func Load(fsys afero.Fs, opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.File != "" {
		fileCfg, err := parseFile(fsys, opts.File)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
	}

	environ, err := readDotEnv(fsys, opts.DotEnv)
	if err != nil {
		return nil, err
	}
	for key, val := range opts.Environ {
		environ[key] = val
	}

	err = env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parseFile reads the JSON configuration file at path.
func parseFile(fsys afero.Fs, path string) (*Config, error) {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := new(Config)
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// readDotEnv returns the variables in the .env file at path. A missing file is
// the same as an empty one.
func readDotEnv(fsys afero.Fs, path string) (map[string]string, error) {
	environ := make(map[string]string)
	if path == "" {
		return environ, nil
	}

	fh, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return environ, nil
	} else if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	parsed, err := godotenv.Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for key, val := range parsed {
		environ[key] = val
	}
	return environ, nil
}

// merge copies over all non-zero fields of the other config.
func (cfg *Config) merge(other *Config) {
	cfgVal := reflect.ValueOf(cfg).Elem()
	otherVal := reflect.ValueOf(other).Elem()

	for i := 0; i < otherVal.NumField(); i++ {
		otherField := otherVal.Field(i)
		if otherField.IsZero() {
			continue
		}

		cfgField := cfgVal.Field(i)
		if !cfgField.CanSet() {
			continue
		}

		cfgField.Set(otherField)
	}
}

// Validate returns an error which describes every invalid value in the
// configuration.
func (cfg *Config) Validate() error {
	var errs []error

	if cfg.Listen == "" {
		errs = append(errs, errors.New("listen address must not be empty"))
	}
	if cfg.UserAgent == "" {
		errs = append(errs, errors.New("user_agent must not be empty"))
	}

	for name, val := range map[string]string{
		"musicbrainz_url": cfg.MusicBrainzURL,
		"wikidata_url":    cfg.WikidataURL,
		"wikipedia_url":   cfg.WikipediaURL,
		"coverart_url":    cfg.CoverArtURL,
	} {
		u, err := url.Parse(val)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s is not a HTTP(S) URL: `%s`", name, val))
		}
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, errors.New("read_timeout must not be negative"))
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, errors.New("write_timeout must not be negative"))
	}
	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("upstream_timeout must be positive"))
	}
	if cfg.MusicBrainzRate < 0 {
		errs = append(errs, errors.New("musicbrainz_rate must not be negative"))
	}
	if cfg.MaxCoverLookups < 0 {
		errs = append(errs, errors.New("max_cover_lookups must not be negative"))
	}
	if cfg.CacheTTL <= 0 {
		errs = append(errs, errors.New("cache_ttl must be positive"))
	}
	if cfg.CacheSize <= 0 {
		errs = append(errs, errors.New("cache_size must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Seconds converts a duration setting into time.Duration.
func Seconds(s int) time.Duration {
	return time.Duration(s) * time.Second
}
