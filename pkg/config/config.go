package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".create-release.yml"

type Config struct {
	TagName     string `yaml:"-"`
	ReleaseName string `yaml:"-"`
	Draft       string `yaml:"draft"`
	Prerelease  string `yaml:"prerelease"`
	Repo        string `yaml:"-"`
	Token       string `yaml:"-"`
	APIURL      string `yaml:"api_url"`
	DryRun      bool   `yaml:"-"`
	Output      string `yaml:"output"`
	Git         Git    `yaml:"git"`
	Log         Log    `yaml:"log"`
}

type Git struct {
	Path string `yaml:"path"`
	Dir  string `yaml:"dir"`
	Head string `yaml:"head"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func Default() *Config {
	return &Config{
		Output: "table",
		Git: Git{
			Path: "git",
			Dir:  ".",
			Head: "head",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFlags overrides cfg with every flag that carries a non-empty value.
func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("tag-name"); err == nil && v != "" {
		cfg.TagName = v
	}
	if v, err := flags.GetString("release-name"); err == nil && v != "" {
		cfg.ReleaseName = v
	}
	if v, err := flags.GetString("draft"); err == nil && v != "" {
		cfg.Draft = v
	}
	if v, err := flags.GetString("prerelease"); err == nil && v != "" {
		cfg.Prerelease = v
	}
	if v, err := flags.GetString("repo"); err == nil && v != "" {
		cfg.Repo = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetString("api-url"); err == nil && v != "" {
		cfg.APIURL = v
	}
	if v, err := flags.GetBool("dry-run"); err == nil {
		cfg.DryRun = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" && flags.Changed("output") {
		cfg.Output = v
	}
	if v, err := flags.GetString("git"); err == nil && v != "" && flags.Changed("git") {
		cfg.Git.Path = v
	}
	if v, err := flags.GetString("dir"); err == nil && v != "" && flags.Changed("dir") {
		cfg.Git.Dir = v
	}
	if v, err := flags.GetString("head-ref"); err == nil && v != "" && flags.Changed("head-ref") {
		cfg.Git.Head = v
	}
	if v, err := flags.GetString("log-level"); err == nil && v != "" && flags.Changed("log-level") {
		cfg.Log.Level = v
	}
	if v, err := flags.GetBool("log-json"); err == nil && flags.Changed("log-json") {
		cfg.Log.JSON = v
	}
	return cfg
}

// Validate checks the inputs a release cannot be created without.
func (c *Config) Validate() error {
	if c.TagName == "" {
		return fmt.Errorf("Input required and not supplied: tag_name")
	}
	if c.ReleaseName == "" {
		return fmt.Errorf("Input required and not supplied: release_name")
	}
	if c.Repo == "" && !c.DryRun {
		return fmt.Errorf("repository is not set; pass --repo or set GITHUB_REPOSITORY")
	}
	return nil
}
