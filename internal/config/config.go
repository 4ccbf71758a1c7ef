package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type StorageCfg struct {
	DataDir     string
	UsersFile   string
	ProjectsDir string
}

// UsersPath returns the location of the users workbook.
func (s StorageCfg) UsersPath() string {
	return filepath.Join(s.DataDir, s.UsersFile)
}

// ProjectsPath returns the directory holding project documents.
func (s StorageCfg) ProjectsPath() string {
	return filepath.Join(s.DataDir, s.ProjectsDir)
}

type CORSCfg struct {
	AllowOrigins []string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type MetricsCfg struct {
	Enabled bool
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Storage   StorageCfg
	CORS      CORSCfg
	Telemetry TelemetryCfg
	Metrics   MetricsCfg
	S3        S3Cfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	// Defaults apply whether or not a config file exists
	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// Expand ${ENV} references once, then parse the expanded content
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parse([]byte(os.ExpandEnv(string(raw))))
	}

	// No file: env + defaults only
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(raw []byte) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBuffer(raw)); err != nil {
		return nil, err
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	setDefaults(v)

	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tracker")
	v.SetDefault("app.env", "release")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8000)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.dataDir", "data")
	v.SetDefault("storage.usersFile", "users.xlsx")
	v.SetDefault("storage.projectsDir", "projects")
	v.SetDefault("cors.allowOrigins", []string{
		"https://contracts-electrical.azurewebsites.net",
		"http://localhost:8080",
	})
	v.SetDefault("telemetry.sampleRatio", 1.0)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
}
