package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "FEDORA"
	ConfigName = "fedoraconnector"
)

const (
	DefaultPort         = 8080
	DefaultFetchTimeout = 15 * time.Second
	DefaultPreviewScale = "200,0"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Configuration struct {
	// Debug, if true, sets the log level to debug and logs every HTTP request.
	Debug bool
	// DbUrl is the path to the database file.
	DbUrl string
	// MigrationsFolder is the directory holding the SQL migrations applied by the migrate command.
	MigrationsFolder string
	// QueueDbUrl is the path to the database used by the background job queue. When empty, the queue is disabled
	// and server versions are detected synchronously.
	QueueDbUrl string
	Port       uint16
	// Url is the public root of the application, used to build absolute links such as the importer link.
	Url *url.URL
	// StaticDir is the directory on which the stylesheet and scripts of the admin pages can be found.
	StaticDir  string
	SessionKey string
	// FetchTimeout bounds every request made to a Fedora server.
	FetchTimeout time.Duration
	// TEIDisplay enables the TEI display capability, which embeds the text of TEI datastreams.
	TEIDisplay bool
	// PreviewScale is the djatoka scale parameter used for JPEG-2000 thumbnails.
	PreviewScale string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("db_url", "fedoraconnector.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("queue_db_url", "")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("url", fmt.Sprintf("http://localhost:%d", DefaultPort))
	v.SetDefault("static_dir", "static")
	v.SetDefault("session_key", "")
	v.SetDefault("fetch_timeout", DefaultFetchTimeout)
	v.SetDefault("tei_display", false)
	v.SetDefault("preview_scale", DefaultPreviewScale)
}

// New returns a viper instance with the application's defaults, environment binding and, if path is not empty,
// the given configuration file.
func New(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/fedoraconnector")
	}
	return v
}

// ReadConfig reads the configuration file, if there is one, and builds the configuration. A missing configuration
// file is not an error; defaults and environment variables are used instead.
func ReadConfig(v *viper.Viper) (Configuration, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}
	return FromViper(v)
}

func FromViper(v *viper.Viper) (Configuration, error) {
	u, err := url.Parse(v.GetString("url"))
	if err != nil {
		return Configuration{}, fmt.Errorf("%w: url: %s", ErrInvalidConfig, err)
	}
	if !u.IsAbs() {
		return Configuration{}, fmt.Errorf("%w: url must be absolute: %s", ErrInvalidConfig, u)
	}

	port := v.GetUint("port")
	if port == 0 || port > 65535 {
		return Configuration{}, fmt.Errorf("%w: port out of range: %d", ErrInvalidConfig, port)
	}

	timeout := v.GetDuration("fetch_timeout")
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	scale := v.GetString("preview_scale")
	if scale == "" {
		scale = DefaultPreviewScale
	}

	return Configuration{
		Debug:            v.GetBool("debug"),
		DbUrl:            v.GetString("db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		QueueDbUrl:       v.GetString("queue_db_url"),
		Port:             uint16(port),
		Url:              u,
		StaticDir:        v.GetString("static_dir"),
		SessionKey:       v.GetString("session_key"),
		FetchTimeout:     timeout,
		TEIDisplay:       v.GetBool("tei_display"),
		PreviewScale:     scale,
	}, nil
}
