package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados.
const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// StorageConfig selecciona el driver y ubica los archivos JSON.
type StorageConfig struct {
	Driver            string // json | postgres
	DataDir           string
	DBFile            string // colecciones products y movements (formato json-server)
	UsersFile         string // almacén de credenciales (lista estática)
	UsersOverrideFile string // lista editable de la vista de usuarios
}

// DBPath ruta completa del archivo de colecciones.
func (c StorageConfig) DBPath() string { return filepath.Join(c.DataDir, c.DBFile) }

// UsersPath ruta completa del archivo de credenciales.
func (c StorageConfig) UsersPath() string { return filepath.Join(c.DataDir, c.UsersFile) }

// UsersOverridePath ruta completa de la lista editable de usuarios.
func (c StorageConfig) UsersOverridePath() string {
	return filepath.Join(c.DataDir, c.UsersOverrideFile)
}

// DBConfig configuración de PostgreSQL (solo si Storage.Driver = postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos; 0 = sin expiración (la sesión termina solo con logout)
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	StaticDir   string // build del SPA; vacío o inexistente = no se sirve
	BodyLimitMB int    // el formulario de producto envía la imagen como data URL base64
}

// BodyLimit límite del cuerpo de las peticiones en bytes.
func (c HTTPConfig) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// devJWTSecret solo se usa con APP_ENV=development cuando JWT_SECRET no está definido.
const devJWTSecret = "stockpro-dev-secret"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORAGE_DRIVER, DATA_DIR, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: .env o config.env; ignoramos el error si no existen
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	port := getInt(v, "HTTP_PORT", 0)
	if port == 0 {
		// Render/Heroku exponen el puerto en PORT
		port = getInt(v, "PORT", 3000)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "stockpro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:            strings.ToLower(getString(v, "STORAGE_DRIVER", StorageJSON)),
			DataDir:           getString(v, "DATA_DIR", "./data"),
			DBFile:            getString(v, "DB_FILE", "db.json"),
			UsersFile:         getString(v, "USERS_FILE", "usuarios.json"),
			UsersOverrideFile: getString(v, "USERS_OVERRIDE_FILE", "usuarios_data.json"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stockpro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 0),
			Issuer:     getString(v, "JWT_ISSUER", "stockpro"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        port,
			StaticDir:   getString(v, "HTTP_STATIC_DIR", "dist"),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 16),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageJSON, StoragePostgres:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER inválido %q (json|postgres)", c.Storage.Driver)
	}
	if c.JWT.Secret == "" {
		if c.App.Env != "development" {
			return fmt.Errorf("config: JWT_SECRET es obligatorio fuera de development")
		}
		c.JWT.Secret = devJWTSecret
	}
	if c.HTTP.BodyLimitMB <= 0 {
		return fmt.Errorf("config: HTTP_BODY_LIMIT_MB debe ser positivo")
	}
	if c.JWT.Expiration < 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_MINUTES no puede ser negativo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
