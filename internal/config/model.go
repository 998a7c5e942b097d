// internal/config/model.go
//
// Typed configuration model for headmeta.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                            – dotenv values,
//   • `conf/headmeta.yaml`                       – primary static file,
//   • `HEADMETA_`-prefixed environment overrides – highest precedence.
//
// A database password of the form `vault:<path>#<key>` is resolved through
// the Vault client when the SQL store opens, so the YAML never carries the
// secret itself.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Site section
//

// Site holds the defaults applied to every page descriptor.
type Site struct {
	Name        string `koanf:"name"`
	BaseURL     string `koanf:"base_url"     validate:"omitempty,url"`
	Language    string `koanf:"language"     validate:"omitempty,bcp47_language_tag"`
	Robots      string `koanf:"robots"`
	TwitterSite string `koanf:"twitter_site" validate:"omitempty,startswith=@"`
}

//
// Pages section
//

// Pages selects where page descriptors come from.
//
//	source: file → read `<dir>/<slug>.yaml`
//	source: sql  → read the `page` table through Database
type Pages struct {
	Source    string `koanf:"source"     validate:"required,oneof=file sql"`
	Dir       string `koanf:"dir"        validate:"required_if=Source file"`
	CacheSize int    `koanf:"cache_size" validate:"gte=0"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The DSN is kept in YAML so operators can tweak host, port, or flags.
// The password is injected at runtime and may be a `vault:` reference.
type Database struct {
	DSN      string `koanf:"dsn"`
	Password string `koanf:"password"`
}

//
// Log section
//

// Log configures the file logger.
type Log struct {
	Dir   string `koanf:"dir"`
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // HEADMETA_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Site     Site     `koanf:"site"`
	Pages    Pages    `koanf:"pages"`
	Database Database `koanf:"database"`
	Log      Log      `koanf:"log"`
	Paths    Paths    `koanf:"-"`
}
