// internal/config/model.go
//
// Typed configuration model for rpick.
//
// The loader in loader.go fills these structs from, lowest precedence first:
// built-in defaults, an optional `.env`, an optional YAML file, `RPICK_`
// environment variables, and finally command-line overrides.  Struct tags use
// `koanf:"…"`; validation tags are checked right after unmarshal.

package config

// Catalog says where items come from and how to read their names.
type Catalog struct {
	Path          string `koanf:"path"           validate:"required"`
	Format        string `koanf:"format"         validate:"omitempty,oneof=auto lines dir json"`
	NameField     string `koanf:"name_field"`
	DetailField   string `koanf:"detail_field"`
	IncludeHidden bool   `koanf:"include_hidden"`
	Recursive     bool   `koanf:"recursive"`
}

// Cache sizes the filter result caches.
type Cache struct {
	Capacity int    `koanf:"capacity" validate:"min=1,max=4096"`
	Policy   string `koanf:"policy"   validate:"omitempty,oneof=fifo lru"`
}

// Log configures the rotating log file.
type Log struct {
	File       string `koanf:"file"`
	Level      string `koanf:"level"        validate:"omitempty,oneof=debug info warn error"`
	MaxSizeMB  int    `koanf:"max_size_mb"  validate:"min=0"`
	MaxBackups int    `koanf:"max_backups"  validate:"min=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"min=0"`
}

// Metrics enables the Prometheus endpoint when ListenAddr is set.
type Metrics struct {
	ListenAddr string `koanf:"listen_addr" validate:"omitempty,hostname_port"`
}

// UI holds picker behaviour.
type UI struct {
	// Print selects what is written to stdout for the accepted item.
	Print string `koanf:"print" validate:"omitempty,oneof=name detail source"`
	// Query is typed into the prompt before the first frame.
	Query string `koanf:"query"`
	// Clipboard overrides the detected copy command, e.g. "xclip -selection clipboard".
	Clipboard string `koanf:"clipboard"`
}

// Config is the aggregate returned by Load.
type Config struct {
	Catalog Catalog `koanf:"catalog"`
	Cache   Cache   `koanf:"cache"`
	Log     Log     `koanf:"log"`
	Metrics Metrics `koanf:"metrics"`
	UI      UI      `koanf:"ui"`
}
