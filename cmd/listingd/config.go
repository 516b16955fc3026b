package main

// Session backends.
const (
	backendMemory   = "memory"
	backendPostgres = "postgres"
	backendMongo    = "mongo"
	backendRedis    = "redis"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"listingd"`

	// SessionBackend selects the seller session repository: memory, postgres or mongo.
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"`
	// ProfileStore selects the per-browser storage: memory or redis.
	ProfileStore string `env:"PROFILE_STORE" envDefault:"memory"`

	// ContentListsFile is an optional YAML file replacing the built-in phrase lists.
	ContentListsFile string `env:"CONTENT_LISTS_FILE"`
}
