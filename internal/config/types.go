package config

// Config holds all configuration for the application.
type Config struct {
	DBName         string
	MigrationsDir  string
	Port           string
	JWTSecret      string
	AllowedOrigins []string
	Turso          TursoConfig
	Slack          SlackConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SlackConfig configures the optional game-recorded notification. The
// notifier stays disabled when Token is empty.
type SlackConfig struct {
	Token     string
	ChannelID string
}
