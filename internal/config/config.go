package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// A Config is built once at startup and handed to components by value or
// pointer; nothing reads the environment after Load returns.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Email    EmailConfig    `mapstructure:"email"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// FrontendOrigin is used for CORS and as the link in reminder e-mails.
	FrontendOrigin      string `mapstructure:"frontend_origin"       validate:"required"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"  validate:"gte=0"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"           validate:"required,min=32"`
	TokenLifetimeHours int    `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`
	BCryptCost         int    `mapstructure:"bcrypt_cost"          validate:"gte=4,lte=31"`
}

// LLMConfig contains the external text-generation settings.
// An empty GeminiAPIKey switches the proxy endpoints to their local fallback.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	ModelName             string `mapstructure:"model_name"              validate:"required"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
	MaxOutputTokens       int    `mapstructure:"max_output_tokens"       validate:"gte=0"`
}

// SMTPConfig holds the SMTP relay used by the reminder sweep.
// Host and User must both be set for SMTP delivery to be enabled.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"     validate:"gt=0,lt=65536"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.User != ""
}

// EmailConfig holds settings for API-based e-mail delivery.
type EmailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	// From overrides the sender address. Defaults to the SMTP user.
	From string `mapstructure:"from"`
}

// ReminderConfig controls the reminder sweep.
type ReminderConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gt=0"`
}
