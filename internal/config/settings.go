package config

// Settings contains the application config
type Settings struct {
	Port           int    `env:"PORT" envDefault:"8080"`
	MonPort        int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof    bool   `env:"ENABLE_PPROF"`
	LogLevel       string `env:"LOG_LEVEL"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"chatbot-webhook"`
	TelegramAPIURL string `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
}
