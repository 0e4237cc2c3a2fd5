package config

type Config struct {
	DatabaseURL        string
	SessionSecret      string
	JWTSecret          string
	GitHubClientID     string
	GitHubClientSecret string
	BaseURL            string
	FrontendURL        string
	Environment        string
}
