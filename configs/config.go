package config

import "os"

type R2 struct {
	AccountID     string
	AccessKey     string
	SecretKey     string
	BucketName    string
	PublicBaseURL string
}

type Config struct {
	FirestoreProjectID   string
	FirestoreCredentials string
	RedisURI             string
	OpenAIKey            string
	GeminiKey            string
	R2                   R2
	Port                 string
}

func LoadConfig() *Config {
	return &Config{
		FirestoreProjectID:   getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreCredentials: getEnv("FIRESTORE_CREDENTIALS_PATH", ""),
		RedisURI:             getEnv("REDIS_URI", "localhost:6379"),
		OpenAIKey:            getEnv("OPENAI_API_KEY", ""),
		GeminiKey:            getEnv("GEMINI_API_KEY", ""),
		R2: R2{
			AccountID:     getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:     getEnv("R2_ACCESS_KEY", ""),
			SecretKey:     getEnv("R2_SECRET_KEY", ""),
			BucketName:    getEnv("R2_BUCKET_NAME", ""),
			PublicBaseURL: getEnv("R2_PUBLIC_BASE_URL", ""),
		},
		Port: getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
