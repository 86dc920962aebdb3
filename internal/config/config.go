package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIAddr        string
	LogMode        string
	Provider       string
	OpenAIBaseURL  string
	OpenAIModel    string
	GeminiModel    string
	Language       string
	FlashcardCount int
	QuizCount      int
	ContentBudget  int
	TutorBudget    int
}

func Load() Config {
	return Config{
		APIAddr:        getenv("STUDYKIT_API_ADDR", ":8080"),
		LogMode:        getenv("STUDYKIT_LOG_MODE", "dev"),
		Provider:       getenv("STUDYKIT_PROVIDER", "openai"),
		OpenAIBaseURL:  getenv("STUDYKIT_OPENAI_BASE_URL", "https://api.chatanywhere.tech/v1"),
		OpenAIModel:    getenv("STUDYKIT_OPENAI_MODEL", "deepseek-r1"),
		GeminiModel:    getenv("STUDYKIT_GEMINI_MODEL", "gemini-2.5-flash"),
		Language:       getenv("STUDYKIT_LANGUAGE", "English"),
		FlashcardCount: getenvInt("STUDYKIT_FLASHCARD_COUNT", 10),
		QuizCount:      getenvInt("STUDYKIT_QUIZ_COUNT", 5),
		ContentBudget:  getenvInt("STUDYKIT_CONTENT_BUDGET", 5000),
		TutorBudget:    getenvInt("STUDYKIT_TUTOR_BUDGET", 3000),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
