package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Corpus    CorpusConfig
	Retrieval RetrievalConfig
	Catalog   CatalogConfig
	Ai        AIConfig
	Keys      APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type CorpusConfig struct {
	SourceDir    string
	PersistDir   string
	ChunkSize    int
	ChunkOverlap int
}

type RetrievalConfig struct {
	TopK            int
	MaxContextChars int
	// Chunks from the same document whose spans overlap by more than this
	// fraction are treated as duplicates during context assembly.
	DedupeOverlapFraction float64
}

type CatalogConfig struct {
	Version string
}

type AIConfig struct {
	EmbeddingProvider    string // "gemini" or "ollama"
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	LLMProvider          string // "ollama", etc
	LLMModel             string // e.g. "llama3", "qwen2.5"
	LLMTimeoutSeconds    int
	LLMMaxRetries        int
	IngestTopic          string
}

type APIKeys struct {
	GoogleGemini string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Corpus: CorpusConfig{
			SourceDir:    getEnv("CORPUS_SOURCE_DIR", "data"),
			PersistDir:   getEnv("VECTOR_PERSIST_DIR", "vectordb"),
			ChunkSize:    getEnvAsInt("CORPUS_CHUNK_SIZE", 500),
			ChunkOverlap: getEnvAsInt("CORPUS_CHUNK_OVERLAP", 50),
		},
		Retrieval: RetrievalConfig{
			TopK:                  getEnvAsInt("RETRIEVAL_TOP_K", 5),
			MaxContextChars:       getEnvAsInt("RETRIEVAL_MAX_CONTEXT_CHARS", 4000),
			DedupeOverlapFraction: getEnvAsFloat("RETRIEVAL_DEDUPE_OVERLAP", 0.5),
		},
		Catalog: CatalogConfig{
			Version: getEnv("CATALOG_VERSION", "v1"),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:          getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:             getEnv("LLM_MODEL", "llama3"),
			LLMTimeoutSeconds:    getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
			LLMMaxRetries:        getEnvAsInt("LLM_MAX_RETRIES", 1),
			IngestTopic:          getEnv("CORPUS_INGEST_TOPIC_NAME", "CORPUS_DOCUMENT_INDEXED"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
