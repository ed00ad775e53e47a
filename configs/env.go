package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMaxContentLength = 128 * 1024 * 1024

// LoadEnv reads the .env file once at startup. Missing files are fine in
// production where the environment is set by the platform.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func EnvSecretKey() string {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		return "dev"
	}
	return key
}

func EnvDatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func EnvAWSAccessKey() string {
	return os.Getenv("AWS_ACCESS_KEY_ID")
}

func EnvAWSSecretKey() string {
	return os.Getenv("AWS_SECRET_ACCESS_KEY")
}

func EnvAWSRegion() string {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		return "us-east-1"
	}
	return region
}

func EnvS3Bucket() string {
	return os.Getenv("S3_BUCKET_NAME")
}

func EnvS3Prefix() string {
	prefix := os.Getenv("S3_PREFIX")
	if prefix == "" {
		return "target-lists/"
	}
	return prefix
}

// EnvS3SSEKMSKeyID selects aws:kms server-side encryption when set;
// objects fall back to AES256 otherwise.
func EnvS3SSEKMSKeyID() string {
	return os.Getenv("S3_SSE_KMS_KEY_ID")
}

func EnvMaxContentLength() int64 {
	raw := os.Getenv("MAX_CONTENT_LENGTH")
	if raw == "" {
		return defaultMaxContentLength
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return defaultMaxContentLength
	}
	return n
}

func EnvPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	return port
}
