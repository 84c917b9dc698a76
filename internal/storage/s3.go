package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go_langlearn_quiz/internal/config"
	"go_langlearn_quiz/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage は AWS S3 に画像を保存する実装です
type S3Storage struct {
	client *s3.Client
	cfg    *config.S3Config
}

// NewS3Storage は設定に応じて認証方法を切り替えてS3クライアントを生成します
func NewS3Storage(cfg *config.Config) Storage {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error

	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.Storage.S3.Region))

	// 設定ファイルに基づき、認証方法を決定
	switch cfg.Storage.S3.AuthType {
	case "static_credentials":
		// --- 静的認証情報 (アクセスキー) を使う場合 ---
		slog.Info("Configuring S3 with static credentials.")
		if cfg.Storage.S3.AccessKeyID == "" || cfg.Storage.S3.SecretAccessKey == "" {
			slog.Error("S3 auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 起動時にpanicさせることで、設定ミスに即座に気づけるようにする
			panic("missing static credentials for S3")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.Storage.S3.AccessKeyID,
			cfg.Storage.S3.SecretAccessKey,
			"",
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		// --- IAMロール (ECS Task Role, EC2 Instance Profileなど) を使う場合 ---
		// SDKが自動で認証情報を探すので、特別な設定は不要
		slog.Info("Configuring S3 with IAM Role credentials.")

	default:
		slog.Warn("Unknown S3 auth_type specified, defaulting to IAM Role.", "type", cfg.Storage.S3.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for S3", "error", err)
		panic(err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		cfg:    &cfg.Storage.S3,
	}
}

// Upload はS3へオブジェクトを保存し、公開URLを返します
func (s *S3Storage) Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	logger := middleware.GetLogger(ctx)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.Error("Failed to upload object to S3", "error", err, "key", key)
		return "", fmt.Errorf("S3Storage.Upload: %w", err)
	}

	logger.Info("Object uploaded to S3", "key", key, "bucket", s.cfg.Bucket)
	return s.publicURL(key), nil
}

func (s *S3Storage) publicURL(key string) string {
	if s.cfg.BaseURL != "" {
		return strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
