package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	cfg "github.com/maheshrc27/marketing-planner/configs"
)

// R2Service stores generated media on Cloudflare R2 and serves it from the
// public bucket URL.
type R2Service struct {
	client *s3.Client
	bucket string
	public string
}

func NewR2Service(ctx context.Context, c cfg.R2) (*R2Service, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("loading r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID))
	})

	return &R2Service{
		client: client,
		bucket: c.BucketName,
		public: c.PublicBaseURL,
	}, nil
}

// Upload writes the file under a random key and returns its public URL. When
// contentType is empty the type is sniffed from the bytes.
func (r *R2Service) Upload(ctx context.Context, file []byte, contentType string) (string, error) {
	key, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	if contentType == "" {
		fileType, err := filetype.Match(file)
		if err != nil || fileType == types.Unknown {
			return "", fmt.Errorf("unsupported file type: %w", err)
		}
		contentType = fileType.MIME.Value
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	}

	_, err = r.client.PutObject(ctx, input)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return r.public + "/" + key, nil
}
