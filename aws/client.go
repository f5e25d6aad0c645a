// Package aws archives inbound media attachments to S3 so the dispatch
// collaborator can fetch them after the provider's temporary URL expires.
package aws

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/rs/zerolog/log"
)

type Client struct {
	session  *session.Session
	bucket   string
	region   string
	uploader *s3manager.Uploader
	s3Client *s3.S3
}

func NewClient(region, bucket string) *Client {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AWS session")
	}

	log.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("AWS session created successfully")

	return &Client{
		session:  sess,
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
		s3Client: s3.New(sess),
	}
}

// UploadMedia stores one downloaded attachment and returns its public URL.
func (c *Client) UploadMedia(mediaID string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("media/%s_%d%s", mediaID, time.Now().Unix(), extensionFor(contentType))

	log.Debug().
		Str("bucket", c.bucket).
		Str("key", key).
		Int("content_size", len(data)).
		Msg("Starting S3 upload")

	uploadInput := &s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	_, err := c.uploader.Upload(uploadInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", c.bucket).
			Str("key", key).
			Msg("S3 upload failed")
		return "", fmt.Errorf("failed to upload media to S3: %w", err)
	}

	_, aclErr := c.s3Client.PutObjectAcl(&s3.PutObjectAclInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		ACL:    aws.String("public-read"),
	})
	if aclErr != nil {
		log.Warn().
			Err(aclErr).
			Str("bucket", c.bucket).
			Str("key", key).
			Msg("Failed to set public-read ACL on uploaded object, file may not be publicly accessible")
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)

	log.Info().
		Str("s3_url", publicURL).
		Str("media_id", mediaID).
		Msg("Media archived to S3")

	return publicURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "audio/ogg":
		return ".ogg"
	case "audio/mpeg":
		return ".mp3"
	case "video/mp4":
		return ".mp4"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
