// Package aws implements guardian key escrow on Amazon S3.
package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/voteforge/electionkit"
)

// S3Client is the subset of the S3 API the store uses. Satisfied by
// *s3.Client; tests substitute a fake.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store implements electionkit.KeyStore on an S3 bucket. Keys are
// written under guardians/<guardian-id>/key; the bucket's own encryption
// and access policy are the security boundary.
type S3Store struct {
	client S3Client
	bucket string
}

// NewS3Store creates an S3Store using the default AWS configuration chain
// (environment, shared config, instance role).
func NewS3Store(ctx context.Context, bucket string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket must not be empty", electionkit.ErrInvalidConfiguration)
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load AWS configuration: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	return &S3Store{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// NewS3StoreWithClient creates an S3Store with an explicit client.
func NewS3StoreWithClient(client S3Client, bucket string) (*S3Store, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: s3 client must not be nil", electionkit.ErrInvalidConfiguration)
	}
	if bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket must not be empty", electionkit.ErrInvalidConfiguration)
	}
	return &S3Store{client: client, bucket: bucket}, nil
}

func (s *S3Store) objectKey(guardianID string) string {
	return fmt.Sprintf("guardians/%s/key", guardianID)
}

// StoreGuardianKey uploads the key material for a guardian, replacing any
// previous object.
func (s *S3Store) StoreGuardianKey(ctx context.Context, guardianID string, key []byte) error {
	if guardianID == "" {
		return fmt.Errorf("%w: guardian id must not be empty", electionkit.ErrInvalidConfiguration)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: key material must not be empty", electionkit.ErrInvalidConfiguration)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               awssdk.String(s.bucket),
		Key:                  awssdk.String(s.objectKey(guardianID)),
		Body:                 bytes.NewReader(key),
		ServerSideEncryption: types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to store guardian key in S3: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	return nil
}

// RetrieveGuardianKey downloads the key material for a guardian.
func (s *S3Store) RetrieveGuardianKey(ctx context.Context, guardianID string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(s.bucket),
		Key:    awssdk.String(s.objectKey(guardianID)),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: no key stored for guardian %s",
				electionkit.ErrSecretStorageUnavailable, guardianID)
		}
		return nil, fmt.Errorf("%w: failed to read guardian key from S3: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	defer out.Body.Close()

	key, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read guardian key body: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	return key, nil
}
