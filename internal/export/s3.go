package export

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// S3API is the slice of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader mirrors written export files into an S3 bucket under a key
// prefix.
type Uploader struct {
	cl     S3API
	bucket string
	prefix string
}

func NewUploader(cl S3API, bucket, prefix string) *Uploader {
	return &Uploader{cl: cl, bucket: bucket, prefix: prefix}
}

// UploadFiles puts each local file under prefix/<basename>.
func (u *Uploader) UploadFiles(ctx context.Context, paths []string) error {
	for _, p := range paths {
		body, err := os.ReadFile(p)
		if err != nil {
			return errors.Wrapf(err, "read %s", p)
		}
		key := path.Join(u.prefix, filepath.Base(p))
		_, err = u.cl.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(body),
		})
		if err != nil {
			return errors.Wrapf(err, "put s3://%s/%s", u.bucket, key)
		}
	}
	return nil
}
