package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"portfolioapi/internal/config"
)

func TestValidateMinIOConfig(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "key", SecretKey: "secret", Bucket: "portfolio"}

	tests := []struct {
		name    string
		mutate  func(c *config.MinIOConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.MinIOConfig) {}},
		{name: "missing endpoint", mutate: func(c *config.MinIOConfig) { c.Endpoint = "" }, wantErr: "endpoint"},
		{name: "missing secret", mutate: func(c *config.MinIOConfig) { c.SecretKey = "" }, wantErr: "credentials"},
		{name: "missing bucket", mutate: func(c *config.MinIOConfig) { c.Bucket = "" }, wantErr: "bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := ValidateMinIOConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewMinIO_InvalidConfig(t *testing.T) {
	s, err := NewMinIO(config.MinIOConfig{})
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestTranslateError(t *testing.T) {
	notFound := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	assert.ErrorIs(t, translateError(notFound), ErrObjectNotFound)

	other := errors.New("connection refused")
	assert.Equal(t, other, translateError(other))
}
