// Package report optionally publishes rank results to Tencent Cloud COS, so
// a batch job's output can be handed to a collaborator without wiring its
// own storage client.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tencentyun/cos-go-sdk-v5"

	"github.com/snic/snic/pkg/config"
	"github.com/snic/snic/pkg/model"
)

// Sink uploads rank reports to a COS bucket under a configured key prefix.
type Sink struct {
	client    *cos.Client
	bucket    string
	region    string
	domain    string
	scheme    string
	keyPrefix string
}

// NewSink builds a Sink from report configuration. It returns an error if
// the bucket/region/credentials required to talk to COS are missing.
func NewSink(cfg config.ReportConfig) (*Sink, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("bucket and region are required for report storage")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("credentials are required for report storage")
	}

	domain := cfg.Domain
	if domain == "" {
		domain = "myqcloud.com"
	}
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "https"
	}

	bucketURL, err := url.Parse(fmt.Sprintf("%s://%s.cos.%s.%s", scheme, cfg.Bucket, cfg.Region, domain))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bucket URL: %w", err)
	}
	serviceURL, err := url.Parse(fmt.Sprintf("%s://cos.%s.%s", scheme, cfg.Region, domain))
	if err != nil {
		return nil, fmt.Errorf("failed to parse service URL: %w", err)
	}

	client := cos.NewClient(&cos.BaseURL{
		BucketURL:  bucketURL,
		ServiceURL: serviceURL,
	}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	return &Sink{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		domain:    domain,
		scheme:    scheme,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// PublishRank serializes a rank response to JSON and uploads it under
// keyPrefix/name, returning the object's public URL.
func (s *Sink) PublishRank(ctx context.Context, name string, result model.RankResponse) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal rank report: %w", err)
	}

	key := s.keyPrefix + name
	if _, err := s.client.Object.Put(ctx, key, bytes.NewReader(data), nil); err != nil {
		return "", fmt.Errorf("failed to upload rank report to COS: %w", err)
	}

	return s.GetURL(key), nil
}

// GetURL returns the public URL for the given object key.
func (s *Sink) GetURL(key string) string {
	return fmt.Sprintf("%s://%s.cos.%s.%s/%s", s.scheme, s.bucket, s.region, s.domain, key)
}

// DefaultReportName builds a timestamped object name for a rank report.
func DefaultReportName(t time.Time) string {
	return fmt.Sprintf("rank-%s.json", t.UTC().Format("20060102T150405Z"))
}
