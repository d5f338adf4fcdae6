package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	sc "github.com/dmitrijs2005/ironbank/internal/server/config"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StatementURLTTL is how long a presigned statement link stays valid.
const StatementURLTTL = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Statement points at an uploaded CSV export.
type Statement struct {
	Key       string
	URL       string
	ExpiresAt time.Time
	Rows      int
}

// StatementService exports a user's recent transactions to S3-compatible
// storage and hands out a short-lived download link.
type StatementService struct {
	ledger *LedgerService
	config *sc.Config
	now    func() time.Time
}

func NewStatementService(ledger *LedgerService, config *sc.Config) *StatementService {
	return &StatementService{ledger: ledger, config: config, now: time.Now}
}

func statementKey(userID string, d time.Time) string {
	return fmt.Sprintf("statements/%s/%d/%02d/%02d/%v.csv", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *StatementService) getClients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		// MinIO serves buckets under the path, not as subdomains
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// Export renders up to limit of the user's newest transactions as CSV,
// uploads them and returns a presigned GET link.
func (s *StatementService) Export(ctx context.Context, userID string, limit int) (*Statement, error) {
	txs, err := s.ledger.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	body, err := renderStatement(txs)
	if err != nil {
		return nil, fmt.Errorf("render statement: %w", err)
	}

	client, presignClient, err := s.getClients(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	now := s.now()
	key := statementKey(userID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	}); err != nil {
		return nil, fmt.Errorf("upload statement: %w", err)
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(StatementURLTTL))
	if err != nil {
		return nil, fmt.Errorf("presign statement: %w", err)
	}

	return &Statement{
		Key:       key,
		URL:       req.URL,
		ExpiresAt: now.Add(StatementURLTTL),
		Rows:      len(txs),
	}, nil
}

var statementHeader = []string{
	"date", "account", "type", "direction", "amount", "balance_after", "counterparty", "memo",
}

func renderStatement(txs []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(statementHeader); err != nil {
		return nil, err
	}
	for _, t := range txs {
		amount := FormatCents(t.AmountCents)
		if t.Direction == common.DirectionOut {
			amount = "-" + amount
		}
		row := []string{
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.AccountNumber,
			t.AccountType,
			t.Direction,
			amount,
			FormatCents(t.BalanceAfterCents),
			t.CounterpartyNumber,
			t.Memo,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
