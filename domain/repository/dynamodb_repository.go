package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Songmu/retry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
	"github.com/pyama86/incidentseed/domain/model"
	"golang.org/x/sync/errgroup"
)

// FixtureItem stores one generated record. All tables share a single DynamoDB
// table keyed by (table_name, record_id).
type FixtureItem struct {
	TableName string `dynamo:"table_name,hash"`
	RecordID  string `dynamo:"record_id,range"`
	RunID     string `dynamo:"run_id"`
	Body      string `dynamo:"body"`
}

type DynamoDBRepository struct {
	db       *dynamo.DB
	table    string
	workers  int
	attempts uint
	interval time.Duration
}

// NewDynamoDBRepository connects to DynamoDB. A custom endpoint means a local
// instance: dummy credentials are used and the table is created when missing.
func NewDynamoDBRepository(ctx context.Context, cfg DynamoDBExportConfig, workers int) (*DynamoDBRepository, error) {
	var db *dynamo.DB
	if cfg.Endpoint != "" {
		region := cfg.Region
		if region == "" {
			region = "dummy"
		}
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		db = dynamo.New(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
		if err := setupDdbSchema(ctx, db, cfg.Table); err != nil {
			return nil, fmt.Errorf("failed to setup schema: %w", err)
		}
	} else {
		var opts []func(*config.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, config.WithRegion(cfg.Region))
		}
		awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		db = dynamo.New(awsCfg)
	}

	return &DynamoDBRepository{
		db:       db,
		table:    cfg.Table,
		workers:  max(workers, 1),
		attempts: 5,
		interval: 2 * time.Second,
	}, nil
}

func setupDdbSchema(ctx context.Context, db *dynamo.DB, table string) error {
	if _, err := db.Table(table).Describe().Run(ctx); err == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return db.CreateTable(table, FixtureItem{}).Provision(10, 10).Run(ctx)
}

func (r *DynamoDBRepository) Name() string {
	return "dynamodb:" + r.table
}

// FixtureItems flattens a dataset into DynamoDB items in table and id order.
func FixtureItems(runID string, ds *model.Dataset) ([]FixtureItem, error) {
	var items []FixtureItem
	for _, t := range ds.Tables() {
		for _, row := range t.Rows {
			body, err := marshal(row)
			if err != nil {
				return nil, fmt.Errorf("encode %s/%s: %w", t.Name, row.Key(), err)
			}
			items = append(items, FixtureItem{
				TableName: string(t.Name),
				RecordID:  row.Key(),
				RunID:     runID,
				Body:      string(body),
			})
		}
	}
	return items, nil
}

func (r *DynamoDBRepository) Export(ctx context.Context, runID string, ds *model.Dataset) error {
	items, err := FixtureItems(runID, ds)
	if err != nil {
		return err
	}
	table := r.db.Table(r.table)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for _, item := range items {
		eg.Go(func() error {
			err := retry.Retry(r.attempts, r.interval, func() error {
				err := table.Put(item).Run(ctx)
				if err != nil {
					slog.Warn("PutItem", slog.String("table", item.TableName), slog.String("record_id", item.RecordID), slog.Any("err", err))
				}
				return err
			})
			if err != nil {
				return fmt.Errorf("put %s/%s: %w", item.TableName, item.RecordID, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
