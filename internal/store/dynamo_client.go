package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

// compile time check - ensure that DynamoClient implements Client interface
var _ Client = (*DynamoClient)(nil)

// KeyAttribute is the partition key of the weights table.
const KeyAttribute = "timestamp"

var (
	ErrEmptyTable = errors.New("table name cannot be empty")
	ErrMissingKey = errors.New("item has no timestamp attribute")
)

// Credentials is an optional static credentials trio for reaching the
// store. Either all three fields are set, or the zero value is given and
// the SDK default credential/region chain applies.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (c Credentials) isZero() bool {
	return c.AccessKeyID == "" && c.SecretAccessKey == "" && c.Region == ""
}

// DynamoClient implements Client against a DynamoDB table whose partition
// key is the formatted measurement timestamp.
type DynamoClient struct {
	table string
	db    *dynamodb.Client
}

func NewDynamoClient(ctx context.Context, table string, creds Credentials) (*DynamoClient, error) {
	if table == "" {
		return nil, ErrEmptyTable
	}

	var opts []func(*awsconfig.LoadOptions) error
	if !creds.isZero() {
		opts = append(opts,
			awsconfig.WithRegion(creds.Region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
			),
		)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &DynamoClient{
		table: table,
		db:    dynamodb.NewFromConfig(awsCfg),
	}, nil
}

func (dc *DynamoClient) Put(ctx context.Context, item Item) error {
	if _, ok := item[KeyAttribute]; !ok {
		return ErrMissingKey
	}

	if _, err := dc.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(dc.table),
		Item:      toAttributeValues(item),
	}); err != nil {
		return fmt.Errorf("put item into table %s: %w", dc.table, err)
	}

	log.Tracef("item [%s] stored in table %s", item[KeyAttribute].Value, dc.table)

	return nil
}

func (dc *DynamoClient) Delete(ctx context.Context, timestamp string) error {
	if _, err := dc.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(dc.table),
		Key: map[string]types.AttributeValue{
			KeyAttribute: &types.AttributeValueMemberS{Value: timestamp},
		},
	}); err != nil {
		return fmt.Errorf("delete item %s from table %s: %w", timestamp, dc.table, err)
	}

	log.Tracef("item [%s] deleted from table %s", timestamp, dc.table)

	return nil
}

func (dc *DynamoClient) ScanAll(ctx context.Context) ([]Item, error) {
	var items []Item
	var startKey map[string]types.AttributeValue
	for {
		out, err := dc.db.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(dc.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan table %s: %w", dc.table, err)
		}

		for _, raw := range out.Items {
			items = append(items, fromAttributeValues(raw))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	log.Tracef("scanned %d items from table %s", len(items), dc.table)

	return items, nil
}

func toAttributeValues(item Item) map[string]types.AttributeValue {
	av := make(map[string]types.AttributeValue, len(item))
	for name, attr := range item {
		switch attr.Kind {
		case KindNumber:
			av[name] = &types.AttributeValueMemberN{Value: attr.Value}
		default:
			av[name] = &types.AttributeValueMemberS{Value: attr.Value}
		}
	}
	return av
}

func fromAttributeValues(raw map[string]types.AttributeValue) Item {
	item := make(Item, len(raw))
	for name, av := range raw {
		switch v := av.(type) {
		case *types.AttributeValueMemberN:
			item[name] = NumberAttr(v.Value)
		case *types.AttributeValueMemberS:
			item[name] = StringAttr(v.Value)
		default:
			log.Warnf("attribute %s has unsupported type %T, skipped", name, av)
		}
	}
	return item
}
