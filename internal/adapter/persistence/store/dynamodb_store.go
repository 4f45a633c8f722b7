package store

import (
	"context"
	"time"

	"assessment_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutTableName = "checkout_state"

type checkoutStateItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	ExpiresAt int64  `dynamodbav:"expires_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoStore persists checkout state in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads also check expires_at.
type DynamoStore struct {
	ddb       dynamoAPI
	tableName string
	clock     interfaces.IClock
}

var _ interfaces.IKeyValueStore = (*DynamoStore)(nil)

// NewDynamoStore falls back to the checkout_state table when table is empty.
func NewDynamoStore(ddb *dynamodb.Client, table string, clock interfaces.IClock) *DynamoStore {
	if table == "" {
		table = defaultCheckoutTableName
	}
	return newDynamoStore(ddb, table, clock)
}

func newDynamoStore(ddb dynamoAPI, table string, clock interfaces.IClock) *DynamoStore {
	return &DynamoStore{ddb: ddb, tableName: table, clock: clock}
}

func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k, err := scopedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            itemKey(k),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it checkoutStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	if it.ExpiresAt > 0 && s.clock.Now().Unix() >= it.ExpiresAt {
		return nil, false, nil
	}
	return []byte(it.Value), true, nil
}

func (s *DynamoStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := scopedKey(ctx, key)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	it := checkoutStateItem{
		Key:       k,
		Value:     string(value),
		UpdatedAt: now.UTC().Format(time.RFC3339Nano),
	}
	if ttl > 0 {
		it.ExpiresAt = now.Add(ttl).Unix()
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		k, err := scopedKey(ctx, key)
		if err != nil {
			return err
		}
		if _, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       itemKey(k),
		}); err != nil {
			return err
		}
	}
	return nil
}

func itemKey(k string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: k},
	}
}
