package repository

import (
	"context"
	"encoding/json"
	"time"

	"salesease/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRecordsTableName = "records"

type recordItem struct {
	Key       string `dynamodbav:"record_key"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RecordDynamoRepository persists the session records in DynamoDB as opaque
// JSON payloads.
//
// Table requirements:
//   - PK: record_key (string)
//
// Every Save is a blind full-record put: there is a single writer, so
// last-write-wins is the intended semantics.

type RecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecordStore = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb *dynamodb.Client) *RecordDynamoRepository {
	return &RecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (r *RecordDynamoRepository) Load(ctx context.Context, key string) (json.RawMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"record_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return json.RawMessage(it.Payload), nil
}

func (r *RecordDynamoRepository) Save(ctx context.Context, key string, payload json.RawMessage) error {
	it := recordItem{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
