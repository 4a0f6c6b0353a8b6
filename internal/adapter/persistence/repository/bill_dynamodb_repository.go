package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillsTableName = "bills"

type billItem struct {
	ServiceRequestID int64   `dynamodbav:"service_request_id"`
	BillID           int64   `dynamodbav:"bill_id"`
	FileName         string  `dynamodbav:"file_name"`
	ContentType      string  `dynamodbav:"content_type"`
	StorageKey       string  `dynamodbav:"storage_key"`
	Amount           float64 `dynamodbav:"amount"`
	UploadedAt       string  `dynamodbav:"uploaded_at"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: service_request_id (number)
//
// We purposely use the owning request id as PK to guarantee one bill per
// request; the conditional put makes the attach-once rule hold even when two
// uploads race.

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	it := toBillItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Bill{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "service_request_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bill{}, nil
		}
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByServiceRequest(ctx context.Context, serviceRequestID int64) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_request_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(serviceRequestID, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) DeleteByServiceRequest(ctx context.Context, serviceRequestID int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_request_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(serviceRequestID, 10)},
		},
	})
	return err
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ServiceRequestID: b.ServiceRequestID,
		BillID:           b.BillID,
		FileName:         b.FileName,
		ContentType:      b.ContentType,
		StorageKey:       b.StorageKey,
		Amount:           b.Amount,
		UploadedAt:       b.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillItem(it billItem) entities.Bill {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.Bill{
		BillID:           it.BillID,
		ServiceRequestID: it.ServiceRequestID,
		FileName:         it.FileName,
		ContentType:      it.ContentType,
		StorageKey:       it.StorageKey,
		Amount:           it.Amount,
		UploadedAt:       uploadedAt,
	}
}
