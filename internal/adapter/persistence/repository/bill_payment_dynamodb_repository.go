package repository

import (
	"context"
	"strconv"
	"time"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillPaymentsTableName = "bill_payments"
	billPaymentsRequestIndex     = "service_request_id-index"
)

type billPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ServiceRequestID   int64                  `dynamodbav:"service_request_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BillPaymentDynamoRepository persists BillPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_request_id-index (PK: service_request_id)

type BillPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillPaymentRepository = (*BillPaymentDynamoRepository)(nil)

func NewBillPaymentDynamoRepository(ddb *dynamodb.Client) *BillPaymentDynamoRepository {
	return &BillPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("BILL_PAYMENTS_TABLE", defaultBillPaymentsTableName),
	}
}

func (r *BillPaymentDynamoRepository) Create(ctx context.Context, p entities.BillPayment) (entities.BillPayment, error) {
	av, err := attributevalue.MarshalMap(toBillPaymentItem(p))
	if err != nil {
		return entities.BillPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BillPayment{}, err
	}
	return p, nil
}

func (r *BillPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillPayment{}, nil
	}

	var it billPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillPayment{}, err
	}
	return fromBillPaymentItem(it), nil
}

func (r *BillPaymentDynamoRepository) ListByServiceRequest(ctx context.Context, serviceRequestID int64) ([]entities.BillPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billPaymentsRequestIndex),
		KeyConditionExpression: aws.String("#rid = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "service_request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberN{Value: strconv.FormatInt(serviceRequestID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.BillPayment, 0, len(out.Items))
	for _, item := range out.Items {
		var it billPaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromBillPaymentItem(it))
	}
	return payments, nil
}

func toBillPaymentItem(p entities.BillPayment) billPaymentItem {
	return billPaymentItem{
		ID:                 p.ID,
		ServiceRequestID:   p.ServiceRequestID,
		Amount:             p.Amount,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromBillPaymentItem(it billPaymentItem) entities.BillPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.BillPayment{
		ID:               it.ID,
		ServiceRequestID: it.ServiceRequestID,
		Amount:           it.Amount,
		Date:             date,
		Status:           entities.PaymentStatus(it.Status),
		ProviderPayload:  it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
