package repository

import (
	"context"
	"errors"
	"sort"
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
	defaultServiceRequestsTableName = "service_requests"
	serviceRequestsCustomerIndex    = "customer_user_id-index"
)

type serviceRequestItem struct {
	ID                    int64  `dynamodbav:"id"`
	CustomerUserID        string `dynamodbav:"customer_user_id"`
	VehicleID             int64  `dynamodbav:"vehicle_id"`
	ProblemDescription    string `dynamodbav:"problem_description"`
	ServiceAddress        string `dynamodbav:"service_address"`
	ServiceDate           string `dynamodbav:"service_date"`
	Status                string `dynamodbav:"status"`
	EstimatedDeliveryDate string `dynamodbav:"estimated_delivery_date,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: customer_user_id-index (PK: customer_user_id)
//
// Status writes are conditional on the expected current status so that two
// concurrent transitions on the same request can never both succeed; the
// loser observes the conditional failure and is returned the zero value.

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	it := toServiceRequestItem(sr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) ListByCustomer(ctx context.Context, customerUserID string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceRequestsCustomerIndex),
		KeyConditionExpression: aws.String("#cid = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "customer_user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerUserID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServiceRequests(out.Items)
}

func (r *ServiceRequestDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalServiceRequests(items)
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id int64, expected, next entities.ServiceStatus) (entities.ServiceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":status":     &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	return unmarshalServiceRequestAttributes(out.Attributes)
}

func (r *ServiceRequestDynamoRepository) UpdateEstimatedDelivery(ctx context.Context, id int64, etd time.Time) (entities.ServiceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #etd = :etd, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#etd":        "estimated_delivery_date",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":etd":        &types.AttributeValueMemberS{Value: etd.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	return unmarshalServiceRequestAttributes(out.Attributes)
}

func (r *ServiceRequestDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	return err
}

func unmarshalServiceRequests(items []map[string]types.AttributeValue) ([]entities.ServiceRequest, error) {
	out := make([]entities.ServiceRequest, 0, len(items))
	for _, item := range items {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServiceRequestItem(it))
	}
	// Newest first, matching the listing contract.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func unmarshalServiceRequestAttributes(attrs map[string]types.AttributeValue) (entities.ServiceRequest, error) {
	if len(attrs) == 0 {
		return entities.ServiceRequest{}, nil
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:                 sr.ID,
		CustomerUserID:     sr.CustomerUserID,
		VehicleID:          sr.VehicleID,
		ProblemDescription: sr.ProblemDescription,
		ServiceAddress:     sr.ServiceAddress,
		ServiceDate:        sr.ServiceDate.UTC().Format(time.RFC3339Nano),
		Status:             string(sr.Status),
		CreatedAt:          sr.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          sr.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if sr.EstimatedDeliveryDate != nil {
		it.EstimatedDeliveryDate = sr.EstimatedDeliveryDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	serviceDate, _ := time.Parse(time.RFC3339Nano, it.ServiceDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	sr := entities.ServiceRequest{
		ID:                 it.ID,
		CustomerUserID:     it.CustomerUserID,
		VehicleID:          it.VehicleID,
		ProblemDescription: it.ProblemDescription,
		ServiceAddress:     it.ServiceAddress,
		ServiceDate:        serviceDate,
		Status:             entities.ServiceStatus(it.Status),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.EstimatedDeliveryDate != "" {
		if etd, err := time.Parse(time.RFC3339Nano, it.EstimatedDeliveryDate); err == nil {
			sr.EstimatedDeliveryDate = &etd
		}
	}
	return sr
}
