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
	defaultNotificationsTableName = "notifications"
	notificationsUserIndex        = "user_id-index"
	notificationsRequestIndex     = "service_request_id-index"
)

type notificationItem struct {
	ID               int64  `dynamodbav:"id"`
	ServiceRequestID int64  `dynamodbav:"service_request_id"`
	UserID           string `dynamodbav:"user_id"`
	Title            string `dynamodbav:"title"`
	Message          string `dynamodbav:"message"`
	IsRead           bool   `dynamodbav:"is_read"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: service_request_id-index (PK: service_request_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	it := toNotificationItem(n)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("#uid = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	notifs, err := unmarshalNotifications(out.Items)
	if err != nil {
		return nil, err
	}
	// Newest first for the inbox view.
	sort.Slice(notifs, func(i, j int) bool { return notifs[i].CreatedAt.After(notifs[j].CreatedAt) })
	return notifs, nil
}

func (r *NotificationDynamoRepository) ListByServiceRequest(ctx context.Context, serviceRequestID int64) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRequestIndex),
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
	notifs, err := unmarshalNotifications(out.Items)
	if err != nil {
		return nil, err
	}
	// Append order: the aggregate exposes notifications oldest first.
	sort.Slice(notifs, func(i, j int) bool { return notifs[i].CreatedAt.Before(notifs[j].CreatedAt) })
	return notifs, nil
}

func (r *NotificationDynamoRepository) SetRead(ctx context.Context, id int64, isRead bool) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_read = :is_read"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_read": "is_read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_read": &types.AttributeValueMemberBOOL{Value: isRead},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) DeleteByServiceRequest(ctx context.Context, serviceRequestID int64) error {
	notifs, err := r.ListByServiceRequest(ctx, serviceRequestID)
	if err != nil {
		return err
	}
	for _, n := range notifs {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(n.ID, 10)},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func unmarshalNotifications(items []map[string]types.AttributeValue) ([]entities.Notification, error) {
	out := make([]entities.Notification, 0, len(items))
	for _, item := range items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromNotificationItem(it))
	}
	return out, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:               n.ID,
		ServiceRequestID: n.ServiceRequestID,
		UserID:           n.UserID,
		Title:            n.Title,
		Message:          n.Message,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Notification{
		ID:               it.ID,
		ServiceRequestID: it.ServiceRequestID,
		UserID:           it.UserID,
		Title:            it.Title,
		Message:          it.Message,
		IsRead:           it.IsRead,
		CreatedAt:        createdAt,
	}
}
