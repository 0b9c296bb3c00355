package repository

import (
	"context"
	"errors"
	"time"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/notification"
	"estimate_request_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultNotificationsTableName = "notifications"
	notificationsUserIndex        = "user_id-index"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type notificationItem struct {
	ID        string         `dynamodbav:"id"`
	UserID    uint           `dynamodbav:"user_id"`
	Type      string         `dynamodbav:"type"`
	Data      map[string]any `dynamodbav:"data"`
	ReadAt    string         `dynamodbav:"read_at,omitempty"`
	CreatedAt string         `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists in-app notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK user_id number, SK created_at string)

type NotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var (
	_ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)
	_ notification.Store                 = (*NotificationDynamoRepository)(nil)
)

func NewNotificationDynamoRepository(ddb DynamoDBAPI, tableName string) *NotificationDynamoRepository {
	if tableName == "" {
		tableName = DefaultNotificationsTableName
	}
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Save(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
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

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
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

// ListByUserID returns the user's notifications, newest first.
func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID uint) ([]entities.Notification, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberN{Value: uintToString(userID)},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var result []entities.Notification
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromNotificationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return result, nil
}

// MarkAsRead stamps read_at once. It reports false when the item is missing
// or was already read.
func (r *NotificationDynamoRepository) MarkAsRead(ctx context.Context, id string, at time.Time) (bool, error) {
	names := map[string]string{
		"#read_at": "read_at",
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#read_at)"),
		UpdateExpression:    aws.String("SET #read_at = :read_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueNone,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	it := notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Data:      n.Data,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if n.ReadAt != nil {
		it.ReadAt = n.ReadAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	n := entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      it.Type,
		Data:      it.Data,
		CreatedAt: createdAt,
	}
	if it.ReadAt != "" {
		if readAt, err := time.Parse(time.RFC3339Nano, it.ReadAt); err == nil {
			n.ReadAt = &readAt
		}
	}
	return n
}
