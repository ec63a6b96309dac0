package repository

import (
	"context"
	"errors"
	"time"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkItemsTableName = "work_items"
	customerIndexName         = "customer_id-index"
)

type workItemItem struct {
	ID         string `dynamodbav:"id"`
	Title      string `dynamodbav:"title"`
	Type       string `dynamodbav:"type"`
	Status     string `dynamodbav:"status"`
	CustomerID string `dynamodbav:"customer_id"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// WorkItemDynamoRepository persists WorkItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (customer_id-index): customer_id
type WorkItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkItemRepository = (*WorkItemDynamoRepository)(nil)

func NewWorkItemDynamoRepository(ddb *dynamodb.Client) *WorkItemDynamoRepository {
	return &WorkItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ITEMS_TABLE", defaultWorkItemsTableName),
	}
}

func (r *WorkItemDynamoRepository) Create(ctx context.Context, w entities.WorkItem) (entities.WorkItem, error) {
	av, err := attributevalue.MarshalMap(toWorkItemItem(w))
	if err != nil {
		return entities.WorkItem{}, err
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
		return entities.WorkItem{}, err
	}
	return w, nil
}

func (r *WorkItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkItem{}, nil
	}

	var it workItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkItem{}, err
	}
	return fromWorkItemItem(it), nil
}

func (r *WorkItemDynamoRepository) UpdateStatus(ctx context.Context, id string, status string) (entities.WorkItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: status},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkItem{}, nil
		}
		return entities.WorkItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkItem{}, nil
	}

	var it workItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkItem{}, err
	}
	return fromWorkItemItem(it), nil
}

func (r *WorkItemDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.WorkItem, error) {
	var (
		items    []entities.WorkItem
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(customerIndexName),
			KeyConditionExpression: aws.String("#customer_id = :customer_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":customer_id": &types.AttributeValueMemberS{Value: customerID},
			},
			ExpressionAttributeNames: map[string]string{
				"#customer_id": "customer_id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []workItemItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			items = append(items, fromWorkItemItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// CountActive counts work items whose status is neither completed nor
// cancelled. Statuses are stored normalized lowercase, so the filter compares
// exact values.
func (r *WorkItemDynamoRepository) CountActive(ctx context.Context) (int, error) {
	var (
		count    int
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("NOT (#status IN (:completed, :cancelled))"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":completed": &types.AttributeValueMemberS{Value: entities.WorkItemStatusCompleted},
				":cancelled": &types.AttributeValueMemberS{Value: entities.WorkItemStatusCancelled},
			},
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		count += int(out.Count)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}

func toWorkItemItem(w entities.WorkItem) workItemItem {
	return workItemItem{
		ID:         w.ID,
		Title:      w.Title,
		Type:       string(w.Type),
		Status:     entities.NormalizeWorkItemStatus(w.Status),
		CustomerID: w.CustomerID,
		CreatedAt:  formatTime(w.CreatedAt),
		UpdatedAt:  formatTime(w.UpdatedAt),
	}
}

func fromWorkItemItem(it workItemItem) entities.WorkItem {
	return entities.WorkItem{
		ID:         it.ID,
		Title:      it.Title,
		Type:       entities.WorkItemType(it.Type),
		Status:     it.Status,
		CustomerID: it.CustomerID,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
