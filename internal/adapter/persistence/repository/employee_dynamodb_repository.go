package repository

import (
	"context"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEmployeesTableName = "employees"

type employeeItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	Department string `dynamodbav:"department,omitempty"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// EmployeeDynamoRepository persists Employee entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
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
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	var (
		employees []entities.Employee
		startKey  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []employeeItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			employees = append(employees, fromEmployeeItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return employees, nil
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Status:     string(e.Status),
		CreatedAt:  formatTime(e.CreatedAt),
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:         it.ID,
		Name:       it.Name,
		Email:      it.Email,
		Department: it.Department,
		Status:     entities.EmployeeStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
