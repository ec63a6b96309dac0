package repository

import (
	"context"
	"time"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultTimeLogsTableName = "time_logs"
	timeLogEmployeeIndexName = "employee_id-index"
)

type timeLogItem struct {
	ID         string `dynamodbav:"id"`
	EmployeeID string `dynamodbav:"employee_id"`
	Date       string `dynamodbav:"date"`
	Minutes    string `dynamodbav:"minutes"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// TimeLogDynamoRepository persists TimeLogEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (employee_id-index): employee_id, sort key date (YYYY-MM-DD)
//
// Minutes are stored as decimal strings; aggregation happens client-side so
// the sum keeps exact decimal semantics.
type TimeLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeLogRepository = (*TimeLogDynamoRepository)(nil)

func NewTimeLogDynamoRepository(ddb *dynamodb.Client) *TimeLogDynamoRepository {
	return &TimeLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_LOGS_TABLE", defaultTimeLogsTableName),
	}
}

func (r *TimeLogDynamoRepository) Insert(ctx context.Context, e entities.TimeLogEntry) (entities.TimeLogEntry, error) {
	av, err := attributevalue.MarshalMap(toTimeLogItem(e))
	if err != nil {
		return entities.TimeLogEntry{}, err
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
		return entities.TimeLogEntry{}, err
	}
	return e, nil
}

func (r *TimeLogDynamoRepository) SumMinutes(ctx context.Context, employeeID string, startInclusive, endExclusive time.Time) (decimal.NullDecimal, error) {
	entries, err := r.ListByEmployee(ctx, employeeID, startInclusive, endExclusive)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	if len(entries) == 0 {
		return decimal.NullDecimal{}, nil
	}

	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Minutes)
	}
	return decimal.NewNullDecimal(sum), nil
}

func (r *TimeLogDynamoRepository) ListByEmployee(ctx context.Context, employeeID string, startInclusive, endExclusive time.Time) ([]entities.TimeLogEntry, error) {
	// Dates are day-granular, so the exclusive end maps to an inclusive
	// BETWEEN upper bound of the previous day.
	start := startInclusive.Format(entities.TimeLogDateFormat)
	end := endExclusive.AddDate(0, 0, -1).Format(entities.TimeLogDateFormat)

	var (
		entries  []entities.TimeLogEntry
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(timeLogEmployeeIndexName),
			KeyConditionExpression: aws.String("#employee_id = :employee_id AND #date BETWEEN :start AND :end"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":employee_id": &types.AttributeValueMemberS{Value: employeeID},
				":start":       &types.AttributeValueMemberS{Value: start},
				":end":         &types.AttributeValueMemberS{Value: end},
			},
			ExpressionAttributeNames: map[string]string{
				"#employee_id": "employee_id",
				"#date":        "date",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []timeLogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			e, err := fromTimeLogItem(it)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func toTimeLogItem(e entities.TimeLogEntry) timeLogItem {
	return timeLogItem{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format(entities.TimeLogDateFormat),
		Minutes:    e.Minutes.String(),
		CreatedAt:  formatTime(e.CreatedAt),
	}
}

func fromTimeLogItem(it timeLogItem) (entities.TimeLogEntry, error) {
	minutes, err := decimal.NewFromString(it.Minutes)
	if err != nil {
		return entities.TimeLogEntry{}, err
	}
	date, _ := time.Parse(entities.TimeLogDateFormat, it.Date)
	return entities.TimeLogEntry{
		ID:         it.ID,
		EmployeeID: it.EmployeeID,
		Date:       date,
		Minutes:    minutes,
		CreatedAt:  parseTime(it.CreatedAt),
	}, nil
}
