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
	"github.com/google/uuid"
)

const (
	defaultJobAssignmentsTableName = "job_assignments"
	assignmentEmployeeIndexName    = "employee_id-index"

	activeKeyPrefix  = "active#"
	archiveKeyPrefix = "archive#"
)

type jobAssignmentItem struct {
	PK            string `dynamodbav:"pk"`
	ID            string `dynamodbav:"id"`
	WorkItemID    string `dynamodbav:"work_item_id"`
	EmployeeID    string `dynamodbav:"employee_id"`
	RoleOnJob     string `dynamodbav:"role_on_job"`
	Active        bool   `dynamodbav:"active"`
	AssignedAt    string `dynamodbav:"assigned_at"`
	DeactivatedAt string `dynamodbav:"deactivated_at,omitempty"`
}

// JobAssignmentDynamoRepository persists JobAssignment entities in DynamoDB.
//
// Table requirements:
//   - PK: pk (string)
//   - GSI1 (employee_id-index): employee_id
//
// The active row for a (work item, employee) pair lives under
// "active#<work_item_id>#<employee_id>", so the at-most-one-active invariant
// is a conditional put: two concurrent inserts cannot both win. Deactivation
// moves the row to an "archive#<uuid>" key in a single transaction, keeping
// history while freeing the pair for reassignment.
type JobAssignmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobAssignmentRepository = (*JobAssignmentDynamoRepository)(nil)

func NewJobAssignmentDynamoRepository(ddb *dynamodb.Client) *JobAssignmentDynamoRepository {
	return &JobAssignmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ASSIGNMENTS_TABLE", defaultJobAssignmentsTableName),
	}
}

func activePK(workItemID, employeeID string) string {
	return activeKeyPrefix + entities.AssignmentPairKey(workItemID, employeeID)
}

func (r *JobAssignmentDynamoRepository) Insert(ctx context.Context, a entities.JobAssignment) (entities.JobAssignment, error) {
	it := toJobAssignmentItem(a)
	it.PK = activePK(a.WorkItemID, a.EmployeeID)

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.JobAssignment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.JobAssignment{}, interfaces.ErrAssignmentPairTaken
		}
		return entities.JobAssignment{}, err
	}
	return a, nil
}

func (r *JobAssignmentDynamoRepository) GetActiveByWorkItemAndEmployee(ctx context.Context, workItemID, employeeID string) (entities.JobAssignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: activePK(workItemID, employeeID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobAssignment{}, nil
	}

	var it jobAssignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobAssignment{}, err
	}
	return fromJobAssignmentItem(it), nil
}

func (r *JobAssignmentDynamoRepository) ListActiveByEmployee(ctx context.Context, employeeID string) ([]entities.JobAssignment, error) {
	var (
		assignments []entities.JobAssignment
		startKey    map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(assignmentEmployeeIndexName),
			KeyConditionExpression: aws.String("#employee_id = :employee_id"),
			FilterExpression:       aws.String("#active = :active"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":employee_id": &types.AttributeValueMemberS{Value: employeeID},
				":active":      &types.AttributeValueMemberBOOL{Value: true},
			},
			ExpressionAttributeNames: map[string]string{
				"#employee_id": "employee_id",
				"#active":      "active",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []jobAssignmentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			assignments = append(assignments, fromJobAssignmentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return assignments, nil
}

func (r *JobAssignmentDynamoRepository) Deactivate(ctx context.Context, workItemID, employeeID string) (entities.JobAssignment, error) {
	current, err := r.GetActiveByWorkItemAndEmployee(ctx, workItemID, employeeID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if current.ID == "" {
		return entities.JobAssignment{}, nil
	}

	now := time.Now().UTC()
	archived := current
	archived.Active = false
	archived.DeactivatedAt = &now

	it := toJobAssignmentItem(archived)
	it.PK = archiveKeyPrefix + uuid.NewString()

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.JobAssignment{}, err
	}

	// Delete the active row and write the archive row atomically; the
	// condition loses to a concurrent unassign of the same pair.
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"pk": &types.AttributeValueMemberS{Value: activePK(workItemID, employeeID)},
					},
					ConditionExpression: aws.String("attribute_exists(#pk)"),
					ExpressionAttributeNames: map[string]string{
						"#pk": "pk",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.JobAssignment{}, nil
		}
		return entities.JobAssignment{}, err
	}
	return archived, nil
}

func toJobAssignmentItem(a entities.JobAssignment) jobAssignmentItem {
	it := jobAssignmentItem{
		ID:         a.ID,
		WorkItemID: a.WorkItemID,
		EmployeeID: a.EmployeeID,
		RoleOnJob:  a.RoleOnJob,
		Active:     a.Active,
		AssignedAt: formatTime(a.AssignedAt),
	}
	if a.DeactivatedAt != nil {
		it.DeactivatedAt = formatTime(*a.DeactivatedAt)
	}
	return it
}

func fromJobAssignmentItem(it jobAssignmentItem) entities.JobAssignment {
	a := entities.JobAssignment{
		ID:         it.ID,
		WorkItemID: it.WorkItemID,
		EmployeeID: it.EmployeeID,
		RoleOnJob:  it.RoleOnJob,
		Active:     it.Active,
		AssignedAt: parseTime(it.AssignedAt),
	}
	if it.DeactivatedAt != "" {
		t := parseTime(it.DeactivatedAt)
		a.DeactivatedAt = &t
	}
	return a
}
