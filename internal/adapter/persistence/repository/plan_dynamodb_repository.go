package repository

import (
	"context"
	"strconv"
	"time"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "plans"

type planItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	Price     string   `dynamodbav:"price"`
	Features  []string `dynamodbav:"features,omitempty"`
	Active    bool     `dynamodbav:"active"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// PlanDynamoRepository reads the healthcare-plan catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The checkout never writes plans; catalog administration lives outside this
// service.

type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) ListActive(ctx context.Context) ([]entities.Plan, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#active = :active"),
		ExpressionAttributeNames:  map[string]string{"#active": "active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}},
	})
	if err != nil {
		return nil, err
	}

	plans := make([]entities.Plan, 0, len(out.Items))
	for _, item := range out.Items {
		var it planItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		plans = append(plans, fromPlanItem(it))
	}
	return plans, nil
}

func fromPlanItem(it planItem) entities.Plan {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Plan{
		ID:        it.ID,
		Name:      it.Name,
		Price:     price,
		Features:  it.Features,
		Active:    it.Active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
