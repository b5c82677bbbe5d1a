package repository

import (
	"context"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJustificationTableName = "justificativas"
	justificationDataIndex        = "data-index"
)

type justificationItem struct {
	ID            string `dynamodbav:"id"`
	Data          string `dynamodbav:"data"`
	OrdemID       string `dynamodbav:"ordem_id"`
	DeIndice      int    `dynamodbav:"de_indice"`
	ParaIndice    int    `dynamodbav:"para_indice"`
	Justificativa string `dynamodbav:"justificativa,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// JustificationDynamoRepository persists reorder justification records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: data-index (PK: data)
//
// Records are append-only: the audit trail is never updated or deleted by
// the service.

type JustificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJustificationRepository = (*JustificationDynamoRepository)(nil)

func NewJustificationDynamoRepository(ddb *dynamodb.Client) *JustificationDynamoRepository {
	return &JustificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JUSTIFICATIONS_TABLE", defaultJustificationTableName),
	}
}

func (r *JustificationDynamoRepository) Create(ctx context.Context, j entities.ReorderJustification) (entities.ReorderJustification, error) {
	av, err := attributevalue.MarshalMap(justificationItem{
		ID:            j.ID,
		Data:          j.Data,
		OrdemID:       j.OrdemID,
		DeIndice:      j.DeIndice,
		ParaIndice:    j.ParaIndice,
		Justificativa: j.Justificativa,
		CreatedAt:     j.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.ReorderJustification{}, err
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
		return entities.ReorderJustification{}, err
	}
	return j, nil
}

func (r *JustificationDynamoRepository) ListByData(ctx context.Context, data string) ([]entities.ReorderJustification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(justificationDataIndex),
		KeyConditionExpression: aws.String("#data = :data"),
		ExpressionAttributeNames: map[string]string{
			"#data": "data",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":data": &types.AttributeValueMemberS{Value: data},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ReorderJustification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it justificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		records = append(records, entities.ReorderJustification{
			ID:            it.ID,
			Data:          it.Data,
			OrdemID:       it.OrdemID,
			DeIndice:      it.DeIndice,
			ParaIndice:    it.ParaIndice,
			Justificativa: it.Justificativa,
			CreatedAt:     createdAt,
		})
	}
	return records, nil
}
