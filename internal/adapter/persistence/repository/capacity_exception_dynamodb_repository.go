package repository

import (
	"context"
	"strconv"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCapacityExceptionTableName = "capacidade_excecoes"

type capacityExceptionItem struct {
	Data       string `dynamodbav:"data"`
	CasaCap    string `dynamodbav:"casa_cap"`
	ClienteCap string `dynamodbav:"cliente_cap"`
	Motivo     string `dynamodbav:"motivo,omitempty"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CapacityExceptionDynamoRepository persists per-date ceiling overrides.
//
// Table requirements:
//   - PK: data (YYYY-MM-DD string)
//
// Put is an upsert: one override per date, the latest write wins.

type CapacityExceptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICapacityExceptionRepository = (*CapacityExceptionDynamoRepository)(nil)

func NewCapacityExceptionDynamoRepository(ddb *dynamodb.Client) *CapacityExceptionDynamoRepository {
	return &CapacityExceptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CAPACITY_EXCEPTIONS_TABLE", defaultCapacityExceptionTableName),
	}
}

func (r *CapacityExceptionDynamoRepository) GetByData(ctx context.Context, data string) (entities.CapacityException, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"data": &types.AttributeValueMemberS{Value: data},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CapacityException{}, err
	}
	if len(out.Item) == 0 {
		return entities.CapacityException{}, nil
	}

	var it capacityExceptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CapacityException{}, err
	}

	casaCap, _ := strconv.ParseFloat(it.CasaCap, 64)
	clienteCap, _ := strconv.ParseFloat(it.ClienteCap, 64)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CapacityException{
		Data:       it.Data,
		CasaCap:    casaCap,
		ClienteCap: clienteCap,
		Motivo:     it.Motivo,
		UpdatedAt:  updatedAt,
	}, nil
}

func (r *CapacityExceptionDynamoRepository) Put(ctx context.Context, e entities.CapacityException) (entities.CapacityException, error) {
	av, err := attributevalue.MarshalMap(capacityExceptionItem{
		Data:       e.Data,
		CasaCap:    floatToString(e.CasaCap),
		ClienteCap: floatToString(e.ClienteCap),
		Motivo:     e.Motivo,
		UpdatedAt:  e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.CapacityException{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CapacityException{}, err
	}
	return e, nil
}
