package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSequenceTableName = "sequenciamento"
	sequenceDataIndex        = "data-index"

	// TransactWriteItems hard limit.
	maxTransactItems = 100
)

type sequenceItem struct {
	ID               string            `dynamodbav:"id"`
	Codigo           string            `dynamodbav:"codigo"`
	OPTotvsCodigo    string            `dynamodbav:"op_totvs_codigo"`
	Produto          string            `dynamodbav:"produto"`
	Liga             string            `dynamodbav:"liga"`
	Tempera          string            `dynamodbav:"tempera"`
	QuantidadeKg     string            `dynamodbav:"quantidade_kg"`
	TipoPosse        string            `dynamodbav:"tipo_posse"`
	Cliente          string            `dynamodbav:"cliente,omitempty"`
	Data             string            `dynamodbav:"data"`
	DataEntrega      string            `dynamodbav:"data_entrega"`
	Posicao          int               `dynamodbav:"posicao"`
	FerramentaCodigo string            `dynamodbav:"ferramenta_codigo,omitempty"`
	Status           string            `dynamodbav:"status"`
	StatusDetalhado  string            `dynamodbav:"status_detalhado,omitempty"`
	Etapas           map[string]string `dynamodbav:"etapas,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// SequenceDynamoRepository persists the committed day sequences in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: data-index (PK: data)
//
// The GSI has no range key; ordering comes from the posicao attribute and is
// restored in memory after the query.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCE_TABLE", defaultSequenceTableName),
	}
}

func (r *SequenceDynamoRepository) ListByData(ctx context.Context, data string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sequenceDataIndex),
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

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it sequenceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromSequenceItem(it))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Posicao < orders[j].Posicao })
	return orders, nil
}

func (r *SequenceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it sequenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromSequenceItem(it), nil
}

func (r *SequenceDynamoRepository) Append(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toSequenceItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

// ReplaceSequence rewrites every order of the date with its new posicao in a
// single TransactWriteItems call, so a failed reorder never leaves the date
// with mixed old and new positions. The set of ids is unchanged by a reorder,
// so plain overwrites suffice. DynamoDB caps a transaction at 100 items; a
// day sequence stays far below that, and larger inputs fall back to chunked
// transactions where only the chunk boundary keeps a partial-rewrite window.
func (r *SequenceDynamoRepository) ReplaceSequence(ctx context.Context, data string, orders []entities.Order) error {
	now := time.Now().UTC()
	items := make([]types.TransactWriteItem, 0, len(orders))
	for i, o := range orders {
		o.Data = data
		o.Posicao = i
		o.UpdatedAt = now
		av, err := attributevalue.MarshalMap(toSequenceItem(o))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
		})
	}

	for len(items) > 0 {
		batch := items
		if len(batch) > maxTransactItems {
			batch = items[:maxTransactItems]
		}
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: batch,
		}); err != nil {
			return err
		}
		items = items[len(batch):]
	}
	return nil
}

func (r *SequenceDynamoRepository) UpdateEdit(ctx context.Context, id string, quantidadeKg float64, ferramentaCodigo string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #quantidade_kg = :quantidade_kg, #ferramenta_codigo = :ferramenta_codigo, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#quantidade_kg":     "quantidade_kg",
			"#ferramenta_codigo": "ferramenta_codigo",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quantidade_kg":     &types.AttributeValueMemberS{Value: floatToString(quantidadeKg)},
			":ferramenta_codigo": &types.AttributeValueMemberS{Value: ferramentaCodigo},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it sequenceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromSequenceItem(it), nil
}

func toSequenceItem(o entities.Order) sequenceItem {
	var etapas map[string]string
	if len(o.Etapas) > 0 {
		etapas = make(map[string]string, len(o.Etapas))
		for k, v := range o.Etapas {
			etapas[string(k)] = string(v)
		}
	}
	return sequenceItem{
		ID:               o.ID,
		Codigo:           o.Codigo,
		OPTotvsCodigo:    o.OPTotvsCodigo,
		Produto:          o.Produto,
		Liga:             o.Liga,
		Tempera:          o.Tempera,
		QuantidadeKg:     floatToString(o.QuantidadeKg),
		TipoPosse:        string(o.TipoPosse),
		Cliente:          o.Cliente,
		Data:             o.Data,
		DataEntrega:      o.DataEntrega.UTC().Format(time.RFC3339Nano),
		Posicao:          o.Posicao,
		FerramentaCodigo: o.FerramentaCodigo,
		Status:           string(o.Status),
		StatusDetalhado:  o.StatusDetalhado,
		Etapas:           etapas,
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSequenceItem(it sequenceItem) entities.Order {
	quantidade, _ := strconv.ParseFloat(it.QuantidadeKg, 64)
	dataEntrega, _ := time.Parse(time.RFC3339Nano, it.DataEntrega)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var etapas map[entities.Etapa]entities.EtapaStatus
	if len(it.Etapas) > 0 {
		etapas = make(map[entities.Etapa]entities.EtapaStatus, len(it.Etapas))
		for k, v := range it.Etapas {
			etapas[entities.Etapa(k)] = entities.EtapaStatus(v)
		}
	}

	return entities.Order{
		ID:               it.ID,
		Codigo:           it.Codigo,
		OPTotvsCodigo:    it.OPTotvsCodigo,
		Produto:          it.Produto,
		Liga:             it.Liga,
		Tempera:          it.Tempera,
		QuantidadeKg:     quantidade,
		TipoPosse:        entities.TipoPosse(it.TipoPosse),
		Cliente:          it.Cliente,
		Data:             it.Data,
		DataEntrega:      dataEntrega,
		Posicao:          it.Posicao,
		FerramentaCodigo: it.FerramentaCodigo,
		Status:           entities.OrderStatus(it.Status),
		StatusDetalhado:  it.StatusDetalhado,
		Etapas:           etapas,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
