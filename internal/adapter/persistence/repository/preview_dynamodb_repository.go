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

const (
	defaultPreviewTableName = "preview"
	previewDataIndex        = "data-index"
)

type previewItemRecord struct {
	ID                 string `dynamodbav:"id"`
	Data               string `dynamodbav:"data"`
	OPTotvsCodigo      string `dynamodbav:"op_totvs_codigo"`
	Produto            string `dynamodbav:"produto"`
	Liga               string `dynamodbav:"liga"`
	Tempera            string `dynamodbav:"tempera"`
	QuantidadeKg       string `dynamodbav:"quantidade_kg"`
	TipoPosse          string `dynamodbav:"tipo_posse"`
	Cliente            string `dynamodbav:"cliente,omitempty"`
	DataEntrega        string `dynamodbav:"data_entrega"`
	FerramentaSugerida string `dynamodbav:"ferramenta_sugerida,omitempty"`
	FerramentaManual   string `dynamodbav:"ferramenta_manual,omitempty"`
	SemFerramenta      bool   `dynamodbav:"sem_ferramenta"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PreviewDynamoRepository persists staged preview items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: data-index (PK: data)
//
// Put is an unconditional overwrite: staging merges repeat imports and item
// patches through the same write path.

type PreviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPreviewRepository = (*PreviewDynamoRepository)(nil)

func NewPreviewDynamoRepository(ddb *dynamodb.Client) *PreviewDynamoRepository {
	return &PreviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PREVIEW_TABLE", defaultPreviewTableName),
	}
}

func (r *PreviewDynamoRepository) ListByData(ctx context.Context, data string) ([]entities.PreviewItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(previewDataIndex),
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

	items := make([]entities.PreviewItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec previewItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromPreviewRecord(rec))
	}
	return items, nil
}

func (r *PreviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.PreviewItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PreviewItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.PreviewItem{}, nil
	}

	var rec previewItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.PreviewItem{}, err
	}
	return fromPreviewRecord(rec), nil
}

func (r *PreviewDynamoRepository) Put(ctx context.Context, item entities.PreviewItem) (entities.PreviewItem, error) {
	av, err := attributevalue.MarshalMap(toPreviewRecord(item))
	if err != nil {
		return entities.PreviewItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PreviewItem{}, err
	}
	return item, nil
}

func (r *PreviewDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPreviewRecord(p entities.PreviewItem) previewItemRecord {
	return previewItemRecord{
		ID:                 p.ID,
		Data:               p.Data,
		OPTotvsCodigo:      p.OPTotvsCodigo,
		Produto:            p.Produto,
		Liga:               p.Liga,
		Tempera:            p.Tempera,
		QuantidadeKg:       floatToString(p.QuantidadeKg),
		TipoPosse:          string(p.TipoPosse),
		Cliente:            p.Cliente,
		DataEntrega:        p.DataEntrega.UTC().Format(time.RFC3339Nano),
		FerramentaSugerida: p.FerramentaSugerida,
		FerramentaManual:   p.FerramentaManual,
		SemFerramenta:      p.SemFerramenta,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPreviewRecord(rec previewItemRecord) entities.PreviewItem {
	quantidade, _ := strconv.ParseFloat(rec.QuantidadeKg, 64)
	dataEntrega, _ := time.Parse(time.RFC3339Nano, rec.DataEntrega)
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.PreviewItem{
		ID:                 rec.ID,
		Data:               rec.Data,
		OPTotvsCodigo:      rec.OPTotvsCodigo,
		Produto:            rec.Produto,
		Liga:               rec.Liga,
		Tempera:            rec.Tempera,
		QuantidadeKg:       quantidade,
		TipoPosse:          entities.TipoPosse(rec.TipoPosse),
		Cliente:            rec.Cliente,
		DataEntrega:        dataEntrega,
		FerramentaSugerida: rec.FerramentaSugerida,
		FerramentaManual:   rec.FerramentaManual,
		SemFerramenta:      rec.SemFerramenta,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
