package repository

import (
	"context"
	"strings"

	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultToolRulesTableName = "ferramenta_regras"

type toolRuleItem struct {
	Chave            string `dynamodbav:"chave"`
	FerramentaCodigo string `dynamodbav:"ferramenta_codigo"`
}

// ToolRulesDynamoRepository resolves suggested tools from the rules table.
//
// Table requirements:
//   - PK: chave (string, "produto#liga#tempera")
//
// An absent rule yields "", never an error: the suggestion is advisory and
// the board surfaces missing tools through the sem_ferramenta flag.

type ToolRulesDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IToolSuggester = (*ToolRulesDynamoRepository)(nil)

func NewToolRulesDynamoRepository(ddb *dynamodb.Client) *ToolRulesDynamoRepository {
	return &ToolRulesDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOOL_RULES_TABLE", defaultToolRulesTableName),
	}
}

func (r *ToolRulesDynamoRepository) Suggest(ctx context.Context, produto, liga, tempera string) (string, error) {
	chave := toolRuleKey(produto, liga, tempera)
	if chave == "" {
		return "", nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"chave": &types.AttributeValueMemberS{Value: chave},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it toolRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.FerramentaCodigo, nil
}

func toolRuleKey(produto, liga, tempera string) string {
	produto = strings.ToLower(strings.TrimSpace(produto))
	liga = strings.ToLower(strings.TrimSpace(liga))
	tempera = strings.ToLower(strings.TrimSpace(tempera))
	if produto == "" {
		return ""
	}
	return produto + "#" + liga + "#" + tempera
}
