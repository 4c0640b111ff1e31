package repository

import (
	"context"
	"sort"
	"strconv"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricesTableName = "prices"

type priceItemRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Unit      string `dynamodbav:"unit"`
}

// PriceDynamoRepository persists the price catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceRepository = (*PriceDynamoRepository)(nil)

func NewPriceDynamoRepository(ddb *dynamodb.Client) *PriceDynamoRepository {
	return &PriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICES_TABLE", defaultPricesTableName),
	}
}

func (r *PriceDynamoRepository) List(ctx context.Context) ([]entities.PriceItem, error) {
	items := []entities.PriceItem{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var rec priceItemRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, err
			}
			items = append(items, fromPriceRecord(rec))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *PriceDynamoRepository) Put(ctx context.Context, item entities.PriceItem) (entities.PriceItem, error) {
	av, err := attributevalue.MarshalMap(toPriceRecord(item))
	if err != nil {
		return entities.PriceItem{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PriceItem{}, err
	}
	return item, nil
}

func (r *PriceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPriceRecord(p entities.PriceItem) priceItemRecord {
	return priceItemRecord{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: floatToString(p.UnitPrice),
		Unit:      string(p.Unit),
	}
}

func fromPriceRecord(rec priceItemRecord) entities.PriceItem {
	unitPrice, _ := strconv.ParseFloat(rec.UnitPrice, 64)
	return entities.PriceItem{
		ID:        rec.ID,
		Name:      rec.Name,
		UnitPrice: unitPrice,
		Unit:      entities.Unit(rec.Unit),
	}
}
