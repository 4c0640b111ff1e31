package repository

import (
	"context"
	"encoding/json"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	settingsItemID           = "default"
)

type settingsItem struct {
	ID           string `dynamodbav:"id"`
	SettingsJSON string `dynamodbav:"settings_json"`
}

// SettingsDynamoRepository persists the single settings aggregate. The
// whole aggregate is stored as one JSON blob under a fixed key; settings
// are read as an immutable snapshot per request.
type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// Get returns the stored settings, or the defaults when none exist yet.
func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultSettings(), nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, err
	}

	var s entities.Settings
	if err := json.Unmarshal([]byte(it.SettingsJSON), &s); err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return entities.Settings{}, err
	}
	av, err := attributevalue.MarshalMap(settingsItem{ID: settingsItemID, SettingsJSON: string(b)})
	if err != nil {
		return entities.Settings{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
