package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotesByCustomerIndex = "customer_id-index"

type quoteItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	CustomerName  string `dynamodbav:"customer_name"`
	Price         string `dynamodbav:"price"`
	Volume        string `dynamodbav:"volume"`
	Distance      string `dynamodbav:"distance"`
	Status        string `dynamodbav:"status"`
	Version       int    `dynamodbav:"version"`
	ParentQuoteID string `dynamodbav:"parent_quote_id,omitempty"`
	Details       string `dynamodbav:"details"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index: PK customer_id (string)
//
// The survey details are stored as a JSON blob next to the snapshotted
// price, so a quote can be rendered later exactly as it was priced.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quotesByCustomerIndex),
			KeyConditionExpression: aws.String("#customer_id = :customer_id"),
			ExpressionAttributeNames: map[string]string{
				"#customer_id": "customer_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":customer_id": &types.AttributeValueMemberS{Value: customerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			q, err := fromQuoteItem(it)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdatePriceByID(ctx context.Context, id string, newPrice float64) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #price = :price, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":price":      &types.AttributeValueMemberS{Value: floatToString(newPrice)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#price":      "price",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	details, err := json.Marshal(q.Details)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		CustomerName:  q.CustomerName,
		Price:         floatToString(q.Price),
		Volume:        floatToString(q.Volume),
		Distance:      floatToString(q.Distance),
		Status:        string(q.Status),
		Version:       q.Version,
		ParentQuoteID: q.ParentQuoteID,
		Details:       string(details),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var details entities.QuoteDetails
	if it.Details != "" {
		if err := json.Unmarshal([]byte(it.Details), &details); err != nil {
			return entities.Quote{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	volume, _ := strconv.ParseFloat(it.Volume, 64)
	distance, _ := strconv.ParseFloat(it.Distance, 64)

	return entities.Quote{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		CustomerName:  it.CustomerName,
		Price:         price,
		Volume:        volume,
		Distance:      distance,
		Status:        entities.QuoteStatus(it.Status),
		Version:       it.Version,
		ParentQuoteID: it.ParentQuoteID,
		Details:       details,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
