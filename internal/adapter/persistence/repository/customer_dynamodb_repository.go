package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type customerItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	MovingDate  string `dynamodbav:"moving_date"`
	FromAddress string `dynamodbav:"from_address"`
	ToAddress   string `dynamodbav:"to_address"`
	Apartment   string `dynamodbav:"apartment"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The back office works with a small customer base, so List is a full table
// scan; the use case layer keeps the result behind a TTL cache.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it, err := toCustomerItem(c)
	if err != nil {
		return entities.Customer{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	customers := make([]entities.Customer, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []customerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			c, err := fromCustomerItem(it)
			if err != nil {
				return nil, err
			}
			customers = append(customers, c)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return customers, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it, err := toCustomerItem(c)
	if err != nil {
		return entities.Customer{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func toCustomerItem(c entities.Customer) (customerItem, error) {
	fromAddr, err := json.Marshal(c.FromAddress)
	if err != nil {
		return customerItem{}, err
	}
	toAddr, err := json.Marshal(c.ToAddress)
	if err != nil {
		return customerItem{}, err
	}
	apartment, err := json.Marshal(c.Apartment)
	if err != nil {
		return customerItem{}, err
	}

	return customerItem{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		MovingDate:  c.MovingDate,
		FromAddress: string(fromAddr),
		ToAddress:   string(toAddr),
		Apartment:   string(apartment),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	var fromAddr, toAddr entities.Address
	var apartment entities.Apartment
	if it.FromAddress != "" {
		if err := json.Unmarshal([]byte(it.FromAddress), &fromAddr); err != nil {
			return entities.Customer{}, err
		}
	}
	if it.ToAddress != "" {
		if err := json.Unmarshal([]byte(it.ToAddress), &toAddr); err != nil {
			return entities.Customer{}, err
		}
	}
	if it.Apartment != "" {
		if err := json.Unmarshal([]byte(it.Apartment), &apartment); err != nil {
			return entities.Customer{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Customer{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		MovingDate:  it.MovingDate,
		FromAddress: fromAddr,
		ToAddress:   toAddr,
		Apartment:   apartment,
		Notes:       it.Notes,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
