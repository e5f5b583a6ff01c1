package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBidsTableName = "bids"
	contractorIndexName  = "contractor_id-index"
)

type bidItem struct {
	RequestID    string `dynamodbav:"request_id"`
	ContractorID string `dynamodbav:"contractor_id"`
	ID           string `dynamodbav:"id"`

	Amount          string `dynamodbav:"amount"`
	TimelineWeeks   int    `dynamodbav:"timeline_weeks"`
	StartDate       string `dynamodbav:"start_date,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	EstimateFileKey string `dynamodbav:"estimate_file_key,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BidDynamoRepository persists Bid entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: contractor_id (string)
//   - GSI contractor_id-index: contractor_id (string)
//
// The composite key is the uniqueness constraint: a conditional put rejects
// a second bid from the same contractor on the same request.

type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

// ErrDuplicateBid is returned when the conditional put loses the race to a
// concurrent bid from the same contractor on the same request.
var ErrDuplicateBid = errors.New("bid already exists for this request and contractor")

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Bid{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#request_id) AND attribute_not_exists(#contractor_id)"),
		ExpressionAttributeNames: map[string]string{
			"#request_id":    "request_id",
			"#contractor_id": "contractor_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bid{}, ErrDuplicateBid
		}
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) GetByRequestAndContractor(ctx context.Context, requestID, contractorID string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id":    &types.AttributeValueMemberS{Value: requestID},
			"contractor_id": &types.AttributeValueMemberS{Value: contractorID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Bid, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
}

func (r *BidDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Bid, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractorIndexName),
		KeyConditionExpression: aws.String("#contractor_id = :contractor_id"),
		ExpressionAttributeNames: map[string]string{
			"#contractor_id": "contractor_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contractor_id": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
}

func (r *BidDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput) ([]entities.Bid, error) {
	var bids []entities.Bid
	var startKey map[string]types.AttributeValue

	for {
		input.ExclusiveStartKey = startKey
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it bidItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			bids = append(bids, fromBidItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return bids, nil
}

func toBidItem(b entities.Bid) bidItem {
	return bidItem{
		RequestID:       b.RequestID,
		ContractorID:    b.ContractorID,
		ID:              b.ID,
		Amount:          floatToString(b.Amount),
		TimelineWeeks:   b.TimelineWeeks,
		StartDate:       timeToString(b.StartDate),
		Notes:           b.Notes,
		EstimateFileKey: b.EstimateFileKey,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Bid{
		ID:              it.ID,
		RequestID:       it.RequestID,
		ContractorID:    it.ContractorID,
		Amount:          amount,
		TimelineWeeks:   it.TimelineWeeks,
		StartDate:       stringToTime(it.StartDate),
		Notes:           it.Notes,
		EstimateFileKey: it.EstimateFileKey,
		Status:          entities.BidStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
