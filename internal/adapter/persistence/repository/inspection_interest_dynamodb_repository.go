package repository

import (
	"context"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInterestsTableName = "inspection_interests"

type interestItem struct {
	RequestID       string `dynamodbav:"request_id"`
	ContractorID    string `dynamodbav:"contractor_id"`
	WillParticipate bool   `dynamodbav:"will_participate"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InspectionInterestDynamoRepository persists InspectionInterest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: contractor_id (string)
//
// Upsert overwrites the row but keeps the original created_at when one
// already exists; DeleteByRequestID removes every interest for a request in
// batches when an inspection is cancelled.

type InspectionInterestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInspectionInterestRepository = (*InspectionInterestDynamoRepository)(nil)

func NewInspectionInterestDynamoRepository(ddb *dynamodb.Client) *InspectionInterestDynamoRepository {
	return &InspectionInterestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INTERESTS_TABLE", defaultInterestsTableName),
	}
}

func (r *InspectionInterestDynamoRepository) Upsert(ctx context.Context, i entities.InspectionInterest) (entities.InspectionInterest, error) {
	existing, err := r.get(ctx, i.RequestID, i.ContractorID)
	if err != nil {
		return entities.InspectionInterest{}, err
	}
	if existing.RequestID != "" {
		i.CreatedAt = existing.CreatedAt
	}

	av, err := attributevalue.MarshalMap(interestItem{
		RequestID:       i.RequestID,
		ContractorID:    i.ContractorID,
		WillParticipate: i.WillParticipate,
		CreatedAt:       i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.InspectionInterest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.InspectionInterest{}, err
	}
	return i, nil
}

func (r *InspectionInterestDynamoRepository) get(ctx context.Context, requestID, contractorID string) (entities.InspectionInterest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id":    &types.AttributeValueMemberS{Value: requestID},
			"contractor_id": &types.AttributeValueMemberS{Value: contractorID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InspectionInterest{}, err
	}
	if len(out.Item) == 0 {
		return entities.InspectionInterest{}, nil
	}

	var it interestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InspectionInterest{}, err
	}
	return fromInterestItem(it), nil
}

func (r *InspectionInterestDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.InspectionInterest, error) {
	var interests []entities.InspectionInterest
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#request_id = :request_id"),
			ExpressionAttributeNames: map[string]string{
				"#request_id": "request_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":request_id": &types.AttributeValueMemberS{Value: requestID},
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it interestItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			interests = append(interests, fromInterestItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return interests, nil
}

func (r *InspectionInterestDynamoRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	interests, err := r.ListByRequestID(ctx, requestID)
	if err != nil {
		return err
	}
	if len(interests) == 0 {
		return nil
	}

	// BatchWriteItem caps at 25 requests per call.
	const batchSize = 25
	for start := 0; start < len(interests); start += batchSize {
		end := start + batchSize
		if end > len(interests) {
			end = len(interests)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, i := range interests[start:end] {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"request_id":    &types.AttributeValueMemberS{Value: i.RequestID},
						"contractor_id": &types.AttributeValueMemberS{Value: i.ContractorID},
					},
				},
			})
		}

		_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: writes,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func fromInterestItem(it interestItem) entities.InspectionInterest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.InspectionInterest{
		RequestID:       it.RequestID,
		ContractorID:    it.ContractorID,
		WillParticipate: it.WillParticipate,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
