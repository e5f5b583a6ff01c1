package repository

import (
	"context"
	"errors"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "renovation_requests"
	statusIndexName          = "status-index"
	customerIndexName        = "customer_id-index"
)

type requestItem struct {
	ID          string   `dynamodbav:"id"`
	CustomerID  string   `dynamodbav:"customer_id"`
	Category    string   `dynamodbav:"category"`
	BudgetRange string   `dynamodbav:"budget_range"`
	Timeline    string   `dynamodbav:"timeline"`
	PostalCode  string   `dynamodbav:"postal_code"`
	Address     string   `dynamodbav:"address"`
	Description string   `dynamodbav:"description"`
	PhotoKeys   []string `dynamodbav:"photo_keys,omitempty"`

	Status               string `dynamodbav:"status"`
	InspectionDate       string `dynamodbav:"inspection_date,omitempty"`
	InspectionNotes      string `dynamodbav:"inspection_notes,omitempty"`
	BiddingStartDate     string `dynamodbav:"bidding_start_date,omitempty"`
	BiddingEndDate       string `dynamodbav:"bidding_end_date,omitempty"`
	SelectedContractorID string `dynamodbav:"selected_contractor_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RenovationRequestDynamoRepository persists RenovationRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (string)
//   - GSI customer_id-index: customer_id (string)
//
// Status changes go through UpdateStatusIf only: the conditional expression
// pins the currently stored status, so two racing transitions can never both
// commit.

type RenovationRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRenovationRequestRepository = (*RenovationRequestDynamoRepository)(nil)

func NewRenovationRequestDynamoRepository(ddb *dynamodb.Client) *RenovationRequestDynamoRepository {
	return &RenovationRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RenovationRequestDynamoRepository) Create(ctx context.Context, req entities.RenovationRequest) (entities.RenovationRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.RenovationRequest{}, err
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
		return entities.RenovationRequest{}, err
	}
	return req, nil
}

func (r *RenovationRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RenovationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RenovationRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RenovationRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RenovationRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.RenovationRequest, error) {
	return r.queryIndex(ctx, statusIndexName, "status", string(status))
}

func (r *RenovationRequestDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.RenovationRequest, error) {
	return r.queryIndex(ctx, customerIndexName, "customer_id", customerID)
}

func (r *RenovationRequestDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.RenovationRequest, error) {
	var requests []entities.RenovationRequest
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": key,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			requests = append(requests, fromRequestItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return requests, nil
}

// UpdateStatusIf applies the status change plus the patch only while the
// stored status still equals expected. A conditional-check failure returns
// the zero value with a nil error: the caller lost the race and the record
// is untouched.
func (r *RenovationRequestDynamoRepository) UpdateStatusIf(ctx context.Context, id string, expected, next entities.RequestStatus, patch interfaces.RequestPatch) (entities.RenovationRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	setExpr := "SET #status = :next, #updated_at = :updated_at"
	removeExpr := ""
	values := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":next":       &types.AttributeValueMemberS{Value: string(next)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	if patch.InspectionDate != nil {
		setExpr += ", #inspection_date = :inspection_date"
		names["#inspection_date"] = "inspection_date"
		values[":inspection_date"] = &types.AttributeValueMemberS{Value: patch.InspectionDate.UTC().Format(time.RFC3339Nano)}
	}
	if patch.InspectionNotes != nil {
		setExpr += ", #inspection_notes = :inspection_notes"
		names["#inspection_notes"] = "inspection_notes"
		values[":inspection_notes"] = &types.AttributeValueMemberS{Value: *patch.InspectionNotes}
	}
	if patch.BiddingStartDate != nil {
		setExpr += ", #bidding_start_date = :bidding_start_date"
		names["#bidding_start_date"] = "bidding_start_date"
		values[":bidding_start_date"] = &types.AttributeValueMemberS{Value: patch.BiddingStartDate.UTC().Format(time.RFC3339Nano)}
	}
	if patch.BiddingEndDate != nil {
		setExpr += ", #bidding_end_date = :bidding_end_date"
		names["#bidding_end_date"] = "bidding_end_date"
		values[":bidding_end_date"] = &types.AttributeValueMemberS{Value: patch.BiddingEndDate.UTC().Format(time.RFC3339Nano)}
	}
	if patch.SelectedContractorID != nil {
		setExpr += ", #selected_contractor_id = :selected_contractor_id"
		names["#selected_contractor_id"] = "selected_contractor_id"
		values[":selected_contractor_id"] = &types.AttributeValueMemberS{Value: *patch.SelectedContractorID}
	}
	if patch.ClearInspection {
		removeExpr = " REMOVE #inspection_date, #inspection_notes, #bidding_start_date, #bidding_end_date"
		names["#inspection_date"] = "inspection_date"
		names["#inspection_notes"] = "inspection_notes"
		names["#bidding_start_date"] = "bidding_start_date"
		names["#bidding_end_date"] = "bidding_end_date"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(setExpr + removeExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RenovationRequest{}, nil
		}
		return entities.RenovationRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RenovationRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RenovationRequest{}, err
	}
	return fromRequestItem(it), nil
}

func toRequestItem(r entities.RenovationRequest) requestItem {
	return requestItem{
		ID:                   r.ID,
		CustomerID:           r.CustomerID,
		Category:             string(r.Category),
		BudgetRange:          string(r.BudgetRange),
		Timeline:             string(r.Timeline),
		PostalCode:           r.PostalCode,
		Address:              r.Address,
		Description:          r.Description,
		PhotoKeys:            r.PhotoKeys,
		Status:               string(r.Status),
		InspectionDate:       timeToString(r.InspectionDate),
		InspectionNotes:      r.InspectionNotes,
		BiddingStartDate:     timeToString(r.BiddingStartDate),
		BiddingEndDate:       timeToString(r.BiddingEndDate),
		SelectedContractorID: r.SelectedContractorID,
		CreatedAt:            r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRequestItem(it requestItem) entities.RenovationRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.RenovationRequest{
		ID:                   it.ID,
		CustomerID:           it.CustomerID,
		Category:             entities.RequestCategory(it.Category),
		BudgetRange:          entities.BudgetRange(it.BudgetRange),
		Timeline:             entities.TimelinePreference(it.Timeline),
		PostalCode:           it.PostalCode,
		Address:              it.Address,
		Description:          it.Description,
		PhotoKeys:            it.PhotoKeys,
		Status:               entities.RequestStatus(it.Status),
		InspectionDate:       stringToTime(it.InspectionDate),
		InspectionNotes:      it.InspectionNotes,
		BiddingStartDate:     stringToTime(it.BiddingStartDate),
		BiddingEndDate:       stringToTime(it.BiddingEndDate),
		SelectedContractorID: it.SelectedContractorID,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}
