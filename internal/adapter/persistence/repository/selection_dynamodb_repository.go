package repository

import (
	"context"
	"errors"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SelectionDynamoRepository commits the winner-selection write set with one
// TransactWriteItems call spanning the requests and bids tables.
//
// The transaction pins the request on bidding_closed and the winning bid on
// pending; if either condition fails the whole transaction cancels and no
// record changes. DynamoDB caps a transaction at 100 items, far above the
// bid counts a single request sees.

type SelectionDynamoRepository struct {
	ddb           *dynamodb.Client
	requestsTable string
	bidsTable     string
}

var _ interfaces.ISelectionRepository = (*SelectionDynamoRepository)(nil)

func NewSelectionDynamoRepository(ddb *dynamodb.Client) *SelectionDynamoRepository {
	return &SelectionDynamoRepository{
		ddb:           ddb,
		requestsTable: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		bidsTable:     getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *SelectionDynamoRepository) CommitSelection(ctx context.Context, requestID, contractorID, acceptedBidID string, rejectedContractorIDs []string) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.requestsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: requestID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
				UpdateExpression:    aws.String("SET #status = :next, #selected_contractor_id = :contractor_id, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":                     "id",
					"#status":                 "status",
					"#selected_contractor_id": "selected_contractor_id",
					"#updated_at":             "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected":      &types.AttributeValueMemberS{Value: string(entities.StatusBiddingClosed)},
					":next":          &types.AttributeValueMemberS{Value: string(entities.StatusContractorSelected)},
					":contractor_id": &types.AttributeValueMemberS{Value: contractorID},
					":updated_at":    &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		r.bidStatusUpdate(requestID, contractorID, entities.BidStatusAccepted, true, now),
	}

	for _, rejected := range rejectedContractorIDs {
		items = append(items, r.bidStatusUpdate(requestID, rejected, entities.BidStatusRejected, false, now))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return false, nil
				}
			}
		}
		return false, err
	}

	return true, nil
}

// bidStatusUpdate builds the per-bid transaction item. The accepted bid must
// still be pending; rejected bids only need to exist, so repeating a partial
// rejection pass stays safe.
func (r *SelectionDynamoRepository) bidStatusUpdate(requestID, contractorID string, status entities.BidStatus, requirePending bool, now string) types.TransactWriteItem {
	condition := "attribute_exists(#request_id)"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if requirePending {
		condition += " AND #status = :pending"
		values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.BidStatusPending)}
	}

	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.bidsTable),
			Key: map[string]types.AttributeValue{
				"request_id":    &types.AttributeValueMemberS{Value: requestID},
				"contractor_id": &types.AttributeValueMemberS{Value: contractorID},
			},
			ConditionExpression:       aws.String(condition),
			UpdateExpression:          aws.String("SET #status = :status, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#request_id": "request_id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: values,
		},
	}
}
