package identity

import (
	"context"
	"os"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID    string `dynamodbav:"id"`
	Email string `dynamodbav:"email"`
	Name  string `dynamodbav:"name"`
	Role  string `dynamodbav:"role"`
}

// UserDirectory reads the users table the auth provider syncs into DynamoDB.
//
// The core only ever needs id, role and a notification address; sessions,
// passwords and sign-in live with the provider.

type UserDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIdentityDirectory = (*UserDirectory)(nil)

func NewUserDirectory(ddb *dynamodb.Client) *UserDirectory {
	tableName := os.Getenv("USERS_TABLE")
	if tableName == "" {
		tableName = defaultUsersTableName
	}
	return &UserDirectory{ddb: ddb, tableName: tableName}
}

func (d *UserDirectory) GetUser(ctx context.Context, userID string) (entities.User, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:    it.ID,
		Email: it.Email,
		Name:  it.Name,
		Role:  entities.Role(it.Role),
	}, nil
}
