package dynamo

import (
	"context"
	"strconv"
	"strings"
	"time"

	domflow "shopbot/internal/domain/flow"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	skState = "STATE"
	// items expire on their own when a conversation goes quiet
	stateTTL = 7 * 24 * time.Hour
)

// dynamodbAPI is the part of the DynamoDB client the store uses.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// ConversationStore keeps conversation state in a single-table layout:
// PK = CONV#<owner>#<sender>, SK = STATE.
type ConversationStore struct {
	api       dynamodbAPI
	tableName string
	clock     clock.Clock
}

func NewConversationStore(api dynamodbAPI, tableName string, clk clock.Clock) (*ConversationStore, error) {
	if api == nil {
		return nil, errs.New("dynamo: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errs.New("dynamo: table name must not be empty")
	}
	return &ConversationStore{api: api, tableName: tableName, clock: clk}, nil
}

func convPK(ownerID uuid.UUID, customerID string) string {
	return "CONV#" + ownerID.String() + "#" + customerID
}

func (s *ConversationStore) key(ownerID uuid.UUID, customerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: convPK(ownerID, customerID)},
		"SK": &types.AttributeValueMemberS{Value: skState},
	}
}

func (s *ConversationStore) Get(ctx context.Context, ownerID uuid.UUID, customerID string) (domflow.Conversation, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(ownerID, customerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domflow.Conversation{}, errs.Wrap(err, "dynamo: get conversation")
	}
	conv := domflow.Idle(ownerID, customerID)
	if out == nil || len(out.Item) == 0 {
		return conv, nil
	}

	if v, ok := out.Item["handoff"].(*types.AttributeValueMemberBOOL); ok {
		conv.SupportHandoffOpen = v.Value
	}
	if v, ok := out.Item["pending"].(*types.AttributeValueMemberS); ok {
		conv.Pending = domflow.Decode([]byte(v.Value))
	}
	if v, ok := out.Item["updatedAt"].(*types.AttributeValueMemberN); ok {
		if secs, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
			conv.UpdatedAt = time.Unix(secs, 0).UTC()
		}
	}
	return conv, nil
}

func (s *ConversationStore) SetPendingFlow(ctx context.Context, ownerID uuid.UUID, customerID string, state domflow.State) error {
	return s.update(ctx, ownerID, customerID, "pending",
		&types.AttributeValueMemberS{Value: string(domflow.Encode(state))})
}

func (s *ConversationStore) SetSupportHandoff(ctx context.Context, ownerID uuid.UUID, customerID string, open bool) error {
	return s.update(ctx, ownerID, customerID, "handoff",
		&types.AttributeValueMemberBOOL{Value: open})
}

func (s *ConversationStore) Evict(ctx context.Context, ownerID uuid.UUID, customerID string) error {
	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.key(ownerID, customerID),
	})
	if err != nil {
		return errs.Wrap(err, "dynamo: evict conversation")
	}
	return nil
}

// update sets one attribute and leaves the other half of the state alone.
func (s *ConversationStore) update(ctx context.Context, ownerID uuid.UUID, customerID, attr string, value types.AttributeValue) error {
	now := s.clock.Now()
	_, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.tableName),
		Key:              s.key(ownerID, customerID),
		UpdateExpression: aws.String("SET #a = :v, updatedAt = :u, #ttl = :ttl"),
		ExpressionAttributeNames: map[string]string{
			"#a":   attr,
			"#ttl": "ttl",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":   value,
			":u":   &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
			":ttl": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Add(stateTTL).Unix(), 10)},
		},
	})
	if err != nil {
		return errs.Wrapf(err, "dynamo: set %s", attr)
	}
	return nil
}
