package bootstrap

import (
	"context"
	"log/slog"

	"shopbot/internal/infra/dynamo"
	"shopbot/internal/infra/repository"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/config"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/flow"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/fx"
)

const (
	StateBackendPostgres = "postgres"
	StateBackendDynamoDB = "dynamodb"
)

var StateModule = fx.Module("state",
	fx.Provide(
		NewConversationStore,
	),
)

// NewConversationStore picks where conversation state lives. Postgres is the
// default; DynamoDB keeps it out of the main database.
func NewConversationStore(cfg config.Config, pg *repository.ConversationRepository, clk clock.Clock, logger *slog.Logger) (flow.ConversationStore, error) {
	switch cfg.State.Backend {
	case "", StateBackendPostgres:
		return pg, nil
	case StateBackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.State.AWSRegion))
		if err != nil {
			return nil, errs.Wrap(err, "failed to load AWS config")
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.State.DynamoBaseURL != "" {
				o.BaseEndpoint = aws.String(cfg.State.DynamoBaseURL)
			}
		})
		logger.Info("conversation state on DynamoDB", "table", cfg.State.DynamoTable, "region", cfg.State.AWSRegion)
		return dynamo.NewConversationStore(client, cfg.State.DynamoTable, clk)
	default:
		return nil, errs.Newf("unknown STATE_BACKEND %q", cfg.State.Backend)
	}
}
