package bootstrap

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/betdesk/backoffice/internal/config"
	"github.com/betdesk/backoffice/pkg/logger"
)

type Bootstrap struct {
	Log   *slog.Logger
	Mongo *mongo.Client
	Users *mongo.Collection
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)
	bs.Mongo, err = InitMongo(applicationCtx, cfg.MongoURI)
	if err != nil {
		return bs, err
	}
	bs.Users = bs.Mongo.Database(cfg.MongoDatabase).Collection("users")

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Mongo != nil {
		if err := bs.Mongo.Disconnect(context.Background()); err != nil {
			bs.Log.Error("mongo disconnect failed", "error", err)
		}
	}
}
