package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Rakhulsr/go-fitstore/app/configs"
	"github.com/Rakhulsr/go-fitstore/app/db/seeders"
	"github.com/Rakhulsr/go-fitstore/app/models/migrations"
	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/Rakhulsr/go-fitstore/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const newKeysFile = ".env.new_keys"

var visitorFlag = &cli.StringFlag{
	Name:     "visitor",
	Usage:    "visitor id from the fitstore-visitor cookie",
	Required: true,
}

func RunCli(env configs.ENV, log *logrus.Logger) {
	cmd := &cli.Command{
		Name:  "fitstore",
		Usage: "fitness storefront maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, log)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return errors.Wrap(err, "migrate")
					}
					log.Info("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert or refresh the built-in product catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, log)
					if err != nil {
						return err
					}
					products := repositories.NewProductRepository(db)
					if err := seeders.DBSeed(ctx, products, validator.New(), log); err != nil {
						return err
					}
					log.Info("Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate session and CSRF keys into " + newKeysFile,
				Action: func(ctx context.Context, c *cli.Command) error {
					keys, err := configs.GenerateSessionKeys()
					if err != nil {
						return err
					}
					if err := configs.WriteSessionKeys(newKeysFile, keys); err != nil {
						return err
					}
					log.Infof("Keys written to %s. Copy them to your .env file.", newKeysFile)
					return nil
				},
			},
			{
				Name:  "cart",
				Usage: "Inspect or reset a visitor's stored cart (mysql and redis storage only)",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Print the stored cart as JSON",
						Flags: []cli.Flag{visitorFlag},
						Action: func(ctx context.Context, c *cli.Command) error {
							store, err := openCartStore(ctx, env, log, c.String("visitor"))
							if err != nil {
								return err
							}
							enc := json.NewEncoder(os.Stdout)
							enc.SetIndent("", "  ")
							return enc.Encode(store.Cart())
						},
					},
					{
						Name:  "clear",
						Usage: "Reset the stored cart to empty",
						Flags: []cli.Flag{visitorFlag},
						Action: func(ctx context.Context, c *cli.Command) error {
							store, err := openCartStore(ctx, env, log, c.String("visitor"))
							if err != nil {
								return err
							}
							if err := store.ClearCart(); err != nil {
								return err
							}
							log.WithField("visitor", c.String("visitor")).Info("Cart cleared")
							return nil
						},
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// openCartStore loads a visitor's cart from the configured server-side backend.
func openCartStore(ctx context.Context, env configs.ENV, log *logrus.Logger, visitorID string) (*services.CartStore, error) {
	var kv repositories.KeyValueStore

	switch env.CartStorage {
	case configs.StorageMySQL:
		db, err := configs.OpenConnection(env, log)
		if err != nil {
			return nil, err
		}
		kv = repositories.NewGormStorage(db).Scope(ctx, visitorID)
	case configs.StorageRedis:
		client, err := configs.OpenRedis(ctx, env, log)
		if err != nil {
			return nil, err
		}
		kv = repositories.NewRedisStorage(client, configs.CartRetention).Scope(ctx, visitorID)
	default:
		return nil, errors.Errorf("CART_STORAGE=%s cannot be read from the command line", env.CartStorage)
	}

	entry := log.WithField("visitor", visitorID)
	return services.NewCartStore(repositories.NewCartStorage(kv, validator.New(), entry), entry), nil
}
