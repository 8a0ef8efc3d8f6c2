package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/storefront/base/log"
)

const (
	mgSocketTimeout  = 60 * time.Second
	mgConnectTimeout = 10 * time.Second
)

// Config describes one mongo deployment
type Config struct {
	URI                string
	AuthDBName         string
	DBName             string
	SSL                bool
	SetSafe            bool
	PoolSizeMultiplier float64
}

// Client wraps mongo.Client with the database it serves
type Client struct {
	DbName string
	*mongo.Client
}

// Database returns the handle of the configured database
func (c *Client) Database() *mongo.Database {
	return c.Client.Database(c.DbName)
}

// MustConnectMongoClient returns a connected client or panics
func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.URI, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient connects and pings the primary
func ConnectMongoClient(cfg Config) (*Client, error) {
	connSetting, err := connstring.Parse(cfg.URI)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"dbName": cfg.DBName,
			"err":    err,
		}).Error("fail to parse connstring")
		return nil, err
	}

	clientOpts := options.Client().ApplyURI(cfg.URI).SetSocketTimeout(mgSocketTimeout)

	// AuthSource falls back to AuthDBName when the uri omits it
	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	if cfg.PoolSizeMultiplier > 0 && len(connSetting.Hosts) > 0 {
		// each host has its own pool, so the total is split between hosts
		poolSize := int(float64(runtime.NumCPU()) * cfg.PoolSizeMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(poolSize / 4))
		clientOpts.SetMaxPoolSize(uint64(poolSize))
		log.Log().WithField("poolSize", poolSize).Info("mongo driver pool size")
	}

	if cfg.SSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if cfg.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	clientOpts.SetRetryWrites(true)

	ctx, cancel := context.WithTimeout(context.Background(), mgConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DBName,
			"err":        err,
		}).Error("fail to connect mongo db")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DBName,
			"err":        err,
		}).Error("fail to ping mongo db")
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"db":         cfg.DBName,
	}).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DBName,
	}, nil
}
