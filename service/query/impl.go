package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/database/mongoclient"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
)

const (
	queryMaxTime    = 20 * time.Second
	slowThresholdMs = int64(500)
)

var (
	timeNow = time.Now
	met     = metrics.New("query")
)

type impl struct {
	client *mongoclient.Client
}

// New initializes an impl
func New(client *mongoclient.Client) Mongo {
	return &impl{
		client: client,
	}
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database().Collection(string(table))
}

func (im *impl) logerr(context ctx.Ctx, msg string, err error) {
	met.BumpSum("err", 1)
	context.WithFields(log.Fields{"err": err}).Error(msg)
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer met.BumpTime("time", "func", "insert", "table", string(table)).End()
	defer slowLog(context, string(table), "insert", nil, "")()

	context = ctx.WithValue(context, "table", table)

	if _, err := im.collection(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, "Insert: InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(context, string(table), "findone", query, "")()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	opts := options.FindOne().SetMaxTime(queryMaxTime)
	if err := im.collection(table).FindOne(context, query, opts).Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, "FindOne: Decode failed", err)
		return err
	}
	return nil
}

func (im *impl) Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer met.BumpTime("time", "func", "count", "table", string(table)).End()
	defer slowLog(context, string(table), "count", selector, "")()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	opts := options.Count().SetMaxTime(queryMaxTime)
	count, err := im.collection(table).CountDocuments(context, selector, opts)
	if err != nil {
		im.logerr(context, "Count: CountDocuments failed", err)
		return 0, err
	}
	return int(count), nil
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(context, string(table), "search", query, sort)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	opts := options.Find().SetMaxTime(queryMaxTime).SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if s := sortOption(sort); len(s) > 0 {
		opts.SetSort(s)
	}

	cursor, err := im.collection(table).Find(context, query, opts)
	if err != nil {
		im.logerr(context, "Search: Find failed", err)
		return err
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		im.logerr(context, "Search: cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer met.BumpTime("time", "func", "patch", "table", string(table)).End()
	defer slowLog(context, string(table), "patch", selector, "")()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	res, err := im.collection(table).UpdateOne(context, selector, bson.M{"$set": update})
	if err != nil {
		im.logerr(context, "Patch: UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) EnsureIndexes(context ctx.Ctx, table domain.Table, indexes []Index) error {
	models := make([]mongo.IndexModel, 0, len(indexes))
	for _, idx := range indexes {
		models = append(models, mongo.IndexModel{
			Keys:    sortOption(idx.Keys...),
			Options: options.Index().SetUnique(idx.Unique),
		})
	}
	if len(models) == 0 {
		return nil
	}
	if _, err := im.collection(table).Indexes().CreateMany(context, models); err != nil {
		im.logerr(ctx.WithValue(context, "table", table), "EnsureIndexes: CreateMany failed", err)
		return err
	}
	return nil
}

// sortOption turns "-createdAt" style fields into a bson sort document
func sortOption(fields ...string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if f[0] == '-' {
			res = append(res, bson.E{Key: f[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: f, Value: 1})
		}
	}
	return res
}

func slowLog(context ctx.Ctx, table, action string, query interface{}, sort string) func() {
	start := timeNow()

	return func() {
		elapsedMs := time.Since(start).Milliseconds()
		if elapsedMs >= slowThresholdMs {
			met.BumpSum("slowlog", 1, "table", table, "action", action)
			context.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsedMs,
				"query":      query,
				"sort":       sort,
			}).Warn("mongo slowlog")
		}
	}
}
