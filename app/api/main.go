package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/database/mongoclient"
	"github.com/x-xyz/storefront/base/database/redisclient"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	pricefomatter "github.com/x-xyz/storefront/base/price_fomatter"
	bValidator "github.com/x-xyz/storefront/base/validator"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/collection"
	"github.com/x-xyz/storefront/domain/keys"
	mmiddleware "github.com/x-xyz/storefront/middleware"
	"github.com/x-xyz/storefront/service/announcer"
	"github.com/x-xyz/storefront/service/cache"
	compoundcache "github.com/x-xyz/storefront/service/cache/compoundCache"
	"github.com/x-xyz/storefront/service/cache/provider/primitive"
	redisprovider "github.com/x-xyz/storefront/service/cache/provider/redis"
	"github.com/x-xyz/storefront/service/chain"
	"github.com/x-xyz/storefront/service/chain/contract"
	"github.com/x-xyz/storefront/service/ens"
	"github.com/x-xyz/storefront/service/pinata"
	"github.com/x-xyz/storefront/service/query"
	"github.com/x-xyz/storefront/service/redis"
	activity_delivery "github.com/x-xyz/storefront/stores/activity/delivery/http"
	activity_repository "github.com/x-xyz/storefront/stores/activity/repository"
	activity_usecase "github.com/x-xyz/storefront/stores/activity/usecase"
	auth_middleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/storefront/stores/auth/usecase"
	ens_delivery "github.com/x-xyz/storefront/stores/ens/delivery/http"
	file_usecase "github.com/x-xyz/storefront/stores/file/usecase"
	hc_delivery "github.com/x-xyz/storefront/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/storefront/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/storefront/stores/healthcheck/usecase"
	item_delivery "github.com/x-xyz/storefront/stores/item/delivery/http"
	item_usecase "github.com/x-xyz/storefront/stores/item/usecase"
	layout_delivery "github.com/x-xyz/storefront/stores/layout/delivery/http"
	layout_usecase "github.com/x-xyz/storefront/stores/layout/usecase"
	listing_delivery "github.com/x-xyz/storefront/stores/listing/delivery/http"
	listing_usecase "github.com/x-xyz/storefront/stores/listing/usecase"
	media_delivery "github.com/x-xyz/storefront/stores/media/delivery/http"
	media_repository "github.com/x-xyz/storefront/stores/media/repository"
	media_usecase "github.com/x-xyz/storefront/stores/media/usecase"
	metadata_usecase "github.com/x-xyz/storefront/stores/metadata/usecase"
	notification_delivery "github.com/x-xyz/storefront/stores/notification/delivery/http"
	notification_usecase "github.com/x-xyz/storefront/stores/notification/usecase"
	wallet_delivery "github.com/x-xyz/storefront/stores/wallet/delivery/http"
	wallet_repository "github.com/x-xyz/storefront/stores/wallet/repository"
	wallet_usecase "github.com/x-xyz/storefront/stores/wallet/usecase"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()

	// a missing .env is fine, it only carries local secrets
	_ = godotenv.Load()

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("feed.cacheTtl", 15*time.Second)
	viper.SetDefault("listing.durationSeconds", 7*24*60*60)
	viper.SetDefault("listing.viewIdleTtl", 10*time.Minute)
	viper.SetDefault("notification.duration", 3*time.Second)
	viper.SetDefault("auth.ttl", 24*time.Hour)
	viper.SetDefault("ipfs.gateway", "https://ipfs.io/ipfs/")
	viper.SetDefault("ipfs.timeout", 10*time.Second)
	viper.SetDefault("http.timeout", 10*time.Second)

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvPrefix("storefront")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := log.Setup(viper.GetString("log.level"), viper.GetBool("log.development")); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// network is one entry under networks in the config
type network struct {
	name          string
	chainId       domain.ChainId
	rpcUrl        string
	archiveRpcUrl string
	nativeSymbol  string
	wrappedNative domain.Address
}

func loadNetworks() map[string]network {
	networks := viper.Sub("networks")
	if networks == nil {
		log.Log().Panic("networks is not configured")
	}
	res := make(map[string]network)
	for k := range networks.AllSettings() {
		res[k] = network{
			name:          networks.GetString(fmt.Sprintf("%s.name", k)),
			chainId:       domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k))),
			rpcUrl:        networks.GetString(fmt.Sprintf("%s.rpcUrl", k)),
			archiveRpcUrl: networks.GetString(fmt.Sprintf("%s.archiveRpcUrl", k)),
			nativeSymbol:  networks.GetString(fmt.Sprintf("%s.nativeSymbol", k)),
			wrappedNative: domain.Address(networks.GetString(fmt.Sprintf("%s.wrappedNative", k))).ToLower(),
		}
	}
	return res
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(viper.GetStringSlice("server.allowOrigins"))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	q := query.New(mongoClient)
	if viper.GetBool("mongo.checkIndex") {
		if err := activity_repository.EnsureIndexes(context, q); err != nil {
			context.WithField("err", err).Warn("activity_repository.EnsureIndexes failed")
		}
	}

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		},
	)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// init chain service
	networks := loadNetworks()
	target, ok := networks[viper.GetString("network.target")]
	if !ok {
		log.Log().WithField("target", viper.GetString("network.target")).Panic("target network is not configured")
	}
	rpcs := make(map[domain.ChainId]string)
	archiveRpcs := make(map[domain.ChainId]string)
	for _, n := range networks {
		rpcs[n.chainId] = n.rpcUrl
		if n.archiveRpcUrl != "" {
			archiveRpcs[n.chainId] = n.archiveRpcUrl
		}
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
		MaxInflight:    viper.GetInt("chain.maxInflight"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	marketplaceService := contract.NewMarketplace(chainService, contract.MarketplaceCfg{
		ChainId:   target.chainId,
		Address:   domain.Address(viper.GetString("contracts.marketplace")).ToLower(),
		FromBlock: viper.GetUint64("contracts.marketplaceFromBlock"),
	})
	collectionService := contract.NewNftCollection(chainService, target.chainId, domain.Address(viper.GetString("contracts.collection")).ToLower())
	collections := func(address domain.Address) collection.Contract {
		if address.Equals(collectionService.Address()) {
			return collectionService
		}
		return contract.NewNftCollection(chainService, target.chainId, address)
	}
	erc20Service := contract.NewErc20(chainService, target.chainId)

	// ens lives on ethereum mainnet whatever the target network is
	var ensService ens.ENS
	if rpc := viper.GetString("ens.rpcUrl"); rpc != "" {
		ensService, err = ens.New(rpc, redisCache)
		if err != nil {
			context.WithField("err", err).Warn("ens.New failed, display names disabled")
			ensService = nil
		}
	}

	saleAnnouncer, err := announcer.NewDiscord(announcer.DiscordConfig{
		BotKey:        viper.GetString("discord.botKey"),
		ChannelId:     viper.GetString("discord.channelId"),
		StorefrontUrl: viper.GetString("discord.storefrontUrl"),
		IpfsGateway:   viper.GetString("ipfs.gateway"),
	})
	if err != nil {
		context.WithField("err", err).Panic("announcer.NewDiscord failed")
	}

	pinataService := pinata.New(pinata.Config{
		Endpoint:  viper.GetString("pinata.endpoint"),
		ApiKey:    viper.GetString("pinata.apiKey"),
		ApiSecret: viper.GetString("pinata.apiSecret"),
		Jwt:       viper.GetString("pinata.jwt"),
	})

	// caches
	// the hydrated feed is one entry, too large for an in-process freecache slot
	feedCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("feed.cacheTtl"),
		Pfx:   keys.PfxListingFeed,
		Cache: redisprovider.NewRedis(redisCache),
	})
	metadataCache := compoundcache.NewCompoundCache([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   keys.PfxAssetMetadata,
			Cache: primitive.NewPrimitive(keys.PfxAssetMetadata, 32),
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   keys.PfxAssetMetadata,
			Cache: redisprovider.NewRedis(redisCache),
		}),
	})

	// construct repository, usecase and delivery
	ipfsGateway := viper.GetString("ipfs.gateway")
	ipfsTimeout := viper.GetDuration("ipfs.timeout")
	httpReader := media_repository.NewHttpReaderRepo(&http.Client{}, viper.GetDuration("http.timeout"), nil)
	ipfsReader := media_repository.NewIpfsGatewayReaderRepo(httpReader, ipfsGateway)
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		ipfsReader = media_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), ipfsTimeout)
	}
	media := media_usecase.NewMediaUseCase(&media_usecase.MediaUseCaseCfg{
		HttpReader:    httpReader,
		IpfsReader:    ipfsReader,
		DataUriReader: media_repository.NewDataUriReaderRepo(),
		ArUriReader:   media_repository.NewArReaderRepo(httpReader, viper.GetString("arweave.gateway")),
		IpfsGateway:   ipfsGateway,
		ArGateway:     viper.GetString("arweave.gateway"),
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource: media,
		Cache:       metadataCache,
	})
	file := file_usecase.New(pinataService)
	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{
		NativeSymbol: target.nativeSymbol,
		Erc20:        erc20Service,
	})

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.ttl"))
	sessions := wallet_repository.NewSessionRepo(redisCache)
	keystore := wallet_repository.NewKeystore(wallet_repository.KeystoreConfig{
		Dir:       viper.GetString("wallet.keystoreDir"),
		UnlockFor: viper.GetDuration("wallet.unlockFor"),
	})
	wallet := wallet_usecase.New(wallet_usecase.Config{
		TargetChainId:  target.chainId,
		DefaultChainId: domain.ChainId(viper.GetInt32("wallet.defaultChainId")),
		SessionTtl:     viper.GetDuration("auth.ttl"),
	}, sessions, keystore, auth)
	notification := notification_usecase.New(notification_usecase.Config{
		Duration: viper.GetDuration("notification.duration"),
	})
	activity := activity_usecase.New(target.chainId, activity_repository.New(q))

	listing := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		ChainId:        target.chainId,
		NetworkName:    target.name,
		WrappedNative:  target.wrappedNative,
		Marketplace:    marketplaceService,
		Erc20:          erc20Service,
		Collections:    collections,
		Metadata:       metadata,
		PriceFormatter: priceFormatter,
		Wallet:         wallet,
		Notification:   notification,
		Activity:       activity,
		Ens:            ensService,
		Announcer:      saleAnnouncer,
		FeedCache:      feedCache,
		ViewIdleTtl:    viper.GetDuration("listing.viewIdleTtl"),
	})
	item := item_usecase.NewItemUseCase(&item_usecase.ItemUseCaseCfg{
		ChainId:         target.chainId,
		Collection:      collectionService,
		Marketplace:     marketplaceService,
		Metadata:        metadata,
		File:            file,
		Wallet:          wallet,
		Notification:    notification,
		Activity:        activity,
		ListingDuration: time.Duration(viper.GetInt64("listing.durationSeconds")) * time.Second,
		FeedCache:       feedCache,
	})
	layout := layout_usecase.New(wallet)
	hc := hc_usecase.New(hc_repo.New(mongoClient, redisCache, chainService, target.chainId))

	auth_middleware := auth_middleware.New(auth, sessions)

	hc_delivery.New(e, hc)
	layout_delivery.New(e, layout, auth_middleware)
	wallet_delivery.New(e, wallet, auth_middleware)
	notification_delivery.New(e, notification, auth_middleware, viper.GetStringSlice("server.allowOrigins"))
	listing_delivery.New(e, listing, auth_middleware)
	item_delivery.New(e, item, auth_middleware)
	activity_delivery.New(e, activity)
	media_delivery.New(e, media)
	if ensService != nil {
		ens_delivery.New(e, ensService)
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	log.Sync()
}
