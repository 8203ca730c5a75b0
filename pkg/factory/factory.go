package factory

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"spaceflow/internal/config"
	"spaceflow/internal/domain"
	"spaceflow/internal/repository"
	"spaceflow/internal/service"
	"spaceflow/pkg/cache"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/notify"
	"spaceflow/pkg/store"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetRedisClient() *redis.Client
	GetCache() cache.Cache
	GetCacheManager() cache.CacheStrategy
	GetStore() store.Store
	GetNotifier() notify.Notifier

	GetUserRepository() domain.UserRepository
	GetListingRepository() domain.ListingRepository
	GetSessionRepository() domain.SessionRepository
	GetAuditLogRepository() domain.AuditLogRepository

	GetAuthService() domain.AuthService
	GetListingService() domain.ListingService
	GetFavoriteService() domain.FavoriteService
	GetReviewService() domain.ReviewService
	GetSearchService() domain.SearchService
}

type AppFactory struct {
	config       *config.Config
	logger       logger.Logger
	db           *sql.DB
	redisClient  *redis.Client
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	store        store.Store
	notifier     *notify.LogNotifier

	userRepository     domain.UserRepository
	listingRepository  domain.ListingRepository
	sessionRepository  domain.SessionRepository
	auditLogRepository domain.AuditLogRepository

	authService     domain.AuthService
	listingService  domain.ListingService
	favoriteService domain.FavoriteService
	reviewService   domain.ReviewService
	searchService   domain.SearchService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := sql.Open("sqlite3", cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı test edilemedi: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("Redis bağlantısı kurulamadı: %w", err)
	}

	cacheInstance := cache.NewRedisCache(redisClient, log, cfg.Store.Prefix)
	cacheManager := cache.NewCacheManager(cacheInstance, log)

	factory := &AppFactory{
		config:       cfg,
		logger:       log,
		db:           db,
		redisClient:  redisClient,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		store:        store.NewSQLiteStore(db, cfg.Store.Prefix, log),
		notifier:     notify.NewLogNotifier(log),
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.store, f.logger)
	f.listingRepository = repository.NewListingRepository(f.store, f.logger)
	f.sessionRepository = repository.NewSessionRepository(f.store, f.logger)
	f.auditLogRepository = repository.NewAuditLogRepository(f.store, f.logger)
}

func (f *AppFactory) initServices() {
	f.authService = service.NewAuthService(
		f.userRepository,
		f.sessionRepository,
		f.auditLogRepository,
		f.logger,
		f.notifier,
	)

	f.favoriteService = service.NewFavoriteService(
		f.userRepository,
		f.sessionRepository,
		f.listingRepository,
		f.logger,
		f.notifier,
		f.notifier,
	)

	// Create base listing service first
	baseListingService := service.NewListingService(
		f.listingRepository,
		f.favoriteService,
		f.auditLogRepository,
		f.logger,
		f.notifier,
		f.notifier,
	)
	// Wrap with caching
	f.listingService = service.NewCachedListingService(baseListingService, f.cache, f.cacheManager, f.logger)

	f.reviewService = service.NewReviewService(
		f.listingRepository,
		f.auditLogRepository,
		f.logger,
		f.notifier,
		f.notifier,
	)

	f.searchService = service.NewSearchService(
		f.listingService,
		f.config.Search.PageSize,
		f.config.Search.DebounceDelay,
		f.logger,
	)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetRedisClient() *redis.Client {
	return f.redisClient
}

func (f *AppFactory) GetCache() cache.Cache {
	return f.cache
}

func (f *AppFactory) GetCacheManager() cache.CacheStrategy {
	return f.cacheManager
}

func (f *AppFactory) GetStore() store.Store {
	return f.store
}

func (f *AppFactory) GetNotifier() notify.Notifier {
	return f.notifier
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetListingRepository() domain.ListingRepository {
	return f.listingRepository
}

func (f *AppFactory) GetSessionRepository() domain.SessionRepository {
	return f.sessionRepository
}

func (f *AppFactory) GetAuditLogRepository() domain.AuditLogRepository {
	return f.auditLogRepository
}

func (f *AppFactory) GetAuthService() domain.AuthService {
	return f.authService
}

func (f *AppFactory) GetListingService() domain.ListingService {
	return f.listingService
}

func (f *AppFactory) GetFavoriteService() domain.FavoriteService {
	return f.favoriteService
}

func (f *AppFactory) GetReviewService() domain.ReviewService {
	return f.reviewService
}

func (f *AppFactory) GetSearchService() domain.SearchService {
	return f.searchService
}
