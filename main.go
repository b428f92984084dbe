package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/linetrace-api/api"
	api_i "github.com/beka-birhanu/linetrace-api/api/i"
	"github.com/beka-birhanu/linetrace-api/api/identity"
	puzzleapi "github.com/beka-birhanu/linetrace-api/api/puzzle"
	"github.com/beka-birhanu/linetrace-api/config"
	"github.com/beka-birhanu/linetrace-api/infrastruture/daily"
	"github.com/beka-birhanu/linetrace-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/linetrace-api/infrastruture/repo"
	"github.com/beka-birhanu/linetrace-api/infrastruture/token"
	"github.com/beka-birhanu/linetrace-api/logging"
	"github.com/beka-birhanu/linetrace-api/service"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *goredis.Client
	userRepo         i.UserRepo
	puzzleRepo       i.PuzzleRepo
	solveLeaderboard i.Leaderboard
	dailyStore       i.DailyPuzzleStore
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	puzzleService    i.PuzzleService
	authController   api_i.Controller
	puzzleController api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	puzzleRepo = repo.NewPuzzleRepo(client, config.Envs.DBName, "puzzles")
	appLogger.Info("Repositories initialized")
}

func initLeaderboard() {
	var err error
	solveLeaderboard, err = leaderboard.NewRedisLeaderboard(redisClient, "")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initDailyStore() {
	var err error
	dailyStore, err = daily.NewRedisDailyStore(redisClient)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating daily puzzle store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Daily puzzle store initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	authLogger, err := logging.New("AUTH", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth logger: %v", err))
		os.Exit(1)
	}

	authService, err = service.NewAuth(userRepo, jwtTokenizer, authLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initPuzzleService() {
	puzzleLogger, err := logging.New("PUZZLE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle logger: %v", err))
		os.Exit(1)
	}

	puzzleService, err = service.NewPuzzles(puzzleRepo, userRepo, solveLeaderboard, dailyStore, puzzleLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Puzzle service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	puzzleController, err = puzzleapi.NewController(puzzleService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, puzzleController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger, _ = logging.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initLeaderboard()
	initDailyStore()
	initJWTTokenizer()
	initAuthService()
	initPuzzleService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
