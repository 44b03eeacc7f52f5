package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"codecircle/internal/adapter/api"
	"codecircle/internal/adapter/api/handler"
	apimiddleware "codecircle/internal/adapter/api/middleware"
	"codecircle/internal/adapter/api/router"
	"codecircle/internal/adapter/repository"
	"codecircle/internal/domain/service"
	"codecircle/internal/infrastructure/firebase"
	"codecircle/internal/infrastructure/ratelimit"
	"codecircle/internal/infrastructure/websocket"
	"codecircle/internal/usecase"
	"codecircle/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	postRepo := repository.NewFirestorePostRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	planRepo := repository.NewFirestoreMembershipPlanRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	tagRepo := repository.NewFirestoreTagRepository(firestoreClient)
	announcementRepo := repository.NewFirestoreAnnouncementRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rateLimiter.Cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()

	paymentService := service.NewStripePaymentService(cfg.StripeSecretKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, cfg.JWTSecret, cfg.JWTExpiry, cfg.AdminEmail)
	userUseCase := usecase.NewUserUseCase(userRepo, cfg.AdminEmail)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, userRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, reportRepo, postRepo, userRepo)
	moderationUseCase := usecase.NewModerationUseCase(userRepo, reportRepo, notificationRepo, firebaseAuthClient)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	membershipUseCase := usecase.NewMembershipUseCase(planRepo, paymentRepo, userRepo, paymentService)
	tagUseCase := usecase.NewTagUseCase(tagRepo)
	announcementUseCase := usecase.NewAnnouncementUseCase(announcementRepo)
	chatUseCase := usecase.NewChatUseCase(messageRepo, userRepo, wsManager, rateLimiter)

	handler.Setup(
		authUseCase,
		userUseCase,
		postUseCase,
		commentUseCase,
		moderationUseCase,
		notificationUseCase,
		membershipUseCase,
		tagUseCase,
		announcementUseCase,
		chatUseCase,
	)
	handler.SetupWebSocketHandler(wsManager)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient, cfg.JWTSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
