package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/nxthub/influencer-hub-backend/internal/controller"
	"github.com/nxthub/influencer-hub-backend/internal/handler"
	"github.com/nxthub/influencer-hub-backend/internal/queue"
	"github.com/nxthub/influencer-hub-backend/internal/repository"
	"github.com/nxthub/influencer-hub-backend/internal/service"
	"github.com/nxthub/influencer-hub-backend/internal/store"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	kv := openStore()

	userRepo := &repository.UserRepository{Store: kv}
	influencerRepo := &repository.InfluencerRepository{Store: kv}
	campaignRepo := &repository.CampaignRepository{Store: kv}
	activityRepo := &repository.ActivityRepository{Store: kv}

	q := openQueue(activityRepo)

	loginService := &service.LoginService{
		UserRepo: userRepo,
		Delay:    loginDelay(),
	}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		Queue:        q,
	}
	influencerService := &service.InfluencerService{
		InfluencerRepo: influencerRepo,
		Queue:          q,
	}

	authController := &controller.AuthController{LoginService: loginService}
	campaignController := &controller.CampaignController{CampaignService: campaignService}
	influencerController := &controller.InfluencerController{InfluencerService: influencerService}

	dashboardHandler := &handler.DashboardHandler{
		CampaignRepo: campaignRepo,
		ActivityRepo: activityRepo,
	}

	r := chi.NewRouter()

	r.Post("/login", authController.Login)

	// Campaign routes
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Patch("/campaigns/{id}/status", campaignController.SetStatus)
	r.Post("/campaigns/{id}/complete", campaignController.Complete)

	// Influencer routes
	r.Get("/influencers", influencerController.ListInfluencers)
	r.Post("/influencers", influencerController.CreateInfluencer)
	r.Put("/influencers/{id}", influencerController.UpdateInfluencer)
	r.Delete("/influencers/{id}", influencerController.DeleteInfluencer)

	// Dashboard routes
	r.Get("/dashboard/summary", dashboardHandler.GetSummaryHandler)
	r.Get("/activity", dashboardHandler.ListActivityHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func openStore() store.KV {
	switch os.Getenv("STORE_BACKEND") {
	case "redis":
		s, err := store.NewRedisStoreFromURL(os.Getenv("REDIS_URL"))
		if err != nil {
			log.Fatalf("failed to open redis store: %v", err)
		}
		return s
	case "memory":
		log.Println("⚠️ Using in-memory store, data will not survive restarts")
		return store.NewMemoryStore()
	default:
		s, err := store.NewPostgresStore()
		if err != nil {
			log.Fatalf("failed to open postgres store: %v", err)
		}
		return s
	}
}

// openQueue prefers RabbitMQ when AMQP_URL is set; the worker process
// consumes in that case. Otherwise events are recorded in-process through
// the in-memory queue.
func openQueue(activityRepo repository.ActivityRepositoryInterface) queue.Queue {
	if url := os.Getenv("AMQP_URL"); url != "" {
		q, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		return q
	}

	q := queue.NewInMemoryQueue()
	queue.StartActivitySubscriber(q, activityRepo)
	return q
}

func loginDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("LOGIN_DELAY_MS"))
	if err != nil || ms < 0 {
		ms = 800
	}
	return time.Duration(ms) * time.Millisecond
}
