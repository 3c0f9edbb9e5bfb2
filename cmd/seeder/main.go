//cmd/seeder/main.go
package main

import (
    "encoding/json"
    "fmt"
    "log"

    "github.com/joho/godotenv"

    "github.com/nxthub/influencer-hub-backend/internal/seed"
    "github.com/nxthub/influencer-hub-backend/internal/store"
)

// Resets the key-value store to the baseline dataset. Existing data for the
// three collections is overwritten.
func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    kv, err := store.NewPostgresStore()
    if err != nil {
        log.Fatal(err)
    }
    defer kv.Close()

    collections := map[string]interface{}{
        "nxthub_users_data":       seed.Users(),
        "nxthub_influencers_data": seed.Influencers(),
        "nxthub_campaigns_data":   seed.Campaigns(),
    }

    for key, collection := range collections {
        data, err := json.Marshal(collection)
        if err != nil {
            log.Fatalf("failed to marshal %s: %v", key, err)
        }
        if err := kv.Set(key, data); err != nil {
            log.Fatalf("failed to write %s: %v", key, err)
        }
        fmt.Printf("Seeded: %s\n", key)
    }

    fmt.Println("Store seeding completed successfully!")
}
