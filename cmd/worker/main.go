// cmd/worker/main.go
package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/influenceos/influenceos-backend/internal/config"
	"github.com/influenceos/influenceos-backend/internal/db"
	"github.com/influenceos/influenceos-backend/internal/queue"
	"github.com/influenceos/influenceos-backend/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the archive worker")
	}

	// Connect to DB
	db.Init()
	archive := &repository.ArchiveRepository{DB: db.DB}

	// Connect to RabbitMQ
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.TopicSends, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var ev queue.SendEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				log.Println("Invalid send event:", err)
				d.Ack(false)
				continue
			}

			if err := archive.ArchiveSendEvent(ev); err != nil {
				log.Println("Failed to archive event", ev.EventID, ":", err)
				// Republish with a bumped retry count, up to 3 times.
				// Requeueing via Nack would redeliver with the headers
				// unchanged and loop forever.
				if attempt, retry := nextRetry(d.Headers); retry {
					if err := republish(ch, d.Body, attempt); err != nil {
						log.Println("Failed to republish event", ev.EventID, ":", err)
						d.Nack(false, true)
						continue
					}
				} else {
					log.Printf("❌ Giving up on event %s after %d attempts\n", ev.EventID, maxArchiveRetries)
				}
			} else {
				log.Printf("✅ Archived %s message to @%s (campaign %s)\n", ev.Kind, ev.Username, ev.CampaignID)
			}

			d.Ack(false)
		}
	}()

	log.Println("Worker running, waiting for send events...")
	<-forever
}
