package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/notify"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/mq"
)

type Cfg struct {
	RabbitURL     string   `envconfig:"RABBIT_URL" required:"true"`
	EventExchange string   `envconfig:"EVENT_EXCHANGE" default:"hotel.exchange"`
	Queue         string   `envconfig:"NOTIFY_QUEUE" default:"notification.q"`
	Bindings      []string `envconfig:"NOTIFY_BINDINGS" default:"booking.*,payment.*"`
	Prefetch      int      `envconfig:"NOTIFY_PREFETCH" default:"16"`
	DLXName       string   `envconfig:"NOTIFY_DLX" default:"notification.dlx"`
	DLXQueue      string   `envconfig:"NOTIFY_DLQ" default:"notification.q.dlq"`
}

func main() {
	_ = godotenv.Load()
	var cfg Cfg
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	var cons *mq.Consumer
	for {
		var err error
		cons, err = mq.NewConsumer(mq.ConsumerConfig{
			URL:      cfg.RabbitURL,
			Exchange: cfg.EventExchange,
			Queue:    cfg.Queue,
			Bindings: cfg.Bindings,
			Prefetch: cfg.Prefetch,
			DLXName:  cfg.DLXName,
			DLXQueue: cfg.DLXQueue,
		})
		if err == nil {
			break
		}
		log.Printf("[notify] connect failed: %v; retry in 2s", err)
		time.Sleep(2 * time.Second)
	}
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	w := notify.NewWorker(cons, notify.NewConsole(), "notify-worker")
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Printf("[notify] run: %v", err)
		}
	}()
	log.Printf("[notify] started. queue=%s bindings=%v", cfg.Queue, cfg.Bindings)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
	log.Println("[notify] stopped")
}
