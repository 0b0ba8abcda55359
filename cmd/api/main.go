package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/repository"
	"github.com/NgocHien2004/HotelBooking-sub000/internal/service"
	"github.com/NgocHien2004/HotelBooking-sub000/internal/transport/web"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/config"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/db"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/mq"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer := must(obs.InitTracer(ctx, "hotel-api"))
	defer func() { _ = shutdownTracer(context.Background()) }()

	gdb := db.Open(cfg.PGDSN)
	roomRepo := repository.NewRoomRepo(gdb)
	bookingRepo := repository.NewBookingRepo(gdb)
	paymentRepo := repository.NewPaymentRepo(gdb)
	userRepo := repository.NewUserRepo(gdb)
	must(0, roomRepo.Migrate())
	must(0, bookingRepo.Migrate())
	must(0, paymentRepo.Migrate())
	must(0, userRepo.Migrate())

	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.EventExchange))
	defer pub.Close()

	checker := service.NewAvailabilityChecker(roomRepo, bookingRepo)
	pricer := service.NewPricingCalculator(roomRepo)
	bookingSvc := service.NewBookingSvc(bookingRepo, checker, pricer, pub)
	paymentSvc := service.NewPaymentSvc(paymentRepo, bookingRepo, pub)
	authSvc := service.NewAuthSvc(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	r := web.New([]byte(cfg.JWTSecret),
		web.NewAuthHandler(authSvc),
		web.NewBookingHandler(bookingSvc),
		web.NewPaymentHandler(paymentSvc, bookingSvc),
		web.NewRoomHandler(roomRepo),
	)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[api] HTTP listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
	log.Println("[api] stopped")
}
