package notify

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/NgocHien2004/HotelBooking-sub000/pkg/mq"
)

// Worker consumes booking.* / payment.* events and hands them to the
// Notifier. Failed handlers Nack without requeue so the delivery
// dead-letters instead of looping.
type Worker struct {
	cons     *mq.Consumer
	notifier Notifier
	tag      string
}

func NewWorker(cons *mq.Consumer, n Notifier, tag string) *Worker {
	return &Worker{cons: cons, notifier: n, tag: tag}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.cons.Deliveries(ctx, w.tag)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(d); err != nil {
				log.Printf("[notify] handle key=%s: %v", d.RoutingKey, err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) error {
	switch d.RoutingKey {
	case RKBookingCreated:
		ev, err := unmarshal[BookingCreated](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking created",
			fmt.Sprintf("Booking %s: room %s, %s to %s, total %d VND.", ev.BookingID, ev.RoomID, ev.CheckIn, ev.CheckOut, ev.Total))

	case RKBookingConfirmed:
		ev, err := unmarshal[BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking confirmed",
			fmt.Sprintf("Booking %s has been confirmed.", ev.BookingID))

	case RKBookingCancelled:
		ev, err := unmarshal[BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking cancelled",
			fmt.Sprintf("Booking %s has been cancelled.", ev.BookingID))

	case RKBookingCompleted:
		ev, err := unmarshal[BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking completed",
			fmt.Sprintf("Booking %s has been completed.", ev.BookingID))

	case RKPaymentRecorded:
		ev, err := unmarshal[PaymentRecorded](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Payment recorded",
			fmt.Sprintf("Booking %s: %d VND via %s.", ev.BookingID, ev.Amount, ev.Method))

	case RKPaymentRefunded:
		ev, err := unmarshal[PaymentRefunded](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Payment refunded",
			fmt.Sprintf("Booking %s: refund of %d VND (payment %s).", ev.BookingID, -ev.Amount, ev.OriginalID))

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
