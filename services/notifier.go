package services

import (
	"fmt"
	"log"
	"os"

	"serenefit-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Notifier sends WhatsApp messages for booking events: a confirmation when the
// admin confirms a booking, and a daily digest of pending submissions to the
// studio's own number. All sends are best-effort and never block a request.
type Notifier struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

// NewNotifier builds a Notifier. When Twilio credentials are missing it still
// returns a working instance that just logs instead of sending.
func NewNotifier(db *gorm.DB) *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	n := &Notifier{
		db:   db,
		from: os.Getenv("TWILIO_WHATSAPP_FROM"),
	}
	if accountSid != "" && authToken != "" {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return n
}

// StartScheduler runs the pending-bookings digest every morning at 9 AM.
func (n *Notifier) StartScheduler() {
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", n.SendPendingDigest); err != nil {
		log.Printf("Failed to schedule booking digest: %v", err)
		return
	}
	c.Start()
	log.Println("Booking notification scheduler started")
}

// BookingConfirmed messages the client that their slot is confirmed.
func (n *Notifier) BookingConfirmed(booking models.Booking) {
	body := fmt.Sprintf(
		"Hi %s! Your SereneFit booking for %s is confirmed. See you there!",
		booking.Name, booking.TimeSlot,
	)
	if booking.ServiceName != "" {
		body = fmt.Sprintf(
			"Hi %s! Your SereneFit booking for %s (%s) is confirmed. See you there!",
			booking.Name, booking.ServiceName, booking.TimeSlot,
		)
	}
	go n.send(booking.Whatsapp, body)
}

// SendPendingDigest messages the studio number with the count of bookings
// still awaiting a decision.
func (n *Notifier) SendPendingDigest() {
	adminNumber := os.Getenv("ADMIN_WHATSAPP")
	if adminNumber == "" {
		return
	}

	var count int64
	err := n.db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&count).Error
	if err != nil {
		log.Printf("Failed to count pending bookings: %v", err)
		return
	}
	if count == 0 {
		return
	}

	n.send(adminNumber, fmt.Sprintf("You have %d pending booking request(s) waiting for review.", count))
}

func (n *Notifier) send(to, body string) {
	if n.client == nil || n.from == "" {
		log.Printf("WhatsApp notification skipped (Twilio not configured): %s", body)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send WhatsApp message to %s: %v", to, err)
		return
	}
	log.Printf("WhatsApp notification sent to %s", to)
}
