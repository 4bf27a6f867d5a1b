package main

import (
	"log"
	"net/http"
	"os"

	"skilleat/internal/api"
	"skilleat/internal/config"
	"skilleat/internal/mailer"
	"skilleat/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	var transport mailer.Mailer
	switch cfg.Mail.Provider {
	case "sendgrid":
		transport = mailer.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.SendGridFromName)
	case "console":
		transport = mailer.NewConsoleMailer()
	default:
		transport = mailer.NewSMTPMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPass, cfg.Mail.SMTPSecure)
	}

	inquirySvc := service.NewInquiryService(transport, cfg.Mail.From, cfg.Mail.To)
	scheduleSvc := service.NewScheduleService()

	contactHandler := api.NewContactHandler(inquirySvc)
	scheduleHandler := api.NewScheduleHandler(scheduleSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/contact", contactHandler.SubmitInquiry).Methods("POST")
	r.HandleFunc("/api/schedule", scheduleHandler.GetSchedule).Methods("GET")

	// Everything else is the presentation bundle
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.App.StaticDir)))

	cors := handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s", cfg.App.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.App.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
