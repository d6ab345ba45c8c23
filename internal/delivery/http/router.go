package http

import (
	"net/http"

	"famlink-api/internal/delivery/http/handler"
	"famlink-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	userHandler             *handler.UserHandler
	childHandler            *handler.ChildHandler
	medicalRecordHandler    *handler.MedicalRecordHandler
	hospitalHandler         *handler.HospitalHandler
	appointmentHandler      *handler.AppointmentHandler
	communityHandler        *handler.CommunityHandler
	chatbotHandler          *handler.ChatbotHandler
	uploadHandler           *handler.UploadHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	childHandler *handler.ChildHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	hospitalHandler *handler.HospitalHandler,
	appointmentHandler *handler.AppointmentHandler,
	communityHandler *handler.CommunityHandler,
	chatbotHandler *handler.ChatbotHandler,
	uploadHandler *handler.UploadHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		userHandler:             userHandler,
		childHandler:            childHandler,
		medicalRecordHandler:    medicalRecordHandler,
		hospitalHandler:         hospitalHandler,
		appointmentHandler:      appointmentHandler,
		communityHandler:        communityHandler,
		chatbotHandler:          chatbotHandler,
		uploadHandler:           uploadHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Users
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("", r.userHandler.GetAll).Methods(http.MethodGet)
	users.HandleFunc("", r.userHandler.Create).Methods(http.MethodPost)
	users.HandleFunc("/external/{externalId}", r.userHandler.GetByExternalAuthID).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	// Children
	children := api.PathPrefix("/children").Subrouter()
	children.HandleFunc("", r.childHandler.Create).Methods(http.MethodPost)
	children.HandleFunc("/parent/{parentId}", r.childHandler.GetByParent).Methods(http.MethodGet)
	children.HandleFunc("/{id}", r.childHandler.GetByID).Methods(http.MethodGet)
	children.HandleFunc("/{id}", r.childHandler.Update).Methods(http.MethodPut)
	children.HandleFunc("/{id}", r.childHandler.Delete).Methods(http.MethodDelete)
	children.HandleFunc("/{id}/dashboard", r.childHandler.Dashboard).Methods(http.MethodGet)

	// Medical records
	records := api.PathPrefix("/medical-records").Subrouter()
	records.HandleFunc("", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	records.HandleFunc("/types", r.medicalRecordHandler.Types).Methods(http.MethodGet)
	records.HandleFunc("/child/{childId}", r.medicalRecordHandler.GetByChild).Methods(http.MethodGet)
	records.HandleFunc("/child/{childId}/summary", r.medicalRecordHandler.Summary).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.medicalRecordHandler.GetByID).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)
	records.HandleFunc("/{id}", r.medicalRecordHandler.Delete).Methods(http.MethodDelete)

	// Hospitals & appointments
	hospitals := api.PathPrefix("/hospitals").Subrouter()
	hospitals.HandleFunc("", r.hospitalHandler.List).Methods(http.MethodGet)
	hospitals.HandleFunc("/search", r.hospitalHandler.Search).Methods(http.MethodGet)
	hospitals.HandleFunc("/specialties", r.hospitalHandler.Specialties).Methods(http.MethodGet)
	hospitals.HandleFunc("/{id}", r.hospitalHandler.GetByID).Methods(http.MethodGet)
	hospitals.HandleFunc("/{id}/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)

	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Community
	community := api.PathPrefix("/community").Subrouter()
	community.HandleFunc("/posts", r.communityHandler.ListPosts).Methods(http.MethodGet)
	community.HandleFunc("/posts", r.communityHandler.CreatePost).Methods(http.MethodPost)
	community.HandleFunc("/categories", r.communityHandler.Categories).Methods(http.MethodGet)
	community.HandleFunc("/posts/{id}", r.communityHandler.GetPost).Methods(http.MethodGet)
	community.HandleFunc("/posts/{id}/comments", r.communityHandler.CreateComment).Methods(http.MethodPost)
	community.HandleFunc("/posts/{id}/like", r.communityHandler.TogglePostLike).Methods(http.MethodPost)
	community.HandleFunc("/comments/{id}/like", r.communityHandler.ToggleCommentLike).Methods(http.MethodPost)

	// Chatbot
	chatbot := api.PathPrefix("/chatbot").Subrouter()
	chatbot.HandleFunc("/conversations", r.chatbotHandler.Start).Methods(http.MethodPost)
	chatbot.HandleFunc("/conversations/user/{userId}", r.chatbotHandler.ListByUser).Methods(http.MethodGet)
	chatbot.HandleFunc("/conversations/{id}", r.chatbotHandler.Get).Methods(http.MethodGet)
	chatbot.HandleFunc("/conversations/{id}", r.chatbotHandler.Delete).Methods(http.MethodDelete)
	chatbot.HandleFunc("/conversations/{id}/messages", r.chatbotHandler.SendMessage).Methods(http.MethodPost)
	chatbot.HandleFunc("/health-tips", r.chatbotHandler.HealthTips).Methods(http.MethodGet)

	// Uploads
	api.HandleFunc("/uploads", r.uploadHandler.Upload).Methods(http.MethodPost)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestLoggerMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
