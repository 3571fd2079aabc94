package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quillstudy/quill-api/internal/api"
	apiMiddleware "github.com/quillstudy/quill-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	profileHandler := api.NewProfileHandler(app.studyService, app.logger)
	chatHandler := api.NewChatHandler(app.studyService, app.logger)
	noteHandler := api.NewNoteHandler(app.studyService, app.logger)
	deckHandler := api.NewDeckHandler(app.studyService, app.logger)
	quizHandler := api.NewQuizHandler(app.studyService, app.logger)
	goalHandler := api.NewGoalHandler(app.studyService, app.logger)
	progressHandler := api.NewProgressHandler(app.studyService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Every API route requires a verified identity token; the resolved
		// tenant scopes all reads and writes.
		r.Use(authMiddleware.Authenticate)

		r.Post("/profile", profileHandler.CreateProfile)
		r.Put("/profile", profileHandler.UpdateProfile)
		r.Get("/profile", profileHandler.GetProfile)

		r.Post("/chats", chatHandler.CreateChatSession)
		r.Get("/chats", chatHandler.ListChatSessions)
		r.Delete("/chats/{sessionID}", chatHandler.DeleteChatSession)
		r.Post("/chats/{sessionID}/messages", chatHandler.AddMessage)
		r.Get("/chats/{sessionID}/messages", chatHandler.GetChatMessages)

		r.Post("/notes", noteHandler.CreateNote)
		r.Get("/notes", noteHandler.ListNotes)
		r.Get("/notes/{noteID}", noteHandler.GetNote)
		r.Put("/notes/{noteID}", noteHandler.UpdateNote)
		r.Delete("/notes/{noteID}", noteHandler.DeleteNote)

		r.Post("/decks", deckHandler.CreateDeck)
		r.Get("/decks", deckHandler.ListDecks)
		r.Post("/decks/{deckID}/cards", deckHandler.AddCard)
		r.Get("/decks/{deckID}/cards", deckHandler.ListDeckCards)
		r.Post("/decks/{deckID}/cards/{cardID}/review", deckHandler.ReviewCard)
		r.Put("/decks/{deckID}/cards/{cardID}/schedule", deckHandler.UpdateCardSchedule)

		r.Post("/quizzes", quizHandler.RecordQuizResult)
		r.Get("/quizzes", quizHandler.ListQuizResults)

		r.Post("/goals", goalHandler.CreateGoal)
		r.Get("/goals", goalHandler.ListGoals)
		r.Post("/goals/{goalID}/complete", goalHandler.CompleteGoal)

		r.Put("/progress", progressHandler.UpdateProgressStat)
		r.Get("/progress", progressHandler.ListProgressStats)
		r.Post("/activity", progressHandler.RecordStudyActivity)
		r.Get("/streak", progressHandler.GetStudyStreak)
	})

	// Health check endpoint (public)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
