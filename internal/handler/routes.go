package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes assembles the API route tree. The auth middleware (and any other
// per-request middleware for the authenticated surface, e.g. rate limiting)
// is passed in so tests can substitute a stub identity injector.
//
// /healthz stays outside the authenticated group; /metrics is mounted by main
// on a separate listener-independent path with the same router.
func (s *Server) Routes(authenticated ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticated...)

		r.Get("/me", s.GetMe)
		r.Get("/users", s.ListUsers)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				r.Get("/complete", s.GetTripComplete)

				r.Get("/days", s.ListDays)
				r.Get("/days/display", s.DisplayDays)

				r.Get("/lodging", s.ListLodging)
				r.Post("/lodging", s.CreateLodging)
				r.Get("/activities", s.ListActivities)
				r.Post("/activities", s.CreateActivity)
				r.Get("/food", s.ListFood)
				r.Post("/food", s.CreateFood)
				r.Get("/decisions", s.ListDecisions)
				r.Post("/decisions", s.CreateDecision)

				r.Get("/members", s.ListMembers)
				r.Post("/members", s.AddMember)
				r.Delete("/members/{userID}", s.RemoveMember)
			})
		})

		r.Route("/days", func(r chi.Router) {
			r.Post("/", s.UpsertDay)
			r.Put("/{dayID}", s.UpdateDay)
			r.Delete("/{dayID}", s.DeleteDay)
		})

		r.Route("/lodging", func(r chi.Router) {
			r.Put("/{id}", s.UpdateLodging)
			r.Delete("/{id}", s.DeleteLodging)
		})
		r.Route("/activities", func(r chi.Router) {
			r.Put("/{id}", s.UpdateActivity)
			r.Delete("/{id}", s.DeleteActivity)
		})
		r.Route("/food", func(r chi.Router) {
			r.Put("/{id}", s.UpdateFood)
			r.Delete("/{id}", s.DeleteFood)
		})
		r.Route("/decisions", func(r chi.Router) {
			r.Put("/{id}", s.UpdateDecision)
			r.Delete("/{id}", s.DeleteDecision)
		})
	})

	return r
}
