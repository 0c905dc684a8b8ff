package server

import "github.com/gofiber/fiber/v2"

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports the store's live entity counts. The store is always
// ready once the process is running; the counts make the endpoint useful for
// eyeballing seed state.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	users, posts, comments := s.store.Counts()
	return c.JSON(fiber.Map{
		"status":   "ok",
		"users":    users,
		"posts":    posts,
		"comments": comments,
	})
}
