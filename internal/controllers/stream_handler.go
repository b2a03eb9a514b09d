package controllers

import (
	"bufio"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/13132klain/ufa-backend/internal/services"
)

// Streams holds every service a client can watch over SSE.
type Streams struct {
	Events        *services.EventService
	News          *services.NewsService
	Leaders       *services.LeaderService
	Resources     *services.ResourceService
	Donations     *services.DonationService
	Campaigns     *services.CampaignService
	Registrations *services.RegistrationService
	Memberships   *services.MembershipService
}

// StreamHandler godoc
// @Summary Live collection feed over server-sent events
// @Description Sends the current collection immediately, then the full collection again after every change
// @Tags stream
// @Produce text/event-stream
// @Param entity path string true "Collection name" Enums(events, news, leaders, resources, donations, campaigns, registrations, memberships)
// @Success 200 {string} string "SSE stream of JSON snapshots"
// @Failure 404 {object} map[string]string "Unknown collection"
// @Router /stream/{entity} [get]
func StreamHandler(s Streams) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Params("entity") {
		case "events":
			return streamFeed(c, s.Events.Subscribe)
		case "news":
			return streamFeed(c, s.News.Subscribe)
		case "leaders":
			return streamFeed(c, s.Leaders.Subscribe)
		case "resources":
			return streamFeed(c, s.Resources.Subscribe)
		case "donations":
			return streamFeed(c, s.Donations.Subscribe)
		case "campaigns":
			return streamFeed(c, s.Campaigns.Subscribe)
		case "registrations":
			return streamFeed(c, s.Registrations.Subscribe)
		case "memberships":
			return streamFeed(c, s.Memberships.Subscribe)
		default:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown collection"})
		}
	}
}

// streamFeed bridges a service feed onto one SSE connection. The
// subscription callback must never block, so snapshots go through a
// buffered channel; a client that cannot keep up loses intermediate
// snapshots, not the stream.
func streamFeed[T any](c *fiber.Ctx, subscribe func(func([]T)) func()) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	updates := make(chan []byte, 8)
	unsubscribe := subscribe(func(snapshot []T) {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			log.Println("stream: marshal failed:", err)
			return
		}
		select {
		case updates <- payload:
		default:
			// Drop when the client is behind; the next snapshot
			// carries the full state anyway.
		}
	})

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()
		for payload := range updates {
			if _, err := w.WriteString("data: "); err != nil {
				return
			}
			if _, err := w.Write(payload); err != nil {
				return
			}
			if _, err := w.WriteString("\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
