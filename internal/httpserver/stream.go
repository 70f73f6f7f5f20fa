package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/folio/internal/typewriter"
)

// handleHeroStream types the heading as server-sent events: one "typing"
// event per revealed prefix, then "done". A client disconnect cancels the
// runner.
func (s *Server) handleHeroStream(c *gin.Context) {
	tw, err := typewriter.New(s.profile.Heading, s.typing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Emit runs under the runner's lock; the buffer holds every prefix.
	frames := make(chan string, tw.Len()+1)
	runner := typewriter.NewRunner(tw, s.clock, func(revealed string) {
		frames <- revealed
	})

	ctx := c.Request.Context()
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	runner.Start(ctx)
	defer runner.Stop()

	send := func(event, data string) {
		c.SSEvent(event, data)
		c.Writer.Flush()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case revealed := <-frames:
			send("typing", revealed)
		case <-runner.Done():
		drain:
			for {
				select {
				case revealed := <-frames:
					send("typing", revealed)
				default:
					break drain
				}
			}
			if ctx.Err() != nil {
				return
			}
			if runner.State() != typewriter.Done {
				log.Printf("httpserver: headline stream stopped in state %s", runner.State())
				return
			}
			send("done", runner.Revealed())
			return
		}
	}
}
